// Package domain contains the core domain models for the project
// synchronization engine.
package domain

import "fmt"

// ProjectKey identifies one (project directory, target framework) build unit.
type ProjectKey struct {
	// Dir is the absolute path of the directory containing the project file.
	Dir string

	// Framework is the target framework moniker (e.g., "net8.0").
	Framework string
}

// String returns a human-readable form of the key.
func (k ProjectKey) String() string {
	return fmt.Sprintf("%s (%s)", k.Dir, k.Framework)
}

// ProjectInfo describes a project as registered with the workspace.
type ProjectInfo struct {
	// Name is the display name qualified with the target framework.
	Name string

	// Language is the source language tag of the project's files.
	Language string

	// FilePath is the absolute path of the project definition file.
	FilePath string

	// Framework is the target framework moniker this registration builds
	// for.
	Framework string
}

// ProjectReference is a declared reference from one project to another.
type ProjectReference struct {
	// Dir is the directory of the referenced project.
	Dir string

	// Framework is the target framework of the referenced project.
	// It may be empty when the referencing side cannot determine it.
	Framework string
}

// ProjectContext is one resolved (project, framework) build unit as reported
// by the build toolchain, including the reference, source, and option facts
// computed for that configuration.
type ProjectContext struct {
	// Dir is the directory containing the project file.
	Dir string

	// Framework is the target framework moniker this context builds for.
	Framework string

	// DisplayName is the project's unqualified display name.
	DisplayName string

	// FilePath is the path of the project definition file.
	FilePath string

	// Language is the source language tag of the project's files.
	Language string

	// MetadataReferences are paths to compiled libraries the project
	// references. Paths that do not exist on disk are already filtered out.
	MetadataReferences []string

	// ProjectReferences are the declared project-to-project references.
	ProjectReferences []ProjectReference

	// SourceFiles are the paths of the source files to compile.
	SourceFiles []string

	// Options are the project's declared compiler switches.
	Options BuildOptions

	// Dependencies is the resolved package dependency set.
	Dependencies []PackageDependency

	// Diagnostics are the messages the toolchain produced while resolving
	// this context.
	Diagnostics []Diagnostic
}

// Key returns the ProjectKey for this context.
func (c ProjectContext) Key() ProjectKey {
	return ProjectKey{Dir: c.Dir, Framework: c.Framework}
}

// QualifiedName returns the workspace-facing project name, which combines the
// display name with the target framework so that multi-framework projects get
// distinct entries.
func (c ProjectContext) QualifiedName() string {
	return fmt.Sprintf("%s (%s)", c.DisplayName, c.Framework)
}
