package domain

// CodeMissingPackage is the diagnostic code the toolchain emits when a
// package dependency cannot be resolved to a known version.
const CodeMissingPackage = "NU1001"

// PackageDependency is one entry of a project's resolved dependency graph.
type PackageDependency struct {
	// Name is the package identifier.
	Name string

	// Version is the requested version string.
	Version string

	// Resolved reports whether the toolchain located the package.
	Resolved bool
}

// Diagnostic is a single message produced while resolving a project context.
type Diagnostic struct {
	// Code is the diagnostic identifier (e.g., "NU1001").
	Code string

	// Message is the human-readable diagnostic text.
	Message string
}

// UnresolvedDependenciesEvent is emitted when a project has package
// dependencies that could not be resolved and restore either failed, is
// disabled, or is not permitted for the current refresh cycle.
type UnresolvedDependenciesEvent struct {
	// ProjectFilePath is the path of the affected project's definition file.
	ProjectFilePath string

	// Packages lists the dependencies that could not be resolved.
	Packages []PackageDependency
}
