// Package toolchain implements the build-toolchain boundary over project.yaml
// definition files: it discovers project directories under a workspace root
// and resolves each one into per-framework project contexts.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.GraphProvider = (*Provider)(nil)

// shouldSkipDirectories are directories never descended into during
// discovery.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
	"bin":          true,
	"obj":          true,
}

// Provider implements ports.GraphProvider.
type Provider struct {
	logger ports.Logger
}

// NewProvider creates a new Provider with the given logger.
func NewProvider(logger ports.Logger) *Provider {
	return &Provider{logger: logger}
}

// DiscoverProjects walks root and returns every directory containing a
// project definition file, in deterministic (walk) order.
func (p *Provider) DiscoverProjects(_ context.Context, root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal; discovery is a
			// best-effort snapshot.
			return nil //nolint:nilerr // intentional
		}
		if !d.IsDir() {
			return nil
		}
		if shouldSkipDirectories[d.Name()] {
			return fs.SkipDir
		}
		if _, err := os.Stat(filepath.Join(path, domain.ProjectFileName)); err == nil {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to walk workspace root")
	}
	return dirs, nil
}

// ResolveContexts parses the project definition in projectDir and returns one
// context per declared framework. Referenced files that do not exist on disk
// are dropped from the resolved sets without an error; the compiler reports
// the resulting diagnostics downstream.
func (p *Provider) ResolveContexts(_ context.Context, projectDir string) ([]domain.ProjectContext, error) {
	filePath := filepath.Join(projectDir, domain.ProjectFileName)

	data, err := os.ReadFile(filePath) //nolint:gosec // path comes from discovery
	if err != nil {
		return nil, errors.Join(domain.ErrProjectFileReadFailed, err)
	}

	var file ProjectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Join(domain.ErrProjectFileParseFailed, err)
	}

	if len(file.Frameworks) == 0 {
		return nil, nil
	}

	name := file.Name
	if name == "" {
		name = filepath.Base(projectDir)
	}
	language := file.Language
	if language == "" {
		language = "csharp"
	}

	lock := p.readLock(projectDir)

	contexts := make([]domain.ProjectContext, 0, len(file.Frameworks))
	for _, framework := range file.Frameworks {
		target := file.Targets[framework]

		deps, diags := resolveDependencies(file.Packages, lock)

		contexts = append(contexts, domain.ProjectContext{
			Dir:                projectDir,
			Framework:          framework,
			DisplayName:        name,
			FilePath:           filePath,
			Language:           language,
			MetadataReferences: existingFiles(projectDir, mergedReferences(file, target)),
			ProjectReferences:  projectReferences(projectDir, file.Projects),
			SourceFiles:        existingFiles(projectDir, mergedSources(file, target)),
			Options:            buildOptions(file.Options, target),
			Dependencies:       deps,
			Diagnostics:        diags,
		})
	}
	return contexts, nil
}

// readLock loads the lock manifest for a project. A missing or unparseable
// lock manifest resolves to an empty package set, which marks every declared
// package unresolved.
func (p *Provider) readLock(projectDir string) LockFile {
	data, err := os.ReadFile(filepath.Join(projectDir, domain.LockFileName)) //nolint:gosec // sibling of the project file
	if err != nil {
		return LockFile{}
	}
	var lock LockFile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		p.logger.Warn(fmt.Sprintf("%s: unparseable lock manifest: %v", projectDir, err))
		return LockFile{}
	}
	return lock
}

// resolveDependencies checks each declared package against the lock
// manifest. A package is resolved when the lock pins the exact requested
// version; anything else produces an unresolved dependency and a
// missing-package diagnostic.
func resolveDependencies(declared map[string]string, lock LockFile) ([]domain.PackageDependency, []domain.Diagnostic) {
	if len(declared) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(declared))
	for name := range declared {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]domain.PackageDependency, 0, len(names))
	var diags []domain.Diagnostic
	for _, name := range names {
		version := declared[name]
		resolved := lock.Packages[name] == version
		deps = append(deps, domain.PackageDependency{
			Name:     name,
			Version:  version,
			Resolved: resolved,
		})
		if !resolved {
			diags = append(diags, domain.Diagnostic{
				Code:    domain.CodeMissingPackage,
				Message: fmt.Sprintf("unable to resolve %s (%s)", name, version),
			})
		}
	}
	return deps, diags
}

func mergedReferences(file ProjectFile, target *Target) []string {
	refs := append([]string(nil), file.References...)
	if target != nil {
		refs = append(refs, target.References...)
	}
	return refs
}

func mergedSources(file ProjectFile, target *Target) []string {
	sources := append([]string(nil), file.Sources...)
	if target != nil {
		sources = append(sources, target.Sources...)
	}
	return sources
}

// existingFiles resolves paths against the project directory and drops those
// missing on disk.
func existingFiles(projectDir string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		if info, err := os.Stat(path); err != nil || info.IsDir() {
			continue
		}
		out = append(out, path)
	}
	return out
}

func projectReferences(projectDir string, refs []ProjectRefDTO) []domain.ProjectReference {
	out := make([]domain.ProjectReference, 0, len(refs))
	for _, ref := range refs {
		dir := ref.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(projectDir, dir)
		}
		out = append(out, domain.ProjectReference{
			Dir:       filepath.Clean(dir),
			Framework: ref.Framework,
		})
	}
	return out
}

// buildOptions layers a framework target's option overrides over the shared
// declaration. Overrides replace whole fields; there is no per-field merge.
func buildOptions(shared *BuildOptionsDTO, target *Target) domain.BuildOptions {
	dto := shared
	if target != nil && target.Options != nil {
		dto = target.Options
	}
	if dto == nil {
		return domain.BuildOptions{}
	}
	return domain.BuildOptions{
		LanguageVersion:       dto.LanguageVersion,
		Defines:               append([]string(nil), dto.Defines...),
		Optimize:              dto.Optimize,
		WarningsAsErrors:      dto.WarningsAsErrors,
		EmitEntryPoint:        dto.EmitEntryPoint,
		AllowUnsafe:           dto.AllowUnsafe,
		Platform:              dto.Platform,
		KeyFile:               dto.KeyFile,
		SuppressedDiagnostics: append([]string(nil), dto.NoWarn...),
		GenerateXMLDoc:        dto.XMLDoc,
	}
}
