package reconciler

import (
	"context"

	"go.trai.ch/attune/internal/core/domain"
)

// needsRestore reports whether a context's dependency graph requires a
// package restore: any diagnostic with the missing-package code, or any
// dependency the toolchain marked unresolved.
func needsRestore(pctx domain.ProjectContext) bool {
	for _, diag := range pctx.Diagnostics {
		if diag.Code == domain.CodeMissingPackage {
			return true
		}
	}
	for _, dep := range pctx.Dependencies {
		if !dep.Resolved {
			return true
		}
	}
	return false
}

// unresolvedPackages returns the dependencies the toolchain could not locate.
func unresolvedPackages(pctx domain.ProjectContext) []domain.PackageDependency {
	var out []domain.PackageDependency
	for _, dep := range pctx.Dependencies {
		if !dep.Resolved {
			out = append(out, dep)
		}
	}
	return out
}

// evaluateDependencies applies the restore policy for one project context.
// When restore is permitted this cycle and enabled by configuration, the
// restorer is invoked and the unresolved-dependencies notification is
// deferred to its failure callback; otherwise the notification is emitted
// immediately. Restore completion is never observed here: the lock manifest
// changing on disk triggers the next refresh.
func (e *Engine) evaluateDependencies(ctx context.Context, pctx domain.ProjectContext, allowRestore bool) {
	if !needsRestore(pctx) {
		return
	}

	event := domain.UnresolvedDependenciesEvent{
		ProjectFilePath: pctx.FilePath,
		Packages:        unresolvedPackages(pctx),
	}
	notify := func() {
		e.events.UnresolvedDependencies(event)
	}

	if allowRestore && e.settings.EnablePackageRestore {
		e.restorer.Restore(ctx, pctx.Dir, notify)
		return
	}
	notify()
}
