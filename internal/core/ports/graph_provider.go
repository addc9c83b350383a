// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/attune/internal/core/domain"
)

// GraphProvider is the build toolchain boundary: it enumerates candidate
// project directories under a root and resolves each directory into zero or
// more project contexts, one per target framework the project builds for.
// Its internal resolution algorithm is a black box to the engine.
//
//go:generate mockgen -source=graph_provider.go -destination=mocks/mock_graph_provider.go -package=mocks
type GraphProvider interface {
	// DiscoverProjects enumerates the project directories under root.
	DiscoverProjects(ctx context.Context, root string) ([]string, error)

	// ResolveContexts resolves the contexts for a single project
	// directory. An empty result is not an error; it means the project's
	// definition is not currently resolvable.
	ResolveContexts(ctx context.Context, projectDir string) ([]domain.ProjectContext, error)
}
