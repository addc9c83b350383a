package ports

import "go.trai.ch/attune/internal/core/domain"

// EventSink receives the notifications the engine emits to its host.
//
//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks
type EventSink interface {
	// UnresolvedDependencies reports that a project has package
	// dependencies the toolchain could not resolve.
	UnresolvedDependencies(event domain.UnresolvedDependenciesEvent)
}
