// Package events delivers engine notifications to the user.
package events

import (
	"fmt"
	"strings"

	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
)

var _ ports.EventSink = (*Sink)(nil)

// Sink implements ports.EventSink by logging notifications.
type Sink struct {
	logger ports.Logger
}

// NewSink creates a sink writing to the given logger.
func NewSink(logger ports.Logger) *Sink {
	return &Sink{logger: logger}
}

// UnresolvedDependencies reports packages that remain unresolved after the
// restore policy has run its course.
func (s *Sink) UnresolvedDependencies(event domain.UnresolvedDependenciesEvent) {
	names := make([]string, len(event.Packages))
	for i, pkg := range event.Packages {
		names[i] = pkg.Name
		if pkg.Version != "" {
			names[i] += "@" + pkg.Version
		}
	}
	s.logger.Warn(fmt.Sprintf("unresolved dependencies in %s: %s",
		event.ProjectFilePath, strings.Join(names, ", ")))
}
