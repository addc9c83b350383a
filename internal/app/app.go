// Package app implements the application layer for attune.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/attune/internal/engine/reconciler"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	engine   *reconciler.Engine
	reader   ports.WorkspaceReader
	watcher  ports.FileWatcher
	settings *domain.Settings
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	engine *reconciler.Engine,
	reader ports.WorkspaceReader,
	watcher ports.FileWatcher,
	settings *domain.Settings,
	logger ports.Logger,
) *App {
	return &App{
		engine:   engine,
		reader:   reader,
		watcher:  watcher,
		settings: settings,
		logger:   logger,
	}
}

// Watch runs an initial refresh and then keeps the workspace synchronized
// with watch-triggered refreshes until the context is canceled.
func (a *App) Watch(ctx context.Context) error {
	if err := a.engine.Refresh(ctx, true); err != nil {
		return zerr.Wrap(err, "initial refresh failed")
	}

	snap := a.reader.Snapshot(false)
	a.logger.Info(fmt.Sprintf("watching %s (%d projects)", a.settings.Root, len(snap.Projects)))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Close()
	})
	return g.Wait()
}

// Status runs one refresh cycle and returns the resulting workspace view.
func (a *App) Status(ctx context.Context, includeSourceFiles bool) (domain.WorkspaceSnapshot, error) {
	if err := a.engine.Refresh(ctx, true); err != nil {
		return domain.WorkspaceSnapshot{}, err
	}
	return a.reader.Snapshot(includeSourceFiles), nil
}

// ProjectByPath refreshes the workspace and resolves the project owning the
// given file, either through its project file or one of its documents.
// Relative paths resolve against the working directory, since the workspace
// registers absolute paths only.
func (a *App) ProjectByPath(ctx context.Context, filePath string) (domain.ProjectSummary, error) {
	if err := a.engine.Refresh(ctx, true); err != nil {
		return domain.ProjectSummary{}, err
	}
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return domain.ProjectSummary{}, zerr.Wrap(err, "failed to resolve file path")
	}
	summary, ok := a.reader.ProjectByPath(abs)
	if !ok {
		return domain.ProjectSummary{}, zerr.With(domain.ErrProjectNotFound, "path", abs)
	}
	return summary, nil
}
