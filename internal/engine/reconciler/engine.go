// Package reconciler implements the incremental project synchronization
// engine. It keeps a long-lived in-memory compilation workspace in line with
// the project definitions on disk by diffing freshly resolved project
// contexts against the remembered state of earlier cycles and applying only
// the difference, so open-document state in the workspace is never discarded
// by a full rebuild.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine drives full refresh cycles against the workspace. Cycles are
// serialized by a mutex: a watch event arriving during an in-flight refresh
// queues behind it rather than mutating shared state concurrently.
type Engine struct {
	settings  *domain.Settings
	provider  ports.GraphProvider
	workspace ports.Workspace
	watcher   ports.FileWatcher
	restorer  ports.Restorer
	events    ports.EventSink
	logger    ports.Logger
	tracer    trace.Tracer

	mu    sync.Mutex
	cache *StateCache
}

// New creates an Engine. A nil tracer disables tracing.
func New(
	settings *domain.Settings,
	provider ports.GraphProvider,
	workspace ports.Workspace,
	watcher ports.FileWatcher,
	restorer ports.Restorer,
	events ports.EventSink,
	logger ports.Logger,
	tracer trace.Tracer,
) *Engine {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Engine{
		settings:  settings,
		provider:  provider,
		workspace: workspace,
		watcher:   watcher,
		restorer:  restorer,
		events:    events,
		logger:    logger,
		tracer:    tracer,
		cache:     NewStateCache(),
	}
}

// cycle is the reconciliation context of one refresh: the contexts resolved
// in this cycle, keyed by (directory, framework). It exists so that step 4
// reads exactly what step 3 resolved, never a mix of cycles.
type cycle struct {
	contexts map[domain.ProjectKey]domain.ProjectContext
}

func newCycle() *cycle {
	return &cycle{contexts: make(map[domain.ProjectKey]domain.ProjectContext)}
}

func (c *cycle) put(pctx domain.ProjectContext) {
	c.contexts[pctx.Key()] = pctx
}

func (c *cycle) get(key domain.ProjectKey) (domain.ProjectContext, bool) {
	pctx, ok := c.contexts[key]
	return pctx, ok
}

// Refresh runs one full refresh cycle: re-discover projects, reconcile the
// live project set, then reconcile every live project's sub-graphs in a fixed
// order. allowRestore controls whether unresolved dependencies may trigger an
// automatic restore this cycle; refreshes caused by a lock manifest change
// pass false, since restore already ran.
func (e *Engine) Refresh(ctx context.Context, allowRestore bool) error {
	if !e.settings.Enabled {
		return domain.ErrEngineDisabled
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ctx, span := e.tracer.Start(ctx, "refresh",
		trace.WithAttributes(attribute.Bool("allow_restore", allowRestore)))
	defer span.End()

	dirs, err := e.provider.DiscoverProjects(ctx, e.settings.Root)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrDiscoveryFailed, err), "root", e.settings.Root)
	}

	e.cache.Reconcile(dirs, e.release)

	// All projects must exist in the cache before any reference
	// reconciliation runs, because project-reference lookups resolve
	// against other projects' identities.
	cyc := newCycle()
	for _, dir := range dirs {
		e.reconcileProject(ctx, cyc, dir)
	}

	for _, st := range e.cache.All() {
		pctx, ok := cyc.get(st.Key)
		if !ok {
			continue
		}
		if err := e.syncProject(ctx, st, pctx, allowRestore); err != nil {
			e.logger.Error(zerr.With(err, "project", st.Key.String()))
		}
	}
	return nil
}

// reconcileProject resolves the current contexts for one directory and
// updates the cache's record set for it. An unresolvable project is logged
// and skipped; it is retried on the next refresh.
func (e *Engine) reconcileProject(ctx context.Context, cyc *cycle, dir string) {
	contexts, err := e.provider.ResolveContexts(ctx, dir)
	if err != nil {
		e.logger.Warn(fmt.Sprintf("skipping %s: %v", dir, err))
		return
	}
	if len(contexts) == 0 {
		e.logger.Info(fmt.Sprintf("skipping %s: no resolvable contexts", dir))
		return
	}

	for _, pctx := range contexts {
		cyc.put(pctx)
	}

	err = e.cache.Update(dir, contexts,
		func(pctx domain.ProjectContext) (ports.ProjectHandle, error) {
			return e.workspace.AddProject(domain.ProjectInfo{
				Name:      pctx.QualifiedName(),
				Language:  pctx.Language,
				FilePath:  pctx.FilePath,
				Framework: pctx.Framework,
			})
		},
		e.release,
	)
	if err != nil {
		e.logger.Error(zerr.With(err, "project_dir", dir))
		return
	}

	e.installWatches(dir, contexts[0].FilePath)
}

// installWatches (re-)registers the watch callbacks for a project's
// definition file and its lock manifest. A definition change may introduce
// new dependencies and therefore permits restore; a lock manifest change is
// the result of a restore, so re-triggering restore from it would loop.
func (e *Engine) installWatches(dir, projectFile string) {
	watch := func(path string, allowRestore bool) {
		err := e.watcher.Watch(path, func(string) {
			if err := e.Refresh(context.Background(), allowRestore); err != nil {
				e.logger.Error(err)
			}
		})
		if err != nil {
			e.logger.Error(zerr.With(errors.Join(domain.ErrWatchRegistrationFailed, err), "path", path))
		}
	}
	watch(projectFile, true)
	watch(filepath.Join(dir, domain.LockFileName), false)
}

// release removes a state's project, and with it every handle registered
// under it, from the workspace. Invoked exactly once when a project or one of
// its frameworks disappears from the on-disk set.
func (e *Engine) release(st *ProjectState) {
	if err := e.workspace.RemoveProject(st.Handle); err != nil {
		e.logger.Error(zerr.With(err, "project", st.Key.String()))
	}
}

// syncProject reconciles one project's sub-graphs in the fixed order: file
// references, project references, dependency evaluation, compiler options,
// source documents.
func (e *Engine) syncProject(ctx context.Context, st *ProjectState, pctx domain.ProjectContext, allowRestore bool) error {
	ctx, span := e.tracer.Start(ctx, "sync_project",
		trace.WithAttributes(attribute.String("project", pctx.QualifiedName())))
	defer span.End()

	if err := e.syncFileReferences(st, pctx); err != nil {
		return err
	}
	if err := e.syncProjectReferences(st, pctx); err != nil {
		return err
	}
	e.evaluateDependencies(ctx, pctx, allowRestore)
	if err := e.applyOptions(st, pctx); err != nil {
		return err
	}
	return e.syncDocuments(st, pctx)
}

func (e *Engine) syncFileReferences(st *ProjectState, pctx domain.ProjectContext) error {
	toAdd, toRemove := diffKeys(st.fileReferences, pctx.MetadataReferences)

	if len(toAdd) > 0 {
		handles, err := e.workspace.AddMetadataReferences(st.Handle, toAdd)
		if err != nil {
			return errors.Join(domain.ErrWorkspaceRejected, err)
		}
		if len(handles) != len(toAdd) {
			return domain.ErrHandleMismatch
		}
		for i, path := range toAdd {
			st.fileReferences.Set(path, handles[i])
		}
	}

	for _, path := range toRemove {
		handle, _ := st.fileReferences.Get(path)
		if err := e.workspace.RemoveMetadataReference(st.Handle, handle); err != nil {
			return errors.Join(domain.ErrWorkspaceRejected, err)
		}
		st.fileReferences.Delete(path)
	}
	return nil
}

func (e *Engine) syncProjectReferences(st *ProjectState, pctx domain.ProjectContext) error {
	// Resolve each declared reference to the identity of a tracked
	// project. A reference whose target is not (yet) tracked is skipped
	// this cycle; it re-enters the desired set on the next refresh once
	// the target project exists.
	desired := make([]string, 0, len(pctx.ProjectReferences))
	targets := make(map[string]ports.ProjectHandle, len(pctx.ProjectReferences))
	for _, ref := range pctx.ProjectReferences {
		target, ok := e.cache.Find(ref.Dir, ref.Framework)
		if !ok {
			e.logger.Debug(fmt.Sprintf("%s: skipping unresolved project reference %s", pctx.QualifiedName(), ref.Dir))
			continue
		}
		desired = append(desired, ref.Dir)
		targets[ref.Dir] = target.Handle
	}

	// A remembered reference may still point at a handle the target no
	// longer owns, e.g. after the target was re-registered under a changed
	// framework. The key diff cannot see that, so retargeted entries are
	// dropped here and re-enter below as additions with the live handle.
	for _, dir := range desired {
		remembered, ok := st.projectReferences.Get(dir)
		if !ok || remembered == targets[dir] {
			continue
		}
		if err := e.workspace.RemoveProjectReference(st.Handle, remembered); err != nil {
			return errors.Join(domain.ErrWorkspaceRejected, err)
		}
		st.projectReferences.Delete(dir)
	}

	toAdd, toRemove := diffKeys(st.projectReferences, desired)

	if len(toAdd) > 0 {
		handles := make([]ports.ProjectHandle, len(toAdd))
		for i, dir := range toAdd {
			handles[i] = targets[dir]
		}
		if err := e.workspace.AddProjectReferences(st.Handle, handles); err != nil {
			return errors.Join(domain.ErrWorkspaceRejected, err)
		}
		for i, dir := range toAdd {
			st.projectReferences.Set(dir, handles[i])
		}
	}

	for _, dir := range toRemove {
		handle, _ := st.projectReferences.Get(dir)
		if err := e.workspace.RemoveProjectReference(st.Handle, handle); err != nil {
			return errors.Join(domain.ErrWorkspaceRejected, err)
		}
		st.projectReferences.Delete(dir)
	}
	return nil
}

func (e *Engine) applyOptions(st *ProjectState, pctx domain.ProjectContext) error {
	cc, pc := MapOptions(pctx.Options, pctx.Dir)
	if err := e.workspace.SetCompilationConfig(st.Handle, cc); err != nil {
		return errors.Join(domain.ErrWorkspaceRejected, err)
	}
	if err := e.workspace.SetParseConfig(st.Handle, pc); err != nil {
		return errors.Join(domain.ErrWorkspaceRejected, err)
	}
	return nil
}

func (e *Engine) syncDocuments(st *ProjectState, pctx domain.ProjectContext) error {
	toAdd, toRemove := diffKeys(st.documents, pctx.SourceFiles)

	if len(toAdd) > 0 {
		handles, err := e.workspace.AddDocuments(st.Handle, toAdd)
		if err != nil {
			return errors.Join(domain.ErrWorkspaceRejected, err)
		}
		if len(handles) != len(toAdd) {
			return domain.ErrHandleMismatch
		}
		for i, path := range toAdd {
			st.documents.Set(path, handles[i])
		}
	}

	for _, path := range toRemove {
		handle, _ := st.documents.Get(path)
		if err := e.workspace.RemoveDocument(st.Handle, handle); err != nil {
			return errors.Join(domain.ErrWorkspaceRejected, err)
		}
		st.documents.Delete(path)
	}
	return nil
}
