// Package workspace implements the in-memory compilation workspace the
// engine mirrors the on-disk project set into. It is the mutation sink for
// refresh cycles and the read side for snapshot and file-ownership queries.
package workspace

import (
	"fmt"
	"sort"
	"sync"

	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Workspace       = (*Workspace)(nil)
	_ ports.WorkspaceReader = (*Workspace)(nil)
)

// Stats counts mutation calls per kind. Tests use it to assert that a
// refresh with no disk change touches nothing.
type Stats struct {
	ProjectsAdded      int
	ProjectsRemoved    int
	ReferencesAdded    int
	ReferencesRemoved  int
	ProjectRefsAdded   int
	ProjectRefsRemoved int
	DocumentsAdded     int
	DocumentsRemoved   int
	ConfigsApplied     int
}

type project struct {
	info              domain.ProjectInfo
	compilationConfig domain.CompilationConfig
	parseConfig       domain.ParseConfig
	metadataRefs      map[ports.ReferenceHandle]string
	projectRefs       map[ports.ProjectHandle]struct{}
	documents         map[ports.DocumentHandle]string
}

// Workspace is a handle-keyed in-memory model of every registered project.
type Workspace struct {
	mu       sync.RWMutex
	nextID   uint64
	projects map[ports.ProjectHandle]*project
	order    []ports.ProjectHandle
	stats    Stats
}

// New creates an empty Workspace.
func New() *Workspace {
	return &Workspace{
		projects: make(map[ports.ProjectHandle]*project),
	}
}

// AddProject registers a project and returns its identity handle.
func (w *Workspace) AddProject(info domain.ProjectInfo) (ports.ProjectHandle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	handle := ports.ProjectHandle(fmt.Sprintf("proj-%d", w.nextID))
	w.projects[handle] = &project{
		info:         info,
		metadataRefs: make(map[ports.ReferenceHandle]string),
		projectRefs:  make(map[ports.ProjectHandle]struct{}),
		documents:    make(map[ports.DocumentHandle]string),
	}
	w.order = append(w.order, handle)
	w.stats.ProjectsAdded++
	return handle, nil
}

// RemoveProject removes a project and everything registered under it.
// Removing an unknown handle is a no-op, keeping the call idempotent.
func (w *Workspace) RemoveProject(handle ports.ProjectHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.projects[handle]; !ok {
		return nil
	}
	delete(w.projects, handle)
	for i, h := range w.order {
		if h == handle {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	// References other projects hold onto this handle are dropped lazily:
	// the engine removes them through its own diff on the next cycle.
	w.stats.ProjectsRemoved++
	return nil
}

// AddMetadataReferences registers library references for a project.
func (w *Workspace) AddMetadataReferences(handle ports.ProjectHandle, paths []string) ([]ports.ReferenceHandle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return nil, err
	}
	handles := make([]ports.ReferenceHandle, len(paths))
	for i, path := range paths {
		w.nextID++
		ref := ports.ReferenceHandle(fmt.Sprintf("ref-%d", w.nextID))
		p.metadataRefs[ref] = path
		handles[i] = ref
		w.stats.ReferencesAdded++
	}
	return handles, nil
}

// RemoveMetadataReference removes a single library reference.
func (w *Workspace) RemoveMetadataReference(handle ports.ProjectHandle, ref ports.ReferenceHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return err
	}
	if _, ok := p.metadataRefs[ref]; ok {
		delete(p.metadataRefs, ref)
		w.stats.ReferencesRemoved++
	}
	return nil
}

// AddProjectReferences registers references to other workspace projects.
func (w *Workspace) AddProjectReferences(handle ports.ProjectHandle, targets []ports.ProjectHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return err
	}
	for _, target := range targets {
		if _, ok := p.projectRefs[target]; !ok {
			p.projectRefs[target] = struct{}{}
			w.stats.ProjectRefsAdded++
		}
	}
	return nil
}

// RemoveProjectReference removes a single project-to-project reference.
func (w *Workspace) RemoveProjectReference(handle ports.ProjectHandle, target ports.ProjectHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return err
	}
	if _, ok := p.projectRefs[target]; ok {
		delete(p.projectRefs, target)
		w.stats.ProjectRefsRemoved++
	}
	return nil
}

// SetCompilationConfig applies the compilation configuration.
func (w *Workspace) SetCompilationConfig(handle ports.ProjectHandle, cfg domain.CompilationConfig) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return err
	}
	p.compilationConfig = cfg
	w.stats.ConfigsApplied++
	return nil
}

// SetParseConfig applies the parse-level configuration.
func (w *Workspace) SetParseConfig(handle ports.ProjectHandle, cfg domain.ParseConfig) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return err
	}
	p.parseConfig = cfg
	return nil
}

// AddDocuments registers source documents for a project.
func (w *Workspace) AddDocuments(handle ports.ProjectHandle, paths []string) ([]ports.DocumentHandle, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return nil, err
	}
	handles := make([]ports.DocumentHandle, len(paths))
	for i, path := range paths {
		w.nextID++
		doc := ports.DocumentHandle(fmt.Sprintf("doc-%d", w.nextID))
		p.documents[doc] = path
		handles[i] = doc
		w.stats.DocumentsAdded++
	}
	return handles, nil
}

// RemoveDocument removes a single source document.
func (w *Workspace) RemoveDocument(handle ports.ProjectHandle, doc ports.DocumentHandle) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.project(handle)
	if err != nil {
		return err
	}
	if _, ok := p.documents[doc]; ok {
		delete(p.documents, doc)
		w.stats.DocumentsRemoved++
	}
	return nil
}

// Snapshot returns a point-in-time view of every registered project, in
// registration order with sorted member lists.
func (w *Workspace) Snapshot(includeSourceFiles bool) domain.WorkspaceSnapshot {
	w.mu.RLock()
	defer w.mu.RUnlock()

	snap := domain.WorkspaceSnapshot{
		Projects: make([]domain.ProjectSnapshot, 0, len(w.order)),
	}
	for _, handle := range w.order {
		p := w.projects[handle]

		ps := domain.ProjectSnapshot{
			Name:               p.info.Name,
			FilePath:           p.info.FilePath,
			Framework:          p.info.Framework,
			MetadataReferences: sortedValues(p.metadataRefs),
			ProjectReferences:  w.refNames(p),
		}
		if includeSourceFiles {
			ps.SourceFiles = sortedValues(p.documents)
		}
		snap.Projects = append(snap.Projects, ps)
	}
	return snap
}

// ProjectByPath finds the project owning filePath, matching the project
// definition file first and registered documents second.
func (w *Workspace) ProjectByPath(filePath string) (domain.ProjectSummary, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, handle := range w.order {
		p := w.projects[handle]
		if p.info.FilePath == filePath {
			return summary(p), true
		}
	}
	for _, handle := range w.order {
		p := w.projects[handle]
		for _, doc := range p.documents {
			if doc == filePath {
				return summary(p), true
			}
		}
	}
	return domain.ProjectSummary{}, false
}

// Stats returns a copy of the mutation counters.
func (w *Workspace) Stats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// CompilationConfig returns the compilation configuration applied to a
// project.
func (w *Workspace) CompilationConfig(handle ports.ProjectHandle) (domain.CompilationConfig, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, err := w.project(handle)
	if err != nil {
		return domain.CompilationConfig{}, err
	}
	return p.compilationConfig, nil
}

// ParseConfig returns the parse configuration applied to a project.
func (w *Workspace) ParseConfig(handle ports.ProjectHandle) (domain.ParseConfig, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	p, err := w.project(handle)
	if err != nil {
		return domain.ParseConfig{}, err
	}
	return p.parseConfig, nil
}

func (w *Workspace) project(handle ports.ProjectHandle) (*project, error) {
	p, ok := w.projects[handle]
	if !ok {
		return nil, zerr.With(domain.ErrProjectNotFound, "handle", string(handle))
	}
	return p, nil
}

func (w *Workspace) refNames(p *project) []string {
	names := make([]string, 0, len(p.projectRefs))
	for target := range p.projectRefs {
		if tp, ok := w.projects[target]; ok {
			names = append(names, tp.info.Name)
		}
	}
	sort.Strings(names)
	return names
}

func summary(p *project) domain.ProjectSummary {
	return domain.ProjectSummary{
		Name:      p.info.Name,
		FilePath:  p.info.FilePath,
		Framework: p.info.Framework,
	}
}

func sortedValues[K comparable](m map[K]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
