package reconciler

import (
	"sync"

	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
)

// ProjectState is the engine's memory of one (project, framework) pair
// mirrored into the workspace. Its three remembered maps hold the workspace
// handles registered in earlier cycles and form the "current" side of the
// next cycle's diff.
type ProjectState struct {
	// Key identifies the (directory, framework) pair.
	Key domain.ProjectKey

	// Handle is the workspace identity, assigned once at registration.
	Handle ports.ProjectHandle

	fileReferences    *domain.OrderedMap[ports.ReferenceHandle]
	projectReferences *domain.OrderedMap[ports.ProjectHandle]
	documents         *domain.OrderedMap[ports.DocumentHandle]
}

func newProjectState(key domain.ProjectKey, handle ports.ProjectHandle) *ProjectState {
	return &ProjectState{
		Key:               key,
		Handle:            handle,
		fileReferences:    domain.NewOrderedMap[ports.ReferenceHandle](),
		projectReferences: domain.NewOrderedMap[ports.ProjectHandle](),
		documents:         domain.NewOrderedMap[ports.DocumentHandle](),
	}
}

// StateCache owns the authoritative set of live ProjectState records, keyed
// by project directory with one entry per target framework. All mutation goes
// through the engine's refresh cycle; the cache serializes access so that
// lookups from watch callbacks never observe a partially updated record set.
type StateCache struct {
	mu       sync.RWMutex
	projects *domain.OrderedMap[[]*ProjectState]
}

// NewStateCache creates an empty StateCache.
func NewStateCache() *StateCache {
	return &StateCache{
		projects: domain.NewOrderedMap[[]*ProjectState](),
	}
}

// Reconcile brings the cache's directory key set in line with desired.
// Directories no longer desired have onRemove invoked exactly once per entry
// and are dropped. Directories that remain are left untouched; directories in
// desired that the cache has never seen are not created here, they are
// created by Update.
func (c *StateCache) Reconcile(desired []string, onRemove func(*ProjectState)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keep := make(map[string]struct{}, len(desired))
	for _, dir := range desired {
		keep[dir] = struct{}{}
	}

	for _, dir := range c.projects.Keys() {
		if _, ok := keep[dir]; ok {
			continue
		}
		states, _ := c.projects.Get(dir)
		for _, st := range states {
			onRemove(st)
		}
		c.projects.Delete(dir)
	}
}

// Update reconciles the tracked states for one directory against the current
// context list. Frameworks are matched by exact moniker equality: new
// frameworks get a ProjectState created through onAdd, frameworks no longer
// present have onRemove invoked and are dropped.
func (c *StateCache) Update(
	dir string,
	contexts []domain.ProjectContext,
	onAdd func(domain.ProjectContext) (ports.ProjectHandle, error),
	onRemove func(*ProjectState),
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, _ := c.projects.Get(dir)

	byFramework := make(map[string]*ProjectState, len(existing))
	for _, st := range existing {
		byFramework[st.Key.Framework] = st
	}

	next := make([]*ProjectState, 0, len(contexts))
	for _, pctx := range contexts {
		if st, ok := byFramework[pctx.Framework]; ok {
			next = append(next, st)
			delete(byFramework, pctx.Framework)
			continue
		}
		handle, err := onAdd(pctx)
		if err != nil {
			// Commit what has been registered so far. Losing the
			// record here would leak the projects already added in
			// this call and re-register them under fresh handles on
			// the next cycle. Unprocessed existing states stay
			// tracked until a successful cycle settles them.
			for _, st := range existing {
				if _, ok := byFramework[st.Key.Framework]; ok {
					next = append(next, st)
				}
			}
			c.projects.Set(dir, next)
			return err
		}
		next = append(next, newProjectState(pctx.Key(), handle))
	}

	// Whatever is left matched no current context.
	for _, st := range existing {
		if _, stale := byFramework[st.Key.Framework]; stale {
			onRemove(st)
		}
	}

	c.projects.Set(dir, next)
	return nil
}

// Find returns the state with an exact framework match if present, falling
// back to the first state tracked for the directory. The fallback covers
// project references whose target framework is not determinable from the
// referencing side.
func (c *StateCache) Find(dir, framework string) (*ProjectState, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	states, ok := c.projects.Get(dir)
	if !ok || len(states) == 0 {
		return nil, false
	}
	for _, st := range states {
		if st.Key.Framework == framework {
			return st, true
		}
	}
	return states[0], true
}

// All returns every tracked state in discovery order.
func (c *StateCache) All() []*ProjectState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var all []*ProjectState
	for _, states := range c.projects.All() {
		all = append(all, states...)
	}
	return all
}

// Dirs returns the tracked project directories in discovery order.
func (c *StateCache) Dirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.projects.Keys()
}
