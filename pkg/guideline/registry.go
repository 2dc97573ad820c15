package guideline

import "sync"

// Registry is an insertion-ordered, concurrency-safe collection of
// guidelines keyed by name. Upserting an existing name replaces it in
// place; new names append. An empty registry seeds itself with Default.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Guideline
	order []string
}

// NewRegistry creates a registry holding the given guidelines in order.
// With no guidelines it seeds the default preset, matching the behaviour
// of a first run with no persisted data.
func NewRegistry(guidelines ...Guideline) *Registry {
	r := &Registry{
		items: make(map[string]Guideline, len(guidelines)),
	}
	for _, g := range guidelines {
		r.upsertLocked(g)
	}
	if len(r.order) == 0 {
		r.upsertLocked(Default())
	}
	return r
}

// Names returns all guideline names in insertion order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Get returns the guideline stored under name.
func (r *Registry) Get(name string) (Guideline, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.items[name]
	return g, ok
}

// Upsert creates or fully replaces the guideline under g.Name.
// Replacing keeps the original position in the ordering.
func (r *Registry) Upsert(g Guideline) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upsertLocked(g)
}

func (r *Registry) upsertLocked(g Guideline) {
	if _, exists := r.items[g.Name]; !exists {
		r.order = append(r.order, g.Name)
	}
	r.items[g.Name] = g
}

// Delete removes the guideline under name. It reports false when the name
// is absent, leaving the registry untouched.
func (r *Registry) Delete(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[name]; !ok {
		return false
	}
	delete(r.items, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// HasAny reports whether the registry holds at least one guideline.
func (r *Registry) HasAny() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order) > 0
}

// Snapshot returns a consistent copy of all guidelines in insertion order,
// suitable for handing to a persistence layer.
func (r *Registry) Snapshot() []Guideline {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Guideline, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.items[name])
	}
	return out
}
