// Package registry maps human-readable library names to documentation
// sources. The table is seeded from a built-in list and may grow at runtime
// via AddCustom; additions live in-process only and are not persisted.
package registry

import (
	"sync"

	"github.com/m-mizutani/docdive/pkg/domain/model"
)

type Registry struct {
	mu    sync.RWMutex
	names []string
	table map[string]*model.Library
}

// New creates a registry seeded with the built-in library table.
func New() *Registry {
	r := &Registry{
		table: make(map[string]*model.Library, len(builtinLibraries)),
	}
	for _, lib := range builtinLibraries {
		cp := lib
		r.names = append(r.names, cp.Name)
		r.table[cp.Name] = &cp
	}
	return r
}

// Resolve looks up a library by exact, case-sensitive name. The returned
// descriptors are ordered; the first is the default source.
func (x *Registry) Resolve(name string) ([]model.RepositoryDescriptor, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	lib, ok := x.table[name]
	if !ok || len(lib.Repos) == 0 {
		return nil, false
	}

	repos := make([]model.RepositoryDescriptor, len(lib.Repos))
	copy(repos, lib.Repos)
	return repos, true
}

// Get returns the full library record for a name.
func (x *Registry) Get(name string) (*model.Library, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	lib, ok := x.table[name]
	if !ok {
		return nil, false
	}
	return cloneLibrary(lib), true
}

// cloneLibrary copies a record including its slices, so callers cannot
// write through to registry state.
func cloneLibrary(lib *model.Library) *model.Library {
	cp := *lib
	cp.Tags = append([]string(nil), lib.Tags...)
	cp.Repos = append([]model.RepositoryDescriptor(nil), lib.Repos...)
	return &cp
}

// AddCustom appends a descriptor to the named library, creating the entry
// under the "custom" category if it does not exist yet.
func (x *Registry) AddCustom(name string, desc model.RepositoryDescriptor) {
	x.mu.Lock()
	defer x.mu.Unlock()

	lib, ok := x.table[name]
	if !ok {
		lib = &model.Library{
			Name:     name,
			Category: "custom",
		}
		x.names = append(x.names, name)
		x.table[name] = lib
	}
	lib.Repos = append(lib.Repos, desc)
}

// ListNames returns all registered names in insertion order: built-ins
// first, then custom additions.
func (x *Registry) ListNames() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	names := make([]string, len(x.names))
	copy(names, x.names)
	return names
}

func (x *Registry) Count() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.names)
}

// ByCategory groups registered names by category, preserving insertion order
// within each group.
func (x *Registry) ByCategory() map[string][]string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	groups := make(map[string][]string)
	for _, name := range x.names {
		lib := x.table[name]
		groups[lib.Category] = append(groups[lib.Category], name)
	}
	return groups
}

// Libraries returns copies of all registered records in insertion order.
func (x *Registry) Libraries() []*model.Library {
	x.mu.RLock()
	defer x.mu.RUnlock()

	libs := make([]*model.Library, 0, len(x.names))
	for _, name := range x.names {
		libs = append(libs, cloneLibrary(x.table[name]))
	}
	return libs
}
