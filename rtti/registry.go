package rtti

import (
	"errors"
	"sort"
	"sync"

	"github.com/chazu/vrc/typeid"
)

// Validation errors.
var (
	ErrNotObject      = errors.New("declared type does not implement rtti.Object")
	ErrInheritedClass = errors.New("declared type reports another class")
)

// defaultRegistry holds every type declared with Declare.
var defaultRegistry = NewRegistry()

// Registry manages declared classes by name.
// Declaration takes the write lock; casting never touches the registry.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*Class
	byID   map[typeid.ID]*Class
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Class),
		byID:   make(map[typeid.ID]*Class),
	}
}

// Default returns the process-wide registry used by Declare.
func Default() *Registry {
	return defaultRegistry
}

// register adds c unless its name is taken.
// Returns the class already holding the name, or nil.
func (r *Registry) register(c *Class) *Class {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[c.name]; ok {
		return old
	}
	r.byName[c.name] = c
	// On an identifier collision the first declaration keeps the slot.
	if _, ok := r.byID[c.id]; !ok {
		r.byID[c.id] = c
	}
	return nil
}

// Lookup finds a class by declared name.
func (r *Registry) Lookup(name string) *Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// LookupID finds a class by identifier.
func (r *Registry) LookupID(id typeid.ID) *Class {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id]
}

// Len returns the number of declared classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// All returns every declared class, sorted by name.
func (r *Registry) All() []*Class {
	r.mu.RLock()
	result := make([]*Class, 0, len(r.byName))
	for _, c := range r.byName {
		result = append(result, c)
	}
	r.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].name < result[j].name })
	return result
}

// Validate checks that every declared type implements Object on its pointer
// and reports its own class. Run it once at startup; all failures are
// returned together.
func (r *Registry) Validate() error {
	var errs []error
	for _, c := range r.All() {
		if err := c.check(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Snapshot describes every declared class, sorted by name.
func (r *Registry) Snapshot() []ClassInfo {
	all := r.All()
	result := make([]ClassInfo, len(all))
	for i, c := range all {
		result[i] = c.Info()
	}
	return result
}

// Validate checks the process-wide registry.
func Validate() error {
	return defaultRegistry.Validate()
}
