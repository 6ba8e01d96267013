package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Registry holds the entities declared at startup. Entities are copied on
// registration and on lookup, so stored declarations never change.
type Registry struct {
	mu       sync.RWMutex
	entities map[string]Entity
}

func NewRegistry() *Registry {
	return &Registry{entities: make(map[string]Entity)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds e to the process-wide registry.
func Register(e Entity) error {
	return defaultRegistry.Register(e)
}

// MustRegister adds e to the process-wide registry and panics on failure.
func MustRegister(e Entity) {
	defaultRegistry.MustRegister(e)
}

// Register validates and stores e. A declaration problem rejects the whole
// entity.
func (r *Registry) Register(e Entity) error {
	return r.RegisterAll(e)
}

func (r *Registry) MustRegister(e Entity) {
	if err := r.Register(e); err != nil {
		panic(fmt.Sprintf("schema: failed to register entity %q: %v", e.Name, err))
	}
}

// RegisterAll stores every entity or none of them. All declaration problems
// are reported together.
func (r *Registry) RegisterAll(entities ...Entity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var merr *multierror.Error
	batch := make(map[string]bool, len(entities))
	for _, e := range entities {
		if err := e.Validate(); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		if _, exists := r.entities[e.Name]; exists || batch[e.Name] {
			merr = multierror.Append(merr, fmt.Errorf("%w: %s", ErrDuplicateEntity, e.Name))
			continue
		}
		batch[e.Name] = true
	}

	if err := merr.ErrorOrNil(); err != nil {
		return err
	}

	for _, e := range entities {
		r.entities[e.Name] = e.clone()
	}
	return nil
}

// Lookup returns a copy of the entity registered under name.
func (r *Registry) Lookup(name string) (Entity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entities[name]
	if !ok {
		return Entity{}, false
	}
	return e.clone(), true
}

// Entities returns registered entity names in sorted order.
func (r *Registry) Entities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entities))
	for name := range r.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
