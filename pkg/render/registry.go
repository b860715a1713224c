package render

import (
	"fmt"
	"sort"
	"sync"
)

// Named is anything addressable by name in a Registry.
type Named interface {
	Name() string
}

// Registry stores named components (templates, output renderers), providing
// discovery and duplication safeguards.
type Registry[T Named] struct {
	mu    sync.RWMutex
	kind  string
	items map[string]T
}

// NewRegistry creates an empty registry. kind only appears in error messages.
func NewRegistry[T Named](kind string) *Registry[T] {
	if kind == "" {
		kind = "component"
	}
	return &Registry[T]{
		kind:  kind,
		items: make(map[string]T),
	}
}

// NewTemplateRegistry creates an empty template registry.
func NewTemplateRegistry() *Registry[Template] {
	return NewRegistry[Template]("template")
}

// Register adds item by its Name(). Duplicate names return an error.
func (r *Registry[T]) Register(item T) error {
	if any(item) == nil {
		return fmt.Errorf("render: %s is required", r.kind)
	}
	name := item.Name()
	if name == "" {
		return fmt.Errorf("render: %s name is required", r.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return fmt.Errorf("render: %s %q already registered", r.kind, name)
	}

	r.items[name] = item
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry[T]) MustRegister(item T) {
	if err := r.Register(item); err != nil {
		panic(err)
	}
}

// Get retrieves an item by name.
func (r *Registry[T]) Get(name string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("render: %s %q not found", r.kind, name)
	}
	return item, nil
}

// List returns the sorted registered names.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[name]
	return ok
}
