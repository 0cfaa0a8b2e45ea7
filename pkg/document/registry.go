package document

import (
	"maps"
	"slices"
	"sync"

	"github.com/matzehuels/ariel/pkg/components"
	"github.com/matzehuels/ariel/pkg/element"
	"github.com/matzehuels/ariel/pkg/errors"
)

// Registry maps component names used in documents to components.
// It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]element.Component
	builtin    map[string]bool
}

// Default is the registry used when none is given. It holds the built-in
// components.
var Default = NewRegistry()

// NewRegistry returns a registry preloaded with every built-in component.
func NewRegistry() *Registry {
	r := &Registry{
		components: make(map[string]element.Component),
		builtin:    make(map[string]bool),
	}
	for _, s := range components.Sugars() {
		r.components[s.String()] = s.Component()
		r.builtin[s.String()] = true
	}
	return r
}

// Register adds or replaces a component. Replacing a built-in makes the
// name count against depth limits like any other component.
func (r *Registry) Register(name string, c element.Component) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidInput, "component name cannot be empty")
	}
	if c == nil {
		return errors.New(errors.ErrCodeInvalidInput, "component %s is nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components[name] = c
	delete(r.builtin, name)
	return nil
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (element.Component, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	return c, ok
}

// Resolve returns the component registered under name, or a component that
// fails with NOT_FOUND when invoked. The failure surfaces as a diagnostic
// during extraction.
func (r *Registry) Resolve(name string) element.Component {
	if c, ok := r.Lookup(name); ok {
		return c
	}
	return func(element.Props) (element.Element, error) {
		return nil, errors.New(errors.ErrCodeNotFound, "unknown component %q", name)
	}
}

// Create returns an invocation of the component registered under name.
// Unknown names resolve as in [Registry.Resolve].
func (r *Registry) Create(name string, props element.Props, children ...element.Element) element.Composite {
	c := element.Create(name, r.Resolve(name), props, children...)
	r.mu.RLock()
	c.Builtin = r.builtin[name]
	r.mu.RUnlock()
	return c
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.components))
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{components: maps.Clone(r.components), builtin: maps.Clone(r.builtin)}
}
