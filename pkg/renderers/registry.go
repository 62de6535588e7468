// Package renderers defines the serializer seam between paginated documents
// and portable output formats, plus a registry for discovering serializers by
// name.
package renderers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-courtforms/pkg/layout"
)

// Serializer converts a finalized document into a byte representation (PDF,
// plain-text transcript, etc.).
type Serializer interface {
	Name() string
	ContentType() string
	Serialize(ctx context.Context, doc *layout.Document) ([]byte, error)
}

// Registry stores serializers by name, providing discovery and duplication
// safeguards. Implementations can embed or wrap this for dependency injection.
type Registry struct {
	mu          sync.RWMutex
	serializers map[string]Serializer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		serializers: make(map[string]Serializer),
	}
}

// Register adds a serializer by its Name(). Duplicate names return an error.
func (r *Registry) Register(serializer Serializer) error {
	if serializer == nil {
		return fmt.Errorf("renderers: serializer is required")
	}
	name := serializer.Name()
	if name == "" {
		return fmt.Errorf("renderers: serializer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.serializers[name]; exists {
		return fmt.Errorf("renderers: serializer %q already registered", name)
	}

	r.serializers[name] = serializer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(serializer Serializer) {
	if err := r.Register(serializer); err != nil {
		panic(err)
	}
}

// Get retrieves a serializer by name.
func (r *Registry) Get(name string) (Serializer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	serializer, ok := r.serializers[name]
	if !ok {
		return nil, fmt.Errorf("renderers: serializer %q not found", name)
	}
	return serializer, nil
}

// List returns a sorted list of serializer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.serializers))
	for name := range r.serializers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a serializer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.serializers[name]
	return ok
}
