package behavior

import (
	"fmt"
	"sort"
	"sync"
)

// registry maps behavior names to their factories.
// A package-level instance backs Register/New so behavior packages can
// register themselves from init, the same way image codecs register decoders.
type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

var defaultRegistry = &registry{factories: make(map[string]Factory)}

// Register adds a named behavior factory to the registry. Panics if the name
// is already taken or the factory is nil; registration happens at init time
// where misuse is a programming error.
//
// Parameters:
//   - name: the behavior name scenes attach by
//   - f: the factory producing per-attachment instances
func Register(name string, f Factory) {
	if f == nil {
		panic(fmt.Sprintf("behavior: Register called with nil factory for %q", name))
	}
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	if _, exists := defaultRegistry.factories[name]; exists {
		panic(fmt.Sprintf("behavior: Register called twice for %q", name))
	}
	defaultRegistry.factories[name] = f
}

// New creates a fresh instance of the named behavior.
//
// Parameters:
//   - name: the registered behavior name
//
// Returns:
//   - Behavior: the new instance
//   - error: error if no behavior is registered under the name
func New(name string) (Behavior, error) {
	defaultRegistry.mu.RLock()
	f, ok := defaultRegistry.factories[name]
	defaultRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("behavior: no behavior registered as %q", name)
	}
	return f(), nil
}

// Names returns the registered behavior names in sorted order.
//
// Returns:
//   - []string: the registered names
func Names() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	names := make([]string, 0, len(defaultRegistry.factories))
	for name := range defaultRegistry.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
