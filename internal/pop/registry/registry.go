// Package registry maps altchain keys to their chain implementations.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownChain is returned by Get for keys that were never registered.
	ErrUnknownChain = errors.New("unknown chain")
	// ErrDuplicateChain is returned when a key is registered twice.
	ErrDuplicateChain = errors.New("chain already registered")
)

// Registry holds the configured chains keyed by their identifier.
type Registry[C any] struct {
	mu     sync.RWMutex
	chains map[string]C
}

// New returns an empty registry.
func New[C any]() *Registry[C] {
	return &Registry[C]{chains: make(map[string]C)}
}

// Register adds chain under key.
func (r *Registry[C]) Register(key string, chain C) error {
	if key == "" {
		return errors.New("chain key is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.chains[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateChain, key)
	}
	r.chains[key] = chain
	return nil
}

// Get returns the chain registered under key.
func (r *Registry[C]) Get(key string) (C, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chain, ok := r.chains[key]
	if !ok {
		var zero C
		return zero, fmt.Errorf("%w: %s", ErrUnknownChain, key)
	}
	return chain, nil
}

// Keys returns the registered keys in ascending order.
func (r *Registry[C]) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.chains))
	for k := range r.chains {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
