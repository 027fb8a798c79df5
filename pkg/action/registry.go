package action

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry holds actions by their globally unique key
type Registry struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{actions: make(map[string]Action)}
}

// Register adds actions, rejecting any key that is already taken
func (r *Registry) Register(actions ...Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range actions {
		key := a.Definition().Key
		if _, exists := r.actions[key]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}
		r.actions[key] = a
	}

	return nil
}

// Get returns the action registered under key
func (r *Registry) Get(key string) (Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.actions[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, key)
	}
	return a, nil
}

// List returns every action sorted by key
func (r *Registry) List() []Action {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Action, 0, len(r.actions))
	for _, a := range r.actions {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Action) int {
		return strings.Compare(a.Definition().Key, b.Definition().Key)
	})
	return out
}
