// Package registry holds named process scenarios and the shared term
// interner.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/parley-dev/parley/pkg/domain"
)

// Scenario is a named, ready-built process term with a short description.
type Scenario struct {
	Name        string
	Description string
	Term        domain.Term
}

// Registry manages the available scenarios. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	scenarios map[string]Scenario
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{scenarios: make(map[string]Scenario)}
}

// Register adds a scenario. A scenario with the same name is overwritten.
func (r *Registry) Register(s Scenario) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scenarios[s.Name] = s
}

// Lookup resolves a scenario by name.
func (r *Registry) Lookup(name string) (Scenario, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.scenarios[name]
	if !ok {
		return Scenario{}, fmt.Errorf("scenario not found: %s", name)
	}
	return s, nil
}

// List returns every scenario sorted by name.
func (r *Registry) List() []Scenario {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Scenario, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
