package registry

import (
	"sync"

	"github.com/parley-dev/parley/pkg/domain"
)

// Interner deduplicates term instances by canonical form. It is an explicit,
// passed-in table, not ambient global state: independent verification tasks
// may share one for concurrent reads, and an entry is never mutated once
// interned.
type Interner struct {
	mu    sync.RWMutex
	terms map[string]domain.Term
}

// NewInterner creates an empty interning table.
func NewInterner() *Interner {
	return &Interner{terms: make(map[string]domain.Term)}
}

// Intern returns the canonical instance for the term, registering it on
// first sight.
func (i *Interner) Intern(t domain.Term) domain.Term {
	key := t.String()

	i.mu.RLock()
	cached, ok := i.terms[key]
	i.mu.RUnlock()
	if ok {
		return cached
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if cached, ok := i.terms[key]; ok {
		return cached
	}
	i.terms[key] = t
	return t
}

// Len returns the number of interned terms.
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.terms)
}
