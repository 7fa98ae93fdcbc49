// Package scenario keeps the in-memory list of saved result snapshots
// for side-by-side comparison. Process lifetime only.
package scenario

import (
	"sync"

	"econ_explorer/pkg/models"
)

// Store is an upsert-by-name scenario list. At most one entry exists per
// capital configuration; re-saving replaces the entry in place so the
// list keeps its insertion order.
type Store struct {
	mu        sync.RWMutex
	scenarios []models.Scenario
}

func NewStore() *Store {
	return &Store{}
}

// Save upserts by capital name: an existing entry is replaced at its
// current position, a new one is appended.
func (s *Store) Save(sc models.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.scenarios {
		if existing.CapitalName == sc.CapitalName {
			s.scenarios[i] = sc
			return
		}
	}
	s.scenarios = append(s.scenarios, sc)
}

// All returns a copy of the current list.
func (s *Store) All() []models.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Clear empties the list.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = nil
}
