// Package selection tracks per-scope selections of world IDs.
//
// Selections are independent of filtering and survive scope navigation:
// each scope keeps its own set until explicitly cleared. The store holds
// only in-memory state and never calls the bridge.
package selection

import (
	"sync"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/bridge"
)

// Store holds one selection set per scope plus the global selection-mode
// flag. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	sets map[bridge.Scope]map[string]bool
	mode bool
}

// NewStore creates an empty selection store.
func NewStore() *Store {
	return &Store{sets: make(map[bridge.Scope]map[string]bool)}
}

// Toggle flips membership of id in the scope's set. A set that becomes
// empty is removed entirely, so HasSelection stays a presence check.
func (s *Store) Toggle(scope bridge.Scope, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[scope]
	if !ok {
		s.sets[scope] = map[string]bool{id: true}
		return
	}
	if set[id] {
		delete(set, id)
		if len(set) == 0 {
			delete(s.sets, scope)
		}
		return
	}
	set[id] = true
}

// SelectAll replaces the scope's selection with exactly ids.
func (s *Store) SelectAll(scope bridge.Scope, ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	s.sets[scope] = set
}

// SetSelection replaces the scope's selection, removing the scope entry
// entirely when ids is empty.
func (s *Store) SetSelection(scope bridge.Scope, ids []string) {
	if len(ids) == 0 {
		s.Clear(scope)
		return
	}
	s.SelectAll(scope, ids)
}

// Clear removes the scope's selection set.
func (s *Store) Clear(scope bridge.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, scope)
}

// Selected returns a copy of the scope's selection set. Callers always get
// a usable set, never nil.
func (s *Store) Selected(scope bridge.Scope) map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.sets[scope]))
	for id := range s.sets[scope] {
		out[id] = true
	}
	return out
}

// HasSelection reports whether the scope has any selected worlds. O(1) by
// entry presence.
func (s *Store) HasSelection(scope bridge.Scope) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sets[scope]
	return ok
}

// SetSelectionMode toggles the global selection mode. It does not clear any
// selections; callers decide whether to clear first.
func (s *Store) SetSelectionMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = enabled
}

// SelectionMode reports whether selection mode is enabled.
func (s *Store) SelectionMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}
