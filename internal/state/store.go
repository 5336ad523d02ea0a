// Package state holds the filter criteria and the derived filter results.
//
// The store is a pure state container: setters are plain transitions and
// the pipeline does all computation. Two invariants are enforced at the
// mutation boundary rather than at read time: the unprocessed filter is
// mutually exclusive with the photographed/shared filters, and ClearFilters
// leaves the sort configuration and the free-text query alone.
package state

import (
	"slices"
	"sync"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
)

// Derived is the output of a pipeline run: the filtered, sorted world list
// plus the facet lists computed from it.
type Derived struct {
	Worlds  []model.World
	Authors []string
	Tags    []string
}

// clone returns a copy sharing no slices with d.
func (d Derived) clone() Derived {
	return Derived{
		Worlds:  model.CloneAll(d.Worlds),
		Authors: append([]string(nil), d.Authors...),
		Tags:    append([]string(nil), d.Tags...),
	}
}

// sameShape compares two derived results by value: world ID order and both
// facet lists. Attribute changes on the same ID list do not count.
func (d Derived) sameShape(o Derived) bool {
	return slices.Equal(model.IDs(d.Worlds), model.IDs(o.Worlds)) &&
		slices.Equal(d.Authors, o.Authors) &&
		slices.Equal(d.Tags, o.Tags)
}

// Store is the filter state container. One instance per application root;
// tests construct their own. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	criteria model.FilterCriteria
	derived  Derived

	persist     func(model.SortField, model.SortDirection)
	criteriaSub []func()
	derivedSub  []func()
}

// NewStore creates a store with empty predicates and compiled-in sort
// defaults.
func NewStore() *Store {
	return &Store{criteria: model.DefaultCriteria()}
}

// OnChange registers a callback invoked after every criteria mutation.
// The pipeline hangs off this. Derived writes do not fire it, or the
// pipeline would retrigger itself on commit.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteriaSub = append(s.criteriaSub, fn)
}

// OnDerived registers a callback invoked when a derived result actually
// changed shape. Redundant commits are swallowed before this fires.
func (s *Store) OnDerived(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.derivedSub = append(s.derivedSub, fn)
}

// SetPersistHook installs the fire-and-forget preference writer invoked by
// the sort setters.
func (s *Store) SetPersistHook(fn func(model.SortField, model.SortDirection)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist = fn
}

// Criteria returns a snapshot of the current criteria.
func (s *Store) Criteria() model.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.Clone()
}

// Derived returns a copy of the current derived result.
func (s *Store) Derived() Derived {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.derived.clone()
}

// SetDerived commits a pipeline result. The write is all-or-nothing for the
// three derived fields, and downstream subscribers only fire when the
// result differs by value from what is already stored.
func (s *Store) SetDerived(d Derived) {
	s.mu.Lock()
	changed := !s.derived.sameShape(d)
	s.derived = d.clone()
	subs := append(([]func())(nil), s.derivedSub...)
	s.mu.Unlock()
	if changed {
		for _, fn := range subs {
			fn()
		}
	}
}

// mutate runs fn under the lock, then notifies criteria subscribers.
func (s *Store) mutate(fn func(c *model.FilterCriteria)) {
	s.mu.Lock()
	fn(&s.criteria)
	subs := append(([]func())(nil), s.criteriaSub...)
	s.mu.Unlock()
	for _, sub := range subs {
		sub()
	}
}

// SetQuery sets the free-text query.
func (s *Store) SetQuery(q string) {
	s.mutate(func(c *model.FilterCriteria) { c.Query = q })
}

// SetAuthor sets the exact-match author filter. Empty disables it.
func (s *Store) SetAuthor(author string) {
	s.mutate(func(c *model.FilterCriteria) { c.Author = author })
}

// SetTagFilters sets the required bare tag names (AND semantics).
func (s *Store) SetTagFilters(tags []string) {
	s.mutate(func(c *model.FilterCriteria) {
		c.Tags = append([]string(nil), tags...)
	})
}

// SetFolderFilters sets the required folder memberships (AND semantics).
func (s *Store) SetFolderFilters(folders []string) {
	s.mutate(func(c *model.FilterCriteria) {
		c.Folders = append([]string(nil), folders...)
	})
}

// SetMemoQuery sets the memo substring query.
func (s *Store) SetMemoQuery(q string) {
	s.mutate(func(c *model.FilterCriteria) { c.MemoQuery = q })
}

// SetPhotographedFilter sets the photographed flag filter. Activating it
// clears the unprocessed filter; the two are mutually exclusive.
func (s *Store) SetPhotographedFilter(t model.Tri) {
	s.mutate(func(c *model.FilterCriteria) {
		c.Photographed = t
		if t.IsSet() {
			c.Unprocessed = false
		}
	})
}

// SetSharedFilter sets the shared flag filter, clearing unprocessed when
// activated.
func (s *Store) SetSharedFilter(t model.Tri) {
	s.mutate(func(c *model.FilterCriteria) {
		c.Shared = t
		if t.IsSet() {
			c.Unprocessed = false
		}
	})
}

// SetFavoriteFilter sets the favorite flag filter.
func (s *Store) SetFavoriteFilter(t model.Tri) {
	s.mutate(func(c *model.FilterCriteria) { c.Favorite = t })
}

// SetUnprocessedFilter sets the unprocessed filter. Enabling it clears the
// photographed and shared filters.
func (s *Store) SetUnprocessedFilter(on bool) {
	s.mutate(func(c *model.FilterCriteria) {
		c.Unprocessed = on
		if on {
			c.Photographed = model.TriUnset
			c.Shared = model.TriUnset
		}
	})
}

// SetSortField updates the sort field and fires the persist hook. Hook
// failure is the hook's problem; the in-memory state is already committed.
func (s *Store) SetSortField(f model.SortField) {
	var persist func(model.SortField, model.SortDirection)
	var dir model.SortDirection
	s.mutate(func(c *model.FilterCriteria) {
		c.SortField = f
		persist = s.persist
		dir = c.SortDirection
	})
	if persist != nil {
		persist(f, dir)
	}
}

// SetSortDirection updates the sort direction and fires the persist hook.
func (s *Store) SetSortDirection(d model.SortDirection) {
	var persist func(model.SortField, model.SortDirection)
	var field model.SortField
	s.mutate(func(c *model.FilterCriteria) {
		c.SortDirection = d
		persist = s.persist
		field = c.SortField
	})
	if persist != nil {
		persist(field, d)
	}
}

// RestoreSortPreference merges a persisted sort preference without firing
// the persist hook. Used once at startup by preference sync.
func (s *Store) RestoreSortPreference(f model.SortField, d model.SortDirection) {
	s.mutate(func(c *model.FilterCriteria) {
		c.SortField = f
		c.SortDirection = d
	})
}

// SetPrioritySort updates the priority-sort mode and its direction.
func (s *Store) SetPrioritySort(mode model.PriorityMode, dir model.SortDirection) {
	s.mutate(func(c *model.FilterCriteria) {
		c.PriorityMode = mode
		c.PriorityDirection = dir
	})
}

// ClearFilters resets every predicate to its default. The sort field,
// sort direction and free-text query are orthogonal to "filters" and stay.
func (s *Store) ClearFilters() {
	s.mutate(func(c *model.FilterCriteria) {
		c.Author = ""
		c.Tags = nil
		c.Folders = nil
		c.MemoQuery = ""
		c.Photographed = model.TriUnset
		c.Shared = model.TriUnset
		c.Favorite = model.TriUnset
		c.Unprocessed = false
	})
}
