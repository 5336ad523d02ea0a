package state

import (
	"testing"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
)

func TestNewStoreHasDefaults(t *testing.T) {
	s := NewStore()
	c := s.Criteria()
	if c.SortField != model.DefaultSortField || c.SortDirection != model.DefaultSortDirection {
		t.Errorf("sort defaults: %q/%q", c.SortField, c.SortDirection)
	}
	if c.Query != "" || c.Author != "" || c.Photographed.IsSet() {
		t.Errorf("predicates should start empty: %+v", c)
	}
}

func TestUnprocessedClearsStatusFilters(t *testing.T) {
	s := NewStore()
	s.SetPhotographedFilter(model.TriTrue)
	s.SetSharedFilter(model.TriFalse)
	s.SetUnprocessedFilter(true)

	c := s.Criteria()
	if !c.Unprocessed {
		t.Fatal("unprocessed should be on")
	}
	if c.Photographed.IsSet() || c.Shared.IsSet() {
		t.Errorf("status filters must clear: %+v", c)
	}
}

func TestStatusFiltersClearUnprocessed(t *testing.T) {
	s := NewStore()
	s.SetUnprocessedFilter(true)
	s.SetPhotographedFilter(model.TriTrue)
	if c := s.Criteria(); c.Unprocessed {
		t.Error("setting photographed must clear unprocessed")
	}

	s.SetUnprocessedFilter(true)
	s.SetSharedFilter(model.TriFalse)
	if c := s.Criteria(); c.Unprocessed {
		t.Error("setting shared must clear unprocessed")
	}
}

func TestFavoriteFilterLeavesUnprocessed(t *testing.T) {
	s := NewStore()
	s.SetUnprocessedFilter(true)
	s.SetFavoriteFilter(model.TriTrue)
	if c := s.Criteria(); !c.Unprocessed {
		t.Error("favorite filter is not part of the exclusion pair")
	}
}

func TestClearFiltersKeepsSortAndQuery(t *testing.T) {
	s := NewStore()
	s.SetQuery("park")
	s.SetAuthor("alice")
	s.SetTagFilters([]string{"fun"})
	s.SetFolderFilters([]string{"games"})
	s.SetMemoQuery("memo")
	s.SetPhotographedFilter(model.TriTrue)
	s.SetSortField(model.SortByName)
	s.SetSortDirection(model.SortAsc)
	s.SetPrioritySort(model.PriorityBoth, model.SortDesc)

	s.ClearFilters()

	c := s.Criteria()
	if c.Author != "" || c.Tags != nil || c.Folders != nil || c.MemoQuery != "" ||
		c.Photographed.IsSet() || c.Unprocessed {
		t.Errorf("predicates not cleared: %+v", c)
	}
	if c.Query != "park" {
		t.Error("free-text query must survive ClearFilters")
	}
	if c.SortField != model.SortByName || c.SortDirection != model.SortAsc {
		t.Error("sort configuration must survive ClearFilters")
	}
	if c.PriorityMode != model.PriorityBoth {
		t.Error("priority mode is sort configuration, not a predicate")
	}
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	s := NewStore()
	var calls int
	s.OnChange(func() { calls++ })

	s.SetQuery("a")
	s.SetAuthor("b")
	s.ClearFilters()

	if calls != 3 {
		t.Errorf("got %d criteria notifications, want 3", calls)
	}
}

func TestPersistHookFiresOnSortSettersOnly(t *testing.T) {
	s := NewStore()
	var got []model.SortField
	s.SetPersistHook(func(f model.SortField, d model.SortDirection) {
		got = append(got, f)
	})

	s.SetQuery("park")
	s.RestoreSortPreference(model.SortByVisits, model.SortAsc)
	if len(got) != 0 {
		t.Fatalf("hook fired on non-sort mutations: %v", got)
	}

	s.SetSortField(model.SortByName)
	s.SetSortDirection(model.SortDesc)
	if len(got) != 2 {
		t.Fatalf("hook should fire once per sort setter, got %v", got)
	}
	if got[0] != model.SortByName || got[1] != model.SortByName {
		t.Errorf("hook received %v", got)
	}
}

func TestSetDerivedNotifiesOnlyOnShapeChange(t *testing.T) {
	s := NewStore()
	var calls int
	s.OnDerived(func() { calls++ })

	d := Derived{
		Worlds:  []model.World{{ID: "w1"}},
		Authors: []string{"Alice"},
		Tags:    []string{"fun"},
	}
	s.SetDerived(d)
	s.SetDerived(d)
	if calls != 1 {
		t.Fatalf("identical commit must not re-notify, got %d", calls)
	}

	// An attribute flip on the same ID list still commits silently.
	flipped := d
	flipped.Worlds = []model.World{{ID: "w1", IsFavorite: true}}
	s.SetDerived(flipped)
	if calls != 1 {
		t.Fatalf("same shape must not re-notify, got %d", calls)
	}
	if !s.Derived().Worlds[0].IsFavorite {
		t.Error("the silent commit must still store fresh values")
	}

	s.SetDerived(Derived{Worlds: []model.World{{ID: "w2"}}})
	if calls != 2 {
		t.Errorf("shape change must notify, got %d", calls)
	}
}

func TestDerivedReturnsCopies(t *testing.T) {
	s := NewStore()
	s.SetDerived(Derived{Worlds: []model.World{{ID: "w1", Name: "orig"}}})

	d := s.Derived()
	d.Worlds[0].Name = "mutated"
	if s.Derived().Worlds[0].Name != "orig" {
		t.Error("Derived must return a copy")
	}
}
