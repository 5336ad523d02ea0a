package model

import (
	"testing"
	"time"
)

func named(ids ...string) []World {
	out := make([]World, len(ids))
	for i, id := range ids {
		out[i] = World{ID: id, Name: id}
	}
	return out
}

func ids(worlds []World) []string {
	return IDs(worlds)
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortByNameIsCaseInsensitive(t *testing.T) {
	worlds := []World{
		{ID: "b", Name: "banana"},
		{ID: "A", Name: "Apple"},
		{ID: "c", Name: "Cherry"},
	}
	SortWorldsLocal(worlds, SortByName, SortAsc)
	if got := ids(worlds); !equalIDs(got, []string{"A", "b", "c"}) {
		t.Errorf("got order %v", got)
	}
}

func TestSortMissingValuesLastBothDirections(t *testing.T) {
	v1, v2 := 5, 10
	for _, dir := range []SortDirection{SortAsc, SortDesc} {
		worlds := []World{
			{ID: "none"},
			{ID: "low", Visits: &v1},
			{ID: "high", Visits: &v2},
		}
		SortWorldsLocal(worlds, SortByVisits, dir)
		if worlds[2].ID != "none" {
			t.Errorf("dir %s: missing visits must sort last, got order %v", dir, ids(worlds))
		}
	}
}

func TestSortMissingNamesLast(t *testing.T) {
	worlds := []World{
		{ID: "empty", Name: ""},
		{ID: "z", Name: "zebra"},
		{ID: "a", Name: "ant"},
	}
	SortWorldsLocal(worlds, SortByName, SortDesc)
	if got := ids(worlds); !equalIDs(got, []string{"z", "a", "empty"}) {
		t.Errorf("got order %v", got)
	}
}

func TestSortByDateAddedDesc(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	worlds := []World{
		{ID: "old", DateAdded: base},
		{ID: "new", DateAdded: base.AddDate(0, 1, 0)},
		{ID: "never"}, // zero time counts as missing
	}
	SortWorldsLocal(worlds, SortByDateAdded, SortDesc)
	if got := ids(worlds); !equalIDs(got, []string{"new", "old", "never"}) {
		t.Errorf("got order %v", got)
	}
}

func TestSortIsStableOnTies(t *testing.T) {
	worlds := []World{
		{ID: "first", Favorites: 7},
		{ID: "second", Favorites: 7},
		{ID: "third", Favorites: 7},
	}
	SortWorldsLocal(worlds, SortByFavorites, SortAsc)
	if got := ids(worlds); !equalIDs(got, []string{"first", "second", "third"}) {
		t.Errorf("ties must keep input order, got %v", got)
	}
}

func TestSortUnknownFieldLeavesOrder(t *testing.T) {
	worlds := named("b", "a", "c")
	SortWorldsLocal(worlds, SortField("bogus"), SortAsc)
	if got := ids(worlds); !equalIDs(got, []string{"b", "a", "c"}) {
		t.Errorf("got order %v", got)
	}
}
