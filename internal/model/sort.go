package model

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortWorldsLocal sorts worlds in place by the given field and direction.
//
// This is the fallback used when the bridge's sort call fails. Semantics:
// missing values (nil visits, zero timestamps, empty strings) sort last
// regardless of direction, numeric fields compare numerically, string fields
// compare case-insensitively with locale-aware collation. Ties keep their
// input order; the sort is stable and applies no further tiebreakers.
func SortWorldsLocal(worlds []World, field SortField, dir SortDirection) {
	// A collator is not safe for concurrent use, so build one per call.
	col := collate.New(language.Und, collate.Loose)
	desc := dir == SortDesc

	sort.SliceStable(worlds, func(i, j int) bool {
		c, iMissing, jMissing := compareField(col, worlds[i], worlds[j], field)
		if iMissing != jMissing {
			return !iMissing
		}
		if iMissing || c == 0 {
			return false
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareField compares a single field of two worlds. The missing flags let
// the caller pin absent values to the end of the list in both directions.
func compareField(col *collate.Collator, a, b World, field SortField) (c int, aMissing, bMissing bool) {
	switch field {
	case SortByName:
		return col.CompareString(a.Name, b.Name), a.Name == "", b.Name == ""
	case SortByAuthor:
		return col.CompareString(a.AuthorName, b.AuthorName), a.AuthorName == "", b.AuthorName == ""
	case SortByVisits:
		if a.Visits == nil || b.Visits == nil {
			return 0, a.Visits == nil, b.Visits == nil
		}
		return compareInt(*a.Visits, *b.Visits), false, false
	case SortByFavorites:
		return compareInt(a.Favorites, b.Favorites), false, false
	case SortByCapacity:
		return compareInt(a.Capacity, b.Capacity), false, false
	case SortByDateAdded:
		return a.DateAdded.Compare(b.DateAdded), a.DateAdded.IsZero(), b.DateAdded.IsZero()
	case SortByLastUpdated:
		return a.LastUpdated.Compare(b.LastUpdated), a.LastUpdated.IsZero(), b.LastUpdated.IsZero()
	default:
		return 0, false, false
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
