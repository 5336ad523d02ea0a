package model

// Tri is a three-state boolean filter: unset matches everything.
type Tri int8

const (
	TriUnset Tri = iota
	TriFalse
	TriTrue
)

// TriOf converts a concrete boolean to its Tri value.
func TriOf(v bool) Tri {
	if v {
		return TriTrue
	}
	return TriFalse
}

// IsSet reports whether the filter is active.
func (t Tri) IsSet() bool { return t != TriUnset }

// Matches reports whether a world flag passes this filter.
func (t Tri) Matches(v bool) bool {
	switch t {
	case TriTrue:
		return v
	case TriFalse:
		return !v
	default:
		return true
	}
}

// SortField names a sortable world attribute. The values are the wire names
// the bridge understands.
type SortField string

const (
	SortByName        SortField = "name"
	SortByAuthor      SortField = "authorName"
	SortByVisits      SortField = "visits"
	SortByFavorites   SortField = "favorites"
	SortByCapacity    SortField = "capacity"
	SortByDateAdded   SortField = "dateAdded"
	SortByLastUpdated SortField = "lastUpdated"
)

// Valid reports whether f is a known sort field.
func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByAuthor, SortByVisits, SortByFavorites,
		SortByCapacity, SortByDateAdded, SortByLastUpdated:
		return true
	}
	return false
}

// SortDirection orders a sort ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valid reports whether d is a known direction.
func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// Compiled-in sort preference, used until the bridge returns a persisted one.
const (
	DefaultSortField     = SortByDateAdded
	DefaultSortDirection = SortDesc
)

// PriorityMode selects the secondary flag-based reordering layered on top of
// the primary field sort.
type PriorityMode string

const (
	PriorityNone         PriorityMode = "none"
	PriorityPhotographed PriorityMode = "photographed"
	PriorityShared       PriorityMode = "shared"
	PriorityBoth         PriorityMode = "both"
)

// PriorityScore computes the integer rank of a world under a priority mode.
// In "both" mode a world with both flags scores 3, shared only 2,
// photographed only 1, neither 0.
func PriorityScore(w World, mode PriorityMode) int {
	switch mode {
	case PriorityPhotographed:
		if w.IsPhotographed {
			return 1
		}
	case PriorityShared:
		if w.IsShared {
			return 1
		}
	case PriorityBoth:
		switch {
		case w.IsPhotographed && w.IsShared:
			return 3
		case w.IsShared:
			return 2
		case w.IsPhotographed:
			return 1
		}
	}
	return 0
}

// FilterCriteria is a snapshot of every active predicate plus the sort
// configuration. The pipeline copies one of these at the start of each run
// so mid-run mutations never produce a half-applied result.
type FilterCriteria struct {
	Query     string
	Author    string
	Tags      []string
	Folders   []string
	MemoQuery string

	Photographed Tri
	Shared       Tri
	Favorite     Tri
	Unprocessed  bool

	SortField     SortField
	SortDirection SortDirection

	PriorityMode      PriorityMode
	PriorityDirection SortDirection
}

// DefaultCriteria returns the empty criteria with compiled-in sort defaults.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		SortField:         DefaultSortField,
		SortDirection:     DefaultSortDirection,
		PriorityMode:      PriorityNone,
		PriorityDirection: SortDesc,
	}
}

// Clone returns a copy that shares no slices with the original.
func (c FilterCriteria) Clone() FilterCriteria {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	if c.Folders != nil {
		out.Folders = append([]string(nil), c.Folders...)
	}
	return out
}
