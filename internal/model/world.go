// Package model defines the world-collection data types and the pure
// sorting and scoring logic shared by the filter pipeline.
//
// Everything here is plain data and pure functions. No external calls, no
// mutable package state.
package model

import "time"

// Platform describes where a world can run.
type Platform string

const (
	PlatformPC    Platform = "PC"
	PlatformQuest Platform = "Quest"
	PlatformCross Platform = "Cross-Platform"
)

// DerivePlatform maps the raw platform list reported by the API to a single
// display platform. A world listing both desktop and android runtimes is
// cross-platform; android alone means Quest; anything else is PC.
func DerivePlatform(raw []string) Platform {
	var windows, android bool
	for _, p := range raw {
		switch p {
		case "standalonewindows":
			windows = true
		case "android":
			android = true
		}
	}
	switch {
	case windows && android:
		return PlatformCross
	case android:
		return PlatformQuest
	default:
		return PlatformPC
	}
}

// World is a single collection item.
//
// Identity is the ID; everything else is display state that mutates in place
// through optimistic updates. Visits is a pointer because the API omits the
// count for some worlds, and missing values must sort after present ones.
type World struct {
	ID           string
	Name         string
	ThumbnailURL string
	AuthorName   string
	Visits       *int
	Favorites    int
	Capacity     int
	DateAdded    time.Time
	LastUpdated  time.Time
	Platform     Platform
	Tags         []string
	Folders      []string

	IsPhotographed bool
	IsShared       bool
	IsFavorite     bool
}

// Clone returns a deep copy; the Tags and Folders slices are not shared.
func (w World) Clone() World {
	c := w
	if w.Visits != nil {
		v := *w.Visits
		c.Visits = &v
	}
	if w.Tags != nil {
		c.Tags = append([]string(nil), w.Tags...)
	}
	if w.Folders != nil {
		c.Folders = append([]string(nil), w.Folders...)
	}
	return c
}

// CloneAll deep-copies a slice of worlds.
func CloneAll(worlds []World) []World {
	if worlds == nil {
		return nil
	}
	out := make([]World, len(worlds))
	for i, w := range worlds {
		out[i] = w.Clone()
	}
	return out
}

// IDs returns the world IDs in order.
func IDs(worlds []World) []string {
	ids := make([]string, len(worlds))
	for i, w := range worlds {
		ids[i] = w.ID
	}
	return ids
}

// WorldPatch is a partial update applied to a cached world. Nil fields are
// left untouched.
type WorldPatch struct {
	Name           *string
	IsPhotographed *bool
	IsShared       *bool
	IsFavorite     *bool
	Folders        *[]string
}

// Apply writes the non-nil fields of the patch onto w.
func (p WorldPatch) Apply(w *World) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.IsPhotographed != nil {
		w.IsPhotographed = *p.IsPhotographed
	}
	if p.IsShared != nil {
		w.IsShared = *p.IsShared
	}
	if p.IsFavorite != nil {
		w.IsFavorite = *p.IsFavorite
	}
	if p.Folders != nil {
		w.Folders = append([]string(nil), *p.Folders...)
	}
}
