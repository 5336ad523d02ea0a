// Package prefs syncs the sort preference with the bridge's preference
// store so it survives across sessions.
//
// The read happens once at startup; every later sort change is written
// fire-and-forget. A failed write is logged and otherwise ignored: the
// in-memory preference stays authoritative for the session.
package prefs

import (
	"context"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/bridge"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/logging"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/state"
)

// Sync loads and persists the sort preference.
type Sync struct {
	store bridge.PreferenceStore
}

// New creates a Sync over the given preference store.
func New(store bridge.PreferenceStore) *Sync {
	return &Sync{store: store}
}

// Load reads the persisted sort preference and merges it into the state
// store. The compiled-in default stands when the read fails or the stored
// pair doesn't validate.
func (s *Sync) Load(ctx context.Context, st *state.Store) {
	field, dir, err := s.store.GetSortPreference(ctx)
	if err != nil {
		logging.Warn("could not read sort preference, keeping default", "error", err)
		return
	}
	if !field.Valid() || !dir.Valid() {
		logging.Warn("ignoring invalid stored sort preference",
			"field", string(field), "direction", string(dir))
		return
	}
	st.RestoreSortPreference(field, dir)
}

// PersistHook returns the fire-and-forget writer the state store invokes on
// every sort change. The write runs on its own goroutine and never blocks
// the UI update it trails.
func (s *Sync) PersistHook() func(model.SortField, model.SortDirection) {
	return func(field model.SortField, dir model.SortDirection) {
		go func() {
			if err := s.store.SetSortPreference(context.Background(), field, dir); err != nil {
				logging.Warn("failed to persist sort preference",
					"field", string(field), "direction", string(dir), "error", err)
			}
		}()
	}
}
