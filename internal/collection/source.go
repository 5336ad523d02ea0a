// Package collection loads and caches the raw world lists per scope.
//
// The source is the pipeline's input: it fetches a scope's worlds through
// the bridge, caches them, and applies optimistic mutations. Concurrent
// loads for the same scope share one in-flight fetch. Every optimistic
// write captures a pre-image and restores it when the bridge rejects the
// command.
package collection

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/bridge"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/notify"
)

// Source caches worlds per scope and issues bridge mutations.
// Safe for concurrent use.
type Source struct {
	accessor bridge.CollectionAccessor
	commands bridge.Commander
	notifier notify.Notifier

	mu    sync.RWMutex
	cache map[bridge.Scope][]model.World
	group singleflight.Group
	subs  []func()
}

// NewSource creates an empty source over the given bridge capabilities.
func NewSource(accessor bridge.CollectionAccessor, commands bridge.Commander, notifier notify.Notifier) *Source {
	return &Source{
		accessor: accessor,
		commands: commands,
		notifier: notifier,
		cache:    make(map[bridge.Scope][]model.World),
	}
}

// OnChange registers a callback invoked after every cache mutation.
func (s *Source) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Source) notifyChange() {
	s.mu.RLock()
	subs := append(([]func())(nil), s.subs...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// Load returns the worlds for a scope, fetching through the bridge on a
// cache miss. force bypasses the cache but still coalesces with any fetch
// already in flight for the same scope. The search scope is presentation
// state, not bridge state: it always resolves to an empty list.
func (s *Source) Load(ctx context.Context, scope bridge.Scope, force bool) ([]model.World, error) {
	if scope.Kind() == bridge.KindSearch {
		s.mu.Lock()
		s.cache[scope] = nil
		s.mu.Unlock()
		return []model.World{}, nil
	}

	if !force {
		s.mu.RLock()
		cached, ok := s.cache[scope]
		s.mu.RUnlock()
		if ok {
			return model.CloneAll(cached), nil
		}
	}

	v, err, _ := s.group.Do(string(scope), func() (interface{}, error) {
		worlds, err := s.accessor.FetchCollection(ctx, scope)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[scope] = model.CloneAll(worlds)
		s.mu.Unlock()
		return worlds, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching collection for %q: %w", scope, err)
	}
	s.notifyChange()
	return model.CloneAll(v.([]model.World)), nil
}

// Worlds returns a copy of the cached worlds for a scope. An unloaded
// scope yields an empty list.
func (s *Source) Worlds(scope bridge.Scope) []model.World {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cached, ok := s.cache[scope]; ok {
		return model.CloneAll(cached)
	}
	return []model.World{}
}

// SetWorlds replaces the cached worlds for a scope.
func (s *Source) SetWorlds(scope bridge.Scope, worlds []model.World) {
	s.mu.Lock()
	s.cache[scope] = model.CloneAll(worlds)
	s.mu.Unlock()
	s.notifyChange()
}

// AddWorldToFolder optimistically appends a world to a folder's cache and
// its folder-membership lists, then confirms with the bridge. On failure
// the pre-image is restored and the user is notified.
func (s *Source) AddWorldToFolder(ctx context.Context, folder bridge.Scope, w model.World) error {
	pre := s.snapshot()

	s.mu.Lock()
	added := w.Clone()
	if !containsString(added.Folders, string(folder)) {
		added.Folders = append(added.Folders, string(folder))
	}
	s.cache[folder] = append(s.cache[folder], added)
	s.patchFoldersLocked(w.ID, func(folders []string) []string {
		if containsString(folders, string(folder)) {
			return folders
		}
		return append(folders, string(folder))
	})
	s.mu.Unlock()
	s.notifyChange()

	if err := s.commands.AddWorldToScope(ctx, folder, w.ID); err != nil {
		s.restore(pre)
		s.notifier.Notify(notify.LevelError, "Failed to add world to folder")
		return fmt.Errorf("adding world %q to folder %q: %w", w.ID, folder, err)
	}
	return nil
}

// RemoveWorldFromFolder optimistically removes a world from a folder's
// cache and membership lists, restoring the pre-image on bridge failure.
func (s *Source) RemoveWorldFromFolder(ctx context.Context, folder bridge.Scope, id string) error {
	pre := s.snapshot()

	s.mu.Lock()
	kept := s.cache[folder][:0:0]
	for _, w := range s.cache[folder] {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	s.cache[folder] = kept
	s.patchFoldersLocked(id, func(folders []string) []string {
		out := folders[:0:0]
		for _, f := range folders {
			if f != string(folder) {
				out = append(out, f)
			}
		}
		return out
	})
	s.mu.Unlock()
	s.notifyChange()

	if err := s.commands.RemoveWorldFromScope(ctx, folder, id); err != nil {
		s.restore(pre)
		s.notifier.Notify(notify.LevelError, "Failed to remove world from folder")
		return fmt.Errorf("removing world %q from folder %q: %w", id, folder, err)
	}
	return nil
}

// SetWorldFlag optimistically flips a boolean flag on the world in every
// cached scope, then confirms with the bridge. On failure the pre-image is
// restored and the user is notified.
func (s *Source) SetWorldFlag(ctx context.Context, id string, flag bridge.Flag, value bool) error {
	pre := s.snapshot()

	patch := model.WorldPatch{}
	switch flag {
	case bridge.FlagPhotographed:
		patch.IsPhotographed = &value
	case bridge.FlagShared:
		patch.IsShared = &value
	case bridge.FlagFavorite:
		patch.IsFavorite = &value
	default:
		return fmt.Errorf("flag %q: %w", flag, bridge.ErrUnknownFlag)
	}
	s.UpdateWorldProperty(id, patch)

	if err := s.commands.SetWorldFlag(ctx, id, flag, value); err != nil {
		s.restore(pre)
		s.notifier.Notify(notify.LevelError, "Failed to update world status")
		return fmt.Errorf("setting flag %q on world %q: %w", flag, id, err)
	}
	return nil
}

// UpdateWorldProperty patches the matching world across every cached scope,
// so a change is visible in every view that happens to show that world.
func (s *Source) UpdateWorldProperty(id string, patch model.WorldPatch) {
	s.mu.Lock()
	for scope, worlds := range s.cache {
		for i := range worlds {
			if worlds[i].ID == id {
				patch.Apply(&worlds[i])
			}
		}
		s.cache[scope] = worlds
	}
	s.mu.Unlock()
	s.notifyChange()
}

// patchFoldersLocked rewrites the folder-membership list of the matching
// world in every cached scope. Caller holds the lock.
func (s *Source) patchFoldersLocked(id string, fn func([]string) []string) {
	for _, worlds := range s.cache {
		for i := range worlds {
			if worlds[i].ID == id {
				worlds[i].Folders = fn(worlds[i].Folders)
			}
		}
	}
}

// snapshot captures a deep copy of the whole cache as a rollback pre-image.
// Collections here are a few thousand small structs at most; a full copy is
// simpler than tracking which scopes a mutation touched.
func (s *Source) snapshot() map[bridge.Scope][]model.World {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pre := make(map[bridge.Scope][]model.World, len(s.cache))
	for scope, worlds := range s.cache {
		pre[scope] = model.CloneAll(worlds)
	}
	return pre
}

// restore replaces the cache with a pre-image.
func (s *Source) restore(pre map[bridge.Scope][]model.World) {
	s.mu.Lock()
	s.cache = pre
	s.mu.Unlock()
	s.notifyChange()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
