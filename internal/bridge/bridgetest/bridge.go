// Package bridgetest provides an in-memory command bridge for tests.
//
// The fake implements every capability interface over plain maps, with
// injectable errors per capability and optional before-call hooks so tests
// can gate and interleave overlapping pipeline runs deterministically.
package bridgetest

import (
	"context"
	"strings"
	"sync"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/bridge"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
)

// Bridge is an in-memory bridge. The zero value is not usable; call New.
type Bridge struct {
	mu sync.Mutex

	Collections map[bridge.Scope][]model.World
	Memos       map[string]string // world ID -> memo text
	GlobalTags  []string

	SortField     model.SortField
	SortDirection model.SortDirection

	// Injectable failures, one per capability.
	FetchErr  error
	SearchErr error
	SortErr   error
	TagsErr   error
	PrefErr   error
	CmdErr    error

	// Optional hooks invoked before a call resolves, outside the lock.
	// Tests use these to block a specific call until released.
	BeforeFetch  func(scope bridge.Scope)
	BeforeSearch func(query string)
	BeforeSort   func(field model.SortField, dir model.SortDirection)

	// Call counters.
	FetchCalls  int
	SearchCalls int
	SortCalls   int
	TagCalls    int
	PrefWrites  int
	Commands    []string
}

// New creates an empty in-memory bridge with default preferences.
func New() *Bridge {
	return &Bridge{
		Collections:   make(map[bridge.Scope][]model.World),
		Memos:         make(map[string]string),
		SortField:     model.DefaultSortField,
		SortDirection: model.DefaultSortDirection,
	}
}

// FetchCollection returns the configured worlds for a scope.
func (b *Bridge) FetchCollection(ctx context.Context, scope bridge.Scope) ([]model.World, error) {
	b.mu.Lock()
	b.FetchCalls++
	hook := b.BeforeFetch
	err := b.FetchErr
	worlds := model.CloneAll(b.Collections[scope])
	b.mu.Unlock()
	if hook != nil {
		hook(scope)
	}
	if err != nil {
		return nil, err
	}
	return worlds, nil
}

// SearchMemoText returns the IDs of worlds whose memo contains the query.
func (b *Bridge) SearchMemoText(ctx context.Context, query string) ([]string, error) {
	b.mu.Lock()
	b.SearchCalls++
	hook := b.BeforeSearch
	err := b.SearchErr
	var ids []string
	for id, memo := range b.Memos {
		if strings.Contains(strings.ToLower(memo), strings.ToLower(query)) {
			ids = append(ids, id)
		}
	}
	b.mu.Unlock()
	if hook != nil {
		hook(query)
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// SortWorlds sorts a copy of the list the same way the real bridge does.
func (b *Bridge) SortWorlds(ctx context.Context, worlds []model.World, field model.SortField, dir model.SortDirection) ([]model.World, error) {
	b.mu.Lock()
	b.SortCalls++
	hook := b.BeforeSort
	err := b.SortErr
	b.mu.Unlock()
	if hook != nil {
		hook(field, dir)
	}
	if err != nil {
		return nil, err
	}
	sorted := model.CloneAll(worlds)
	model.SortWorldsLocal(sorted, field, dir)
	return sorted, nil
}

// FetchGlobalTags returns the configured global tag list.
func (b *Bridge) FetchGlobalTags(ctx context.Context) ([]string, error) {
	b.mu.Lock()
	b.TagCalls++
	err := b.TagsErr
	tags := append([]string(nil), b.GlobalTags...)
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GetSortPreference returns the stored preference pair.
func (b *Bridge) GetSortPreference(ctx context.Context) (model.SortField, model.SortDirection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.PrefErr != nil {
		return "", "", b.PrefErr
	}
	return b.SortField, b.SortDirection, nil
}

// SetSortPreference stores the preference pair.
func (b *Bridge) SetSortPreference(ctx context.Context, field model.SortField, dir model.SortDirection) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.PrefWrites++
	if b.PrefErr != nil {
		return b.PrefErr
	}
	b.SortField, b.SortDirection = field, dir
	return nil
}

// AddWorldToScope records the command.
func (b *Bridge) AddWorldToScope(ctx context.Context, scope bridge.Scope, id string) error {
	return b.command("add " + string(scope) + " " + id)
}

// RemoveWorldFromScope records the command.
func (b *Bridge) RemoveWorldFromScope(ctx context.Context, scope bridge.Scope, id string) error {
	return b.command("remove " + string(scope) + " " + id)
}

// SetWorldFlag records the command.
func (b *Bridge) SetWorldFlag(ctx context.Context, id string, flag bridge.Flag, value bool) error {
	v := "false"
	if value {
		v = "true"
	}
	return b.command("flag " + id + " " + string(flag) + "=" + v)
}

func (b *Bridge) command(desc string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Commands = append(b.Commands, desc)
	return b.CmdErr
}

// Counts returns the per-capability call counters under the lock, for
// assertions that race with background goroutines.
func (b *Bridge) Counts() (fetch, search, sorts, tags, prefWrites int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.FetchCalls, b.SearchCalls, b.SortCalls, b.TagCalls, b.PrefWrites
}

// CommandLog returns a copy of the recorded command descriptions.
func (b *Bridge) CommandLog() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.Commands...)
}

// Capabilities returns the bridge bundled for application wiring.
func (b *Bridge) Capabilities() bridge.Capabilities {
	return bridge.Capabilities{
		Collection:  b,
		Memos:       b,
		Sorter:      b,
		Tags:        b,
		Preferences: b,
		Commands:    b,
	}
}
