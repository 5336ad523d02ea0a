// Package bridge declares the capability surface of the native command
// bridge.
//
// The bridge owns all persistence and network traffic; this core only ever
// sees it as a set of asynchronous calls. Each concern is its own small
// interface so stores and the pipeline depend on exactly what they use, and
// tests swap in fakes per capability.
package bridge

import (
	"context"
	"errors"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
)

// ErrUnknownFlag reports a world flag the bridge does not recognize.
var ErrUnknownFlag = errors.New("unknown world flag")

// Scope names a bucket of worlds: a folder, or one of the reserved
// sentinels below. Scopes key both the collection cache and the selection
// store.
type Scope string

// Reserved scopes. The leading/trailing underscores keep them from
// colliding with user folder names.
const (
	ScopeAll          Scope = "__all__"
	ScopeUnclassified Scope = "__unclassified__"
	ScopeHidden       Scope = "__hidden__"
	ScopeSearch       Scope = "__search__"
)

// ScopeKind discriminates how a scope's collection is fetched.
type ScopeKind int

const (
	KindFolder ScopeKind = iota
	KindAll
	KindUnclassified
	KindHidden
	KindSearch
)

// Kind returns the fetch behavior for this scope.
func (s Scope) Kind() ScopeKind {
	switch s {
	case ScopeAll:
		return KindAll
	case ScopeUnclassified:
		return KindUnclassified
	case ScopeHidden:
		return KindHidden
	case ScopeSearch:
		return KindSearch
	default:
		return KindFolder
	}
}

// IsFolder reports whether the scope is a plain user folder.
func (s Scope) IsFolder() bool { return s.Kind() == KindFolder }

// Flag names a world boolean toggled through the bridge.
type Flag string

const (
	FlagPhotographed Flag = "isPhotographed"
	FlagShared       Flag = "isShared"
	FlagFavorite     Flag = "isFavorite"
)

// CollectionAccessor fetches the raw world list for a scope.
type CollectionAccessor interface {
	FetchCollection(ctx context.Context, scope Scope) ([]model.World, error)
}

// MemoSearcher resolves a memo substring query to matching world IDs.
type MemoSearcher interface {
	SearchMemoText(ctx context.Context, query string) ([]string, error)
}

// Sorter reorders an already-filtered list on the bridge side.
type Sorter interface {
	SortWorlds(ctx context.Context, worlds []model.World, field model.SortField, dir model.SortDirection) ([]model.World, error)
}

// TagSource fetches the global tag list used as a facet fallback.
type TagSource interface {
	FetchGlobalTags(ctx context.Context) ([]string, error)
}

// PreferenceStore persists the sort preference across sessions.
type PreferenceStore interface {
	GetSortPreference(ctx context.Context) (model.SortField, model.SortDirection, error)
	SetSortPreference(ctx context.Context, field model.SortField, dir model.SortDirection) error
}

// Commander issues world mutations. Every call is confirmed or failed by
// the bridge; callers apply changes optimistically and roll back on failure.
type Commander interface {
	AddWorldToScope(ctx context.Context, scope Scope, id string) error
	RemoveWorldFromScope(ctx context.Context, scope Scope, id string) error
	SetWorldFlag(ctx context.Context, id string, flag Flag, value bool) error
}

// Capabilities bundles the full bridge surface for application wiring.
type Capabilities struct {
	Collection  CollectionAccessor
	Memos       MemoSearcher
	Sorter      Sorter
	Tags        TagSource
	Preferences PreferenceStore
	Commands    Commander
}
