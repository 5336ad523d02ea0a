// Package app wires the filter core together: state, collection source,
// selection, preference sync, notifications and the pipeline.
//
// The host embeds one App and drives it through the state setters and the
// scope switcher; derived results come back through the state store's
// OnDerived subscription and notifications through the hub.
package app

import (
	"context"
	"sync"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/bridge"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/collection"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/filter"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/logging"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/notify"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/pipeline"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/prefs"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/romaji"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/selection"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/state"
)

// Options tunes optional app behavior. The zero value is the production
// configuration.
type Options struct {
	// Transliterator overrides cross-script query matching. Nil selects
	// the built-in kana romanizer.
	Transliterator filter.Transliterator
}

// App is the assembled filter core. Construct with New, then Start.
type App struct {
	hub       *notify.Hub
	state     *state.Store
	selection *selection.Store
	source    *collection.Source
	prefs     *prefs.Sync
	pipeline  *pipeline.Pipeline

	scopeMu sync.RWMutex
	scope   bridge.Scope
}

// New assembles an app over the given bridge capabilities.
func New(caps bridge.Capabilities, opts Options) *App {
	translit := opts.Transliterator
	if translit == nil {
		translit = romaji.Kana{}
	}

	a := &App{
		hub:       notify.NewHub(),
		state:     state.NewStore(),
		selection: selection.NewStore(),
		prefs:     prefs.New(caps.Preferences),
	}
	a.scope = bridge.ScopeAll
	a.source = collection.NewSource(caps.Collection, caps.Commands, a.hub)
	a.pipeline = pipeline.New(
		a.state,
		a.activeWorlds,
		caps.Memos,
		caps.Sorter,
		caps.Tags,
		a.hub,
		translit,
	)

	a.state.SetPersistHook(a.prefs.PersistHook())
	a.state.OnChange(func() { a.pipeline.Kick(context.Background()) })
	a.source.OnChange(func() { a.pipeline.Kick(context.Background()) })
	return a
}

// Start restores the persisted sort preference, loads the initial scope and
// runs the first pipeline pass. The OnChange subscriptions installed in New
// make the preference restore and the collection load each kick the
// pipeline, so no explicit kick is needed here.
func (a *App) Start(ctx context.Context) error {
	a.prefs.Load(ctx, a.state)
	if _, err := a.source.Load(ctx, a.ActiveScope(), false); err != nil {
		logging.Error("initial collection load failed", "scope", a.ActiveScope(), "error", err)
		a.hub.Notify(notify.LevelError, "Could not load worlds")
		return err
	}
	return nil
}

// ActiveScope returns the scope currently driving the pipeline.
func (a *App) ActiveScope() bridge.Scope {
	a.scopeMu.RLock()
	defer a.scopeMu.RUnlock()
	return a.scope
}

// SetActiveScope switches the pipeline input to another scope, loading its
// collection if needed. The selection is scope-keyed and survives the
// switch.
func (a *App) SetActiveScope(ctx context.Context, scope bridge.Scope) error {
	a.scopeMu.Lock()
	a.scope = scope
	a.scopeMu.Unlock()
	if _, err := a.source.Load(ctx, scope, false); err != nil {
		a.hub.Notify(notify.LevelError, "Could not load worlds")
		return err
	}
	a.pipeline.Kick(ctx)
	return nil
}

// Refresh re-fetches the active scope's collection, bypassing the cache.
func (a *App) Refresh(ctx context.Context) error {
	_, err := a.source.Load(ctx, a.ActiveScope(), true)
	return err
}

// activeWorlds is the pipeline's raw input provider.
func (a *App) activeWorlds() []model.World {
	return a.source.Worlds(a.ActiveScope())
}

// State exposes the criteria and derived-result store.
func (a *App) State() *state.Store { return a.state }

// Selection exposes the scope-keyed selection store.
func (a *App) Selection() *selection.Store { return a.selection }

// Source exposes the collection cache for world mutations.
func (a *App) Source() *collection.Source { return a.source }

// Notifications exposes the transient notification hub.
func (a *App) Notifications() *notify.Hub { return a.hub }
