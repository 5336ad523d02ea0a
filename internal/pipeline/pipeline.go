// Package pipeline derives the filtered, sorted, faceted world list from
// the raw collection and the current filter criteria.
//
// Each run is tagged with a monotonically increasing generation. When runs
// overlap — a fast-typing user changes criteria while an earlier run awaits
// the bridge — only the most recently started run may commit; older runs
// that resolve later are discarded. Last writer wins by start order, not by
// completion order.
//
// External calls degrade instead of failing the run: a memo search error
// yields an empty result, a sort error falls back to the local sort, and
// the global-tag fallback is attempted at most once per pipeline lifetime.
// Every degradation surfaces one transient notification.
package pipeline

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/bridge"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/filter"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/logging"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/notify"
	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/state"
)

// Pipeline recomputes the derived result on demand. Construct one per
// application root and trigger it from state and collection change
// subscriptions.
type Pipeline struct {
	state    *state.Store
	worlds   func() []model.World
	memos    bridge.MemoSearcher
	sorter   bridge.Sorter
	tags     bridge.TagSource
	notifier notify.Notifier
	translit filter.Transliterator

	gen              atomic.Uint64
	commitMu         sync.Mutex
	tagFallbackTried atomic.Bool
}

// New wires a pipeline. worlds supplies the raw collection snapshot for the
// active scope; translit may be nil to disable cross-script matching.
func New(
	st *state.Store,
	worlds func() []model.World,
	memos bridge.MemoSearcher,
	sorter bridge.Sorter,
	tags bridge.TagSource,
	notifier notify.Notifier,
	translit filter.Transliterator,
) *Pipeline {
	return &Pipeline{
		state:    st,
		worlds:   worlds,
		memos:    memos,
		sorter:   sorter,
		tags:     tags,
		notifier: notifier,
		translit: translit,
	}
}

// Kick starts an execution on its own goroutine. Overlapping kicks are
// safe; stale runs discard themselves at commit.
func (p *Pipeline) Kick(ctx context.Context) {
	go p.Execute(ctx)
}

// Execute runs one tagged execution synchronously. It never returns an
// error: external failures degrade per stage and surface as notifications.
func (p *Pipeline) Execute(ctx context.Context) {
	gen := p.gen.Add(1)

	// Snapshot inputs up front so a mid-run mutation can't mix two
	// criteria generations in one result.
	crit := p.state.Criteria()
	worlds := p.worlds()

	filtered := filter.Apply(worlds, crit, p.translit)
	filtered = p.applyMemoFilter(ctx, crit, filtered)
	sorted := p.sortWorlds(ctx, crit, filtered)
	sorted = filter.ByPriority(sorted, crit.PriorityMode, crit.PriorityDirection)
	authors, tags := filter.Facets(sorted)
	tags = p.maybeFetchGlobalTags(ctx, sorted, tags)

	// The staleness check and the write must not interleave with another
	// run's commit, or an older run could slip in between them.
	p.commitMu.Lock()
	defer p.commitMu.Unlock()
	if p.gen.Load() != gen || ctx.Err() != nil {
		logging.Debug("discarding stale filter run", "generation", gen)
		return
	}
	p.state.SetDerived(state.Derived{Worlds: sorted, Authors: authors, Tags: tags})
}

// applyMemoFilter intersects the filtered list with the memo search result.
// A failed search matches nothing: showing everything would silently ignore
// an active filter.
func (p *Pipeline) applyMemoFilter(ctx context.Context, crit model.FilterCriteria, filtered []model.World) []model.World {
	if crit.MemoQuery == "" {
		return filtered
	}
	ids, err := p.memos.SearchMemoText(ctx, crit.MemoQuery)
	if err != nil {
		logging.Warn("memo search failed", "error", err)
		p.notifier.Notify(notify.LevelError, "Memo search failed")
		return []model.World{}
	}
	return filter.ByMemoMatches(filtered, ids)
}

// sortWorlds delegates sorting to the bridge and falls back to the local
// sort when the call fails or returns a list of the wrong length.
func (p *Pipeline) sortWorlds(ctx context.Context, crit model.FilterCriteria, filtered []model.World) []model.World {
	if len(filtered) == 0 {
		return filtered
	}
	sorted, err := p.sorter.SortWorlds(ctx, filtered, crit.SortField, crit.SortDirection)
	if err == nil && len(sorted) == len(filtered) {
		return sorted
	}
	if err != nil {
		logging.Warn("bridge sort failed, sorting locally", "error", err)
		p.notifier.Notify(notify.LevelError, "Sorting failed, using local order")
	} else {
		logging.Warn("bridge sort returned wrong length, sorting locally",
			"want", len(filtered), "got", len(sorted))
	}
	local := make([]model.World, len(filtered))
	copy(local, filtered)
	model.SortWorldsLocal(local, crit.SortField, crit.SortDirection)
	return local
}

// maybeFetchGlobalTags runs the one-shot global tag fallback: when a
// non-empty result produced no tag facet, fetch the global list once per
// pipeline lifetime and merge it in.
func (p *Pipeline) maybeFetchGlobalTags(ctx context.Context, worlds []model.World, tags []string) []string {
	if len(tags) > 0 || len(worlds) == 0 {
		return tags
	}
	if !p.tagFallbackTried.CompareAndSwap(false, true) {
		return tags
	}
	global, err := p.tags.FetchGlobalTags(ctx)
	if err != nil {
		logging.Warn("global tag fetch failed", "error", err)
		p.notifier.Notify(notify.LevelError, "Could not load tag list")
		return tags
	}
	return filter.MergeTags(tags, global)
}
