package filter

import (
	"testing"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
)

func TestByPriorityNoneReturnsInputUnchanged(t *testing.T) {
	worlds := []model.World{world("b"), world("a")}
	got := ByPriority(worlds, model.PriorityNone, model.SortDesc)
	if !sameIDs(gotIDs(got), []string{"b", "a"}) {
		t.Errorf("got %v", gotIDs(got))
	}
}

func TestByPriorityBothDesc(t *testing.T) {
	worlds := []model.World{
		world("neither"),
		world("photo", func(w *model.World) { w.IsPhotographed = true }),
		world("both", func(w *model.World) { w.IsPhotographed = true; w.IsShared = true }),
		world("shared", func(w *model.World) { w.IsShared = true }),
	}
	got := ByPriority(worlds, model.PriorityBoth, model.SortDesc)
	if !sameIDs(gotIDs(got), []string{"both", "shared", "photo", "neither"}) {
		t.Errorf("got %v", gotIDs(got))
	}
}

func TestByPriorityAscInverts(t *testing.T) {
	worlds := []model.World{
		world("photo", func(w *model.World) { w.IsPhotographed = true }),
		world("neither"),
	}
	got := ByPriority(worlds, model.PriorityPhotographed, model.SortAsc)
	if !sameIDs(gotIDs(got), []string{"neither", "photo"}) {
		t.Errorf("got %v", gotIDs(got))
	}
}

func TestByPriorityEqualScoresKeepPrimaryOrder(t *testing.T) {
	worlds := []model.World{
		world("z", func(w *model.World) { w.IsShared = true }),
		world("a", func(w *model.World) { w.IsShared = true }),
		world("m"),
	}
	got := ByPriority(worlds, model.PriorityShared, model.SortDesc)
	if !sameIDs(gotIDs(got), []string{"z", "a", "m"}) {
		t.Errorf("equal scores must preserve input order, got %v", gotIDs(got))
	}
}

func TestByPriorityDoesNotMutateInput(t *testing.T) {
	worlds := []model.World{
		world("neither"),
		world("shared", func(w *model.World) { w.IsShared = true }),
	}
	ByPriority(worlds, model.PriorityShared, model.SortDesc)
	if !sameIDs(gotIDs(worlds), []string{"neither", "shared"}) {
		t.Errorf("input slice was reordered: %v", gotIDs(worlds))
	}
}
