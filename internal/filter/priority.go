package filter

import (
	"sort"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
)

// ByPriority re-sorts an already-sorted list by flag-based priority score.
//
// This is a secondary ordering layered on top of the primary field sort:
// the sort is explicitly stable, so worlds with equal scores keep the order
// the primary sort gave them. Go's sort.Slice gives no stability guarantee,
// hence SliceStable.
func ByPriority(worlds []model.World, mode model.PriorityMode, dir model.SortDirection) []model.World {
	if mode == model.PriorityNone {
		return worlds
	}
	result := make([]model.World, len(worlds))
	copy(result, worlds)
	desc := dir == model.SortDesc
	sort.SliceStable(result, func(i, j int) bool {
		a := model.PriorityScore(result[i], mode)
		b := model.PriorityScore(result[j], mode)
		if desc {
			return a > b
		}
		return a < b
	})
	return result
}
