// Package filter provides pure predicate filtering for worlds.
// All functions are simple: []World in, []World out. No side effects.
package filter

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"
)

// Transliterator converts a name to a Latin reading so Latin queries can
// match non-Latin world names. Implementations live in the romaji package.
type Transliterator interface {
	Romanize(s string) string
}

// Apply evaluates the synchronous predicates of the criteria against every
// world, in order: status flags, text query, author, tags, folders. All
// predicates AND together; evaluation short-circuits on the first failure.
func Apply(worlds []model.World, c model.FilterCriteria, tr Transliterator) []model.World {
	result := make([]model.World, 0, len(worlds))
	query := fold(c.Query)
	for _, w := range worlds {
		if matches(w, c, query, tr) {
			result = append(result, w)
		}
	}
	return result
}

// Matches reports whether a single world passes every synchronous predicate.
func Matches(w model.World, c model.FilterCriteria, tr Transliterator) bool {
	return matches(w, c, fold(c.Query), tr)
}

// matches takes the already-folded form of c.Query so Apply folds it once.
func matches(w model.World, c model.FilterCriteria, query string, tr Transliterator) bool {
	return matchesStatus(w, c) &&
		matchesQuery(w, query, tr) &&
		matchesAuthor(w, c.Author) &&
		matchesTags(w, c.Tags) &&
		matchesFolders(w, c.Folders)
}

func matchesStatus(w model.World, c model.FilterCriteria) bool {
	if c.Unprocessed && (w.IsPhotographed || w.IsShared) {
		return false
	}
	return c.Photographed.Matches(w.IsPhotographed) &&
		c.Shared.Matches(w.IsShared) &&
		c.Favorite.Matches(w.IsFavorite)
}

func matchesQuery(w model.World, query string, tr Transliterator) bool {
	if query == "" {
		return true
	}
	if strings.Contains(fold(w.Name), query) || strings.Contains(fold(w.AuthorName), query) {
		return true
	}
	if tr == nil {
		return false
	}
	return strings.Contains(fold(tr.Romanize(w.Name)), query) ||
		strings.Contains(fold(tr.Romanize(w.AuthorName)), query)
}

func matchesAuthor(w model.World, author string) bool {
	if author == "" {
		return true
	}
	return strings.EqualFold(w.AuthorName, author)
}

// matchesTags requires every bare tag name, re-encoded to its wire form, to
// appear among the world's tags. Worlds without tags fail as soon as any tag
// is required.
func matchesTags(w model.World, required []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(w.Tags) == 0 {
		return false
	}
	for _, name := range required {
		if !contains(w.Tags, model.EncodeAuthorTag(name)) {
			return false
		}
	}
	return true
}

// matchesFolders requires membership in every listed folder (AND, not OR).
func matchesFolders(w model.World, required []string) bool {
	if len(required) == 0 {
		return true
	}
	members := make(map[string]bool, len(w.Folders))
	for _, f := range w.Folders {
		members[strings.ToLower(f)] = true
	}
	for _, f := range required {
		if !members[strings.ToLower(f)] {
			return false
		}
	}
	return true
}

// ByMemoMatches keeps only worlds whose ID is in the memo search result,
// preserving input order.
func ByMemoMatches(worlds []model.World, ids []string) []model.World {
	matched := make(map[string]bool, len(ids))
	for _, id := range ids {
		matched[id] = true
	}
	result := make([]model.World, 0, len(worlds))
	for _, w := range worlds {
		if matched[w.ID] {
			result = append(result, w)
		}
	}
	return result
}

// fold normalizes a string for substring matching: NFKC (so full-width and
// half-width forms collapse) then lowercase.
func fold(s string) string {
	return strings.ToLower(norm.NFKC.String(s))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
