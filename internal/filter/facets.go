package filter

import "github.com/maruo29/VRC-Worlds-Manager-v2-Custom-sub000/internal/model"

// Facets extracts the distinct author names and distinct bare tag names from
// a filtered world list, in order of first appearance.
//
// Facets come from the filtered list, not the full collection: the filter
// pickers only offer values that can still narrow the current view. Only
// author-prefixed tags contribute; system tags never show up as facets.
func Facets(worlds []model.World) (authors, tags []string) {
	authors = make([]string, 0)
	tags = make([]string, 0)
	seenAuthors := make(map[string]bool)
	seenTags := make(map[string]bool)
	for _, w := range worlds {
		if w.AuthorName != "" && !seenAuthors[w.AuthorName] {
			seenAuthors[w.AuthorName] = true
			authors = append(authors, w.AuthorName)
		}
		for _, t := range w.Tags {
			name, ok := model.DecodeAuthorTag(t)
			if !ok || seenTags[name] {
				continue
			}
			seenTags[name] = true
			tags = append(tags, name)
		}
	}
	return authors, tags
}

// MergeTags appends decoded global tags that are not already present in the
// facet list. Used by the pipeline's one-shot global-tag fallback.
func MergeTags(facet []string, global []string) []string {
	seen := make(map[string]bool, len(facet))
	for _, t := range facet {
		seen[t] = true
	}
	for _, t := range global {
		name, ok := model.DecodeAuthorTag(t)
		if !ok {
			name = t
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		facet = append(facet, name)
	}
	return facet
}
