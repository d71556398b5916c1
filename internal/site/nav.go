package site

import (
	"sort"
	"strings"
)

// NavEntry is one node of the site navigation forest.
type NavEntry struct {
	ID       string      `json:"id" yaml:"id"`
	Title    string      `json:"title" yaml:"title"`
	Link     string      `json:"link" yaml:"link"`
	Children []*NavEntry `json:"children,omitempty" yaml:"children,omitempty"`
}

// NavPage is one rendered page feeding navigation assembly.
type NavPage struct {
	Slug  string
	Title string
	Link  string
}

// AssembleNav sorts page slugs lexicographically and folds them into a
// forest: a slug that is a path-prefix of another becomes its ancestor,
// with children nested one level under their nearest prefix ancestor.
func AssembleNav(pages []NavPage) []*NavEntry {
	sorted := make([]NavPage, len(pages))
	copy(sorted, pages)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Slug < sorted[j].Slug })

	var forest []*NavEntry
	for _, p := range sorted {
		entry := &NavEntry{ID: p.Slug, Title: p.Title, Link: p.Link}
		if parent := nearestPrefixAncestor(forest, p.Slug); parent != nil {
			parent.Children = append(parent.Children, entry)
			continue
		}
		forest = append(forest, entry)
	}
	return forest
}

// nearestPrefixAncestor scans existing top-level entries for the longest
// one that path-prefixes slug. Nesting is one level deep only.
func nearestPrefixAncestor(forest []*NavEntry, slug string) *NavEntry {
	var best *NavEntry
	for _, e := range forest {
		if e.ID != "" && strings.HasPrefix(slug, e.ID+"/") {
			if best == nil || len(e.ID) > len(best.ID) {
				best = e
			}
		}
	}
	return best
}
