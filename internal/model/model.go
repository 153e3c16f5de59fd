package model

import (
	"sort"

	"github.com/rschubkegel/rschubkegel.com/internal/schema"
)

// Entry is a single validated piece of content (e.g., blog post, slide deck).
type Entry struct {
	Collection string
	Slug       string
	SourcePath string
	Data       schema.Record
	Body       []byte
}

// Site holds every loaded entry, newest first, and the same entries grouped by
// collection.
type Site struct {
	Entries      []*Entry
	ByCollection map[string][]*Entry
}

// NewSite sorts entries by publication date (descending) and indexes them by
// collection.
func NewSite(entries []*Entry) *Site {
	SortByPublished(entries)

	site := &Site{
		Entries:      entries,
		ByCollection: make(map[string][]*Entry),
	}
	for _, e := range entries {
		site.ByCollection[e.Collection] = append(site.ByCollection[e.Collection], e)
	}
	return site
}

// Collection returns the entries of one collection, newest first.
func (s *Site) Collection(name string) []*Entry {
	return s.ByCollection[name]
}

// SortByPublished orders entries newest first. Entries published at the same
// instant are ordered by collection and slug so output is stable.
func SortByPublished(entries []*Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Data.Published.Equal(b.Data.Published) {
			return a.Data.Published.After(b.Data.Published)
		}
		if a.Collection != b.Collection {
			return a.Collection < b.Collection
		}
		return a.Slug < b.Slug
	})
}

// Visible drops entries flagged hidden.
func Visible(entries []*Entry) []*Entry {
	out := make([]*Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Data.IsHidden() {
			out = append(out, e)
		}
	}
	return out
}

// ByTag groups entries under each of their tags, preserving entry order.
func ByTag(entries []*Entry) map[string][]*Entry {
	tags := make(map[string][]*Entry)
	for _, e := range entries {
		for _, tag := range e.Data.Tags {
			tags[tag] = append(tags[tag], e)
		}
	}
	return tags
}
