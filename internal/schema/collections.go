package schema

import (
	"sort"
	"time"
)

const (
	BlogCollection   = "blog"
	SlidesCollection = "slides"
)

var baseFields = []Field{
	{
		Name:     "title",
		Kind:     KindString,
		NonEmpty: true,
		Assign:   func(r *Record, v any) { r.Title = v.(string) },
	},
	{
		Name:   "description",
		Kind:   KindString,
		Assign: func(r *Record, v any) { r.Description = v.(string) },
	},
	{
		Name:   "published",
		Kind:   KindDate,
		Coerce: coerceDateField,
		Doc:    "Publication date; plain text dates such as 2024-01-31 are accepted.",
		Assign: func(r *Record, v any) { r.Published = v.(time.Time) },
	},
	{
		Name:   "tags",
		Kind:   KindStringList,
		Assign: func(r *Record, v any) { r.Tags = v.([]string) },
	},
	{
		Name:   "author",
		Kind:   KindString,
		Assign: func(r *Record, v any) { r.Author = v.(string) },
	},
}

var (
	Blog = New(BlogCollection, baseFields...)

	Slides = Blog.Extend(SlidesCollection, Field{
		Name:     "hidden",
		Kind:     KindBool,
		Optional: true,
		Doc:      "If true, the slide deck is not listed on the slides page.",
		Assign: func(r *Record, v any) {
			b := v.(bool)
			r.Hidden = &b
		},
	})

	// Collections is the registry consulted by the content loader.
	Collections = NewRegistry(Blog, Slides)
)

// Registry maps collection names to their schemas. It is read-only after
// construction.
type Registry struct {
	schemas map[string]*Schema
}

func NewRegistry(schemas ...*Schema) *Registry {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		r.schemas[s.Name()] = s
	}
	return r
}

func (r *Registry) Lookup(name string) (*Schema, bool) {
	s, ok := r.schemas[name]
	return s, ok
}

// Names returns the registered collection names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
