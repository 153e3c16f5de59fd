package schema

import "time"

// Record is the validated front matter of a content entry. Hidden is only
// ever set for slides.
type Record struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Published   time.Time `json:"published" yaml:"published"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Author      string    `json:"author" yaml:"author"`
	Hidden      *bool     `json:"hidden,omitempty" yaml:"hidden,omitempty"`
}

// IsHidden treats an absent hidden flag as false.
func (r Record) IsHidden() bool {
	return r.Hidden != nil && *r.Hidden
}
