package schema

import (
	"fmt"
	"strings"
)

// Code classifies why a field failed validation.
type Code string

const (
	CodeRequired    Code = "required"
	CodeInvalidType Code = "invalid_type"
	CodeInvalidDate Code = "invalid_date"
	CodeTooSmall    Code = "too_small"
)

// Issue is a single field-level validation failure. Path is the field name,
// or "field.index" for an element of a list.
type Issue struct {
	Path    string `json:"path" yaml:"path"`
	Code    Code   `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidationError carries every issue found while validating one entry.
type ValidationError struct {
	Collection string
	Issues     []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("invalid %s entry: %s", e.Collection, strings.Join(parts, "; "))
}

// Issue returns the first issue reported for path.
func (e *ValidationError) Issue(path string) (Issue, bool) {
	for _, issue := range e.Issues {
		if issue.Path == path {
			return issue, true
		}
	}
	return Issue{}, false
}

// Paths lists the failing paths in the order they were reported.
func (e *ValidationError) Paths() []string {
	paths := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		paths[i] = issue.Path
	}
	return paths
}
