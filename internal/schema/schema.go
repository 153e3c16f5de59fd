// Package schema declares the content collections of the site and validates
// front matter against them.
package schema

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Schema is an ordered set of field declarations for one collection.
type Schema struct {
	name   string
	fields []Field
}

// New declares a schema named after the collection it validates.
func New(name string, fields ...Field) *Schema {
	return &Schema{name: name, fields: append([]Field(nil), fields...)}
}

// Extend returns a new schema with the receiver's fields followed by fields.
// A field with the same name as an inherited one replaces it in place.
func (s *Schema) Extend(name string, fields ...Field) *Schema {
	out := New(name, s.fields...)
	for _, f := range fields {
		replaced := false
		for i := range out.fields {
			if out.fields[i].Name == f.Name {
				out.fields[i] = f
				replaced = true
				break
			}
		}
		if !replaced {
			out.fields = append(out.fields, f)
		}
	}
	return out
}

func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the field declarations.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Validate checks raw against every field and returns the typed record. On
// failure the returned error is a *ValidationError listing all issues. Keys
// that the schema does not declare are ignored.
func (s *Schema) Validate(raw map[string]any) (Record, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	keys := make([]*validation.KeyRules, len(s.fields))
	for i, f := range s.fields {
		keys[i] = f.key()
	}
	err := validation.Validate(raw, validation.Map(keys...).AllowExtraKeys())

	if err != nil {
		errs, ok := err.(validation.Errors)
		if !ok {
			return Record{}, fmt.Errorf("validate %s entry: %w", s.name, err)
		}
		var issues []Issue
		for _, f := range s.fields {
			if fieldErr, ok := errs[f.Name]; ok {
				issues = append(issues, toIssues(f.Name, fieldErr)...)
			}
		}
		return Record{}, &ValidationError{Collection: s.name, Issues: issues}
	}

	var rec Record
	for _, f := range s.fields {
		v, present := raw[f.Name]
		if !present || f.Assign == nil {
			continue
		}
		if value := f.value(v); value != nil {
			f.Assign(&rec, value)
		}
	}
	return rec, nil
}

// FieldDescription is the serialisable form of a Field.
type FieldDescription struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Required    bool   `json:"required" yaml:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Description is the serialisable form of a Schema.
type Description struct {
	Collection string             `json:"collection" yaml:"collection"`
	Fields     []FieldDescription `json:"fields" yaml:"fields"`
}

func (s *Schema) Describe() Description {
	d := Description{Collection: s.name, Fields: make([]FieldDescription, len(s.fields))}
	for i, f := range s.fields {
		d.Fields[i] = FieldDescription{
			Name:        f.Name,
			Type:        f.Kind.String(),
			Required:    !f.Optional,
			Description: f.Doc,
		}
	}
	return d
}
