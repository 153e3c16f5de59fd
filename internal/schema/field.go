package schema

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind is the canonical type a field holds once it has been validated.
type Kind int

const (
	KindString Kind = iota
	KindDate
	KindStringList
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindStringList:
		return "string[]"
	case KindBool:
		return "boolean"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field declares one front matter key, the constraints it must satisfy and
// where its validated value is stored on a Record.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	// NonEmpty rejects the empty string for KindString fields.
	NonEmpty bool
	// Coerce, when set, runs before the type check.
	Coerce func(v any) (any, error)
	Doc    string
	Assign func(r *Record, v any)
}

// key builds the map key rule evaluated for this field.
func (f Field) key() *validation.KeyRules {
	var rules []validation.Rule
	if f.Kind == KindStringList {
		rules = []validation.Rule{
			validation.By(isList),
			validation.Each(validation.By(isString)),
		}
	} else {
		rules = []validation.Rule{validation.By(f.checkValue)}
	}

	k := validation.Key(f.Name, rules...)
	if f.Optional {
		k = k.Optional()
	}
	return k
}

func (f Field) checkValue(raw any) error {
	if raw == nil {
		return f.typeError(raw)
	}
	v, err := f.coerce(raw)
	if err != nil {
		return validation.NewError(string(CodeInvalidDate), err.Error())
	}

	switch f.Kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return f.typeError(v)
		}
		if f.NonEmpty && s == "" {
			return validation.NewError(string(CodeTooSmall), "must not be empty")
		}
	case KindDate:
		if _, ok := v.(time.Time); !ok {
			return f.typeError(v)
		}
	case KindBool:
		if _, ok := v.(bool); !ok {
			return f.typeError(v)
		}
	default:
		return validation.NewError(string(CodeInvalidType), "unsupported field kind "+f.Kind.String())
	}
	return nil
}

func (f Field) coerce(raw any) (any, error) {
	if f.Coerce == nil {
		return raw, nil
	}
	return f.Coerce(raw)
}

// value converts a raw value that already passed validation to its canonical
// type.
func (f Field) value(raw any) any {
	if f.Kind == KindStringList {
		switch list := raw.(type) {
		case []string:
			return append([]string{}, list...)
		case []any:
			out := make([]string, len(list))
			for i, item := range list {
				out[i] = item.(string)
			}
			return out
		}
		return nil
	}
	v, err := f.coerce(raw)
	if err != nil {
		return nil
	}
	return v
}

func (f Field) typeError(v any) error {
	return validation.NewError(string(CodeInvalidType), fmt.Sprintf("expected %s, received %s", f.Kind, typeName(v)))
}

func isList(v any) error {
	switch v.(type) {
	case []any, []string:
		return nil
	}
	return validation.NewError(string(CodeInvalidType), fmt.Sprintf("expected array, received %s", typeName(v)))
}

func isString(v any) error {
	if _, ok := v.(string); ok {
		return nil
	}
	return validation.NewError(string(CodeInvalidType), fmt.Sprintf("expected string, received %s", typeName(v)))
}

// toIssues flattens a validation error reported under path. Nested errors
// from list elements become "path.index" issues in index order.
func toIssues(path string, err error) []Issue {
	switch e := err.(type) {
	case validation.Errors:
		keys := make([]string, 0, len(e))
		for k := range e {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, errA := strconv.Atoi(keys[i])
			b, errB := strconv.Atoi(keys[j])
			if errA == nil && errB == nil {
				return a < b
			}
			return keys[i] < keys[j]
		})
		var issues []Issue
		for _, k := range keys {
			issues = append(issues, toIssues(path+"."+k, e[k])...)
		}
		return issues
	case validation.Error:
		if e.Code() == validation.ErrKeyMissing.Code() {
			return []Issue{{Path: path, Code: CodeRequired, Message: "required"}}
		}
		return []Issue{{Path: path, Code: Code(e.Code()), Message: e.Message()}}
	default:
		return []Issue{{Path: path, Code: CodeInvalidType, Message: err.Error()}}
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case time.Time:
		return "date"
	case []any, []string:
		return "array"
	case map[string]any, map[any]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
