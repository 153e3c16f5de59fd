// Package content discovers content files, splits off their front matter and
// validates it against the collection schemas.
package content

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/rschubkegel/rschubkegel.com/internal/model"
	"github.com/rschubkegel/rschubkegel.com/internal/schema"
)

var contentExtensions = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
}

// FileError ties a load failure to the file that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// LoadError is returned when one or more content files could not be loaded.
type LoadError struct {
	Files []*FileError
}

func (e *LoadError) Error() string {
	lines := make([]string, len(e.Files))
	for i, f := range e.Files {
		lines[i] = f.Error()
	}
	return fmt.Sprintf("%d content file(s) failed validation:\n  %s", len(e.Files), strings.Join(lines, "\n  "))
}

func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Files))
	for i, f := range e.Files {
		errs[i] = f
	}
	return errs
}

// Loader reads <Dir>/<collection>/**/*.md and validates every entry.
type Loader struct {
	dir      string
	registry *schema.Registry
	log      *zap.SugaredLogger
}

func NewLoader(dir string, registry *schema.Registry, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{dir: dir, registry: registry, log: log.Sugar()}
}

// Load returns every entry under the content directory. If any file fails
// to parse or validate, no entries are returned and the error is a
// *LoadError naming every failing file.
func (l *Loader) Load(ctx context.Context) (*model.Site, error) {
	if _, err := os.Stat(l.dir); err != nil {
		return nil, fmt.Errorf("content directory '%s': %w", l.dir, err)
	}

	var (
		entries []*model.Entry
		errs    error
	)
	walkErr := filepath.WalkDir(l.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", p, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(l.dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}
		collection, rest, nested := strings.Cut(rel, "/")

		if d.IsDir() {
			if !nested {
				if _, ok := l.registry.Lookup(collection); !ok {
					l.log.Warnw("skipping directory that is not a registered collection", "dir", p)
					return fs.SkipDir
				}
			}
			return nil
		}
		if !nested || !contentExtensions[strings.ToLower(path.Ext(rest))] {
			return nil
		}

		s, _ := l.registry.Lookup(collection)
		entry, err := l.loadFile(p, s, rest)
		if err != nil {
			errs = multierr.Append(errs, &FileError{Path: p, Err: err})
			return nil
		}
		l.log.Debugw("loaded entry", "collection", collection, "slug", entry.Slug)
		entries = append(entries, entry)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error during content collection walk: %w", walkErr)
	}

	if errs != nil {
		loadErr := &LoadError{}
		for _, err := range multierr.Errors(errs) {
			loadErr.Files = append(loadErr.Files, err.(*FileError))
		}
		sort.Slice(loadErr.Files, func(i, j int) bool { return loadErr.Files[i].Path < loadErr.Files[j].Path })
		return nil, loadErr
	}

	l.log.Infow("content loaded", "entries", len(entries))
	return model.NewSite(entries), nil
}

func (l *Loader) loadFile(p string, s *schema.Schema, rel string) (*model.Entry, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}

	var fm map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}
	if fm == nil {
		fm = map[string]any{}
	}

	rec, err := s.Validate(normalize(fm).(map[string]any))
	if err != nil {
		return nil, err
	}

	return &model.Entry{
		Collection: s.Name(),
		Slug:       strings.TrimSuffix(rel, path.Ext(rel)),
		SourcePath: p,
		Data:       rec,
		Body:       body,
	}, nil
}

// normalize converts map[interface{}]interface{} values produced by some YAML
// decoders into map[string]any so schemas only deal with one map shape.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
