package schema

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBlog() map[string]any {
	return map[string]any{
		"title":       "Hello",
		"description": "First post",
		"published":   "2024-01-15",
		"tags":        []any{"go", "web"},
		"author":      "Robert",
	}
}

func TestBlogValidate_OK(t *testing.T) {
	rec, err := Blog.Validate(validBlog())
	require.NoError(t, err)

	assert.Equal(t, "Hello", rec.Title)
	assert.Equal(t, "First post", rec.Description)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), rec.Published)
	assert.Equal(t, []string{"go", "web"}, rec.Tags)
	assert.Equal(t, "Robert", rec.Author)
	assert.Nil(t, rec.Hidden)
}

func TestBlogValidate_IgnoresUnknownKeys(t *testing.T) {
	raw := validBlog()
	raw["draft"] = true
	raw["hidden"] = "not a bool"

	rec, err := Blog.Validate(raw)
	require.NoError(t, err)
	assert.Nil(t, rec.Hidden)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	for _, field := range []string{"title", "description", "published", "tags", "author"} {
		t.Run(field, func(t *testing.T) {
			for _, s := range []*Schema{Blog, Slides} {
				raw := validBlog()
				delete(raw, field)

				_, err := s.Validate(raw)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, s.Name(), verr.Collection)
				assert.Equal(t, []string{field}, verr.Paths())

				issue, ok := verr.Issue(field)
				require.True(t, ok)
				assert.Equal(t, CodeRequired, issue.Code)
			}
		})
	}
}

func TestValidate_CollectsEveryIssue(t *testing.T) {
	raw := map[string]any{
		"title":     "",
		"published": "not a date",
		"tags":      []any{"ok", 3, true},
		"author":    42,
	}

	_, err := Blog.Validate(raw)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Equal(t, []string{"title", "description", "published", "tags.1", "tags.2", "author"}, verr.Paths())

	codes := map[string]Code{}
	for _, issue := range verr.Issues {
		codes[issue.Path] = issue.Code
	}
	assert.Equal(t, CodeTooSmall, codes["title"])
	assert.Equal(t, CodeRequired, codes["description"])
	assert.Equal(t, CodeInvalidDate, codes["published"])
	assert.Equal(t, CodeInvalidType, codes["tags.1"])
	assert.Equal(t, CodeInvalidType, codes["author"])
	assert.Contains(t, err.Error(), "invalid blog entry")
	assert.Contains(t, err.Error(), "author: expected string, received number")
}

func TestValidate_WrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		want  string
	}{
		{"title as number", "title", 1, "expected string, received number"},
		{"tags as string", "tags", "go", "expected array, received string"},
		{"null description", "description", nil, "expected string, received null"},
		{"published as bool", "published", true, "cannot interpret boolean as a date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validBlog()
			raw[tt.field] = tt.value

			_, err := Blog.Validate(raw)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			issue, ok := verr.Issue(tt.field)
			require.True(t, ok)
			assert.Contains(t, issue.Message, tt.want)
		})
	}
}

func TestSlidesValidate_Hidden(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		rec, err := Slides.Validate(validBlog())
		require.NoError(t, err)
		assert.Nil(t, rec.Hidden)
		assert.False(t, rec.IsHidden())
	})

	t.Run("true", func(t *testing.T) {
		raw := validBlog()
		raw["hidden"] = true
		rec, err := Slides.Validate(raw)
		require.NoError(t, err)
		require.NotNil(t, rec.Hidden)
		assert.True(t, *rec.Hidden)
		assert.True(t, rec.IsHidden())
	})

	t.Run("false", func(t *testing.T) {
		raw := validBlog()
		raw["hidden"] = false
		rec, err := Slides.Validate(raw)
		require.NoError(t, err)
		require.NotNil(t, rec.Hidden)
		assert.False(t, rec.IsHidden())
	})

	t.Run("not a bool", func(t *testing.T) {
		raw := validBlog()
		raw["hidden"] = "yes"
		_, err := Slides.Validate(raw)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"hidden"}, verr.Paths())
	})
}

func TestSlides_ExtendsBlog(t *testing.T) {
	blog := Blog.Fields()
	slides := Slides.Fields()
	require.Len(t, slides, len(blog)+1)
	for i, f := range blog {
		assert.Equal(t, f.Name, slides[i].Name)
	}
	assert.Equal(t, "hidden", slides[len(slides)-1].Name)
}

func TestExtend_ReplacesField(t *testing.T) {
	s := Blog.Extend("notes", Field{Name: "author", Kind: KindString, Optional: true})
	raw := validBlog()
	delete(raw, "author")

	_, err := s.Validate(raw)
	require.NoError(t, err)
	assert.Len(t, s.Fields(), len(Blog.Fields()))
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"blog", "slides"}, Collections.Names())

	s, ok := Collections.Lookup("slides")
	require.True(t, ok)
	assert.Same(t, Slides, s)

	_, ok = Collections.Lookup("projects")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	d := Slides.Describe()
	assert.Equal(t, "slides", d.Collection)
	require.Len(t, d.Fields, 6)
	assert.Equal(t, FieldDescription{Name: "title", Type: "string", Required: true}, d.Fields[0])
	assert.Equal(t, "date", d.Fields[2].Type)
	assert.Equal(t, "string[]", d.Fields[3].Type)
	assert.Equal(t, "boolean", d.Fields[5].Type)
	assert.False(t, d.Fields[5].Required)
}

func TestValidate_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := Slides.Validate(validBlog())
			assert.NoError(t, err)
			assert.Equal(t, "Hello", rec.Title)
		}()
	}
	wg.Wait()
}

func TestValidate_EpochOutOfRange(t *testing.T) {
	raw := validBlog()
	raw["published"] = 1e300

	_, err := Blog.Validate(raw)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	issue, ok := verr.Issue("published")
	require.True(t, ok)
	assert.Equal(t, CodeInvalidDate, issue.Code)
	assert.Contains(t, issue.Message, "out of range")
}

func TestValidate_NilInput(t *testing.T) {
	_, err := Slides.Validate(nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"title", "description", "published", "tags", "author"}, verr.Paths())
}
