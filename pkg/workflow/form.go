package workflow

import (
	"context"
	"strings"

	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/slug"
)

const (
	FieldTitle = "title"
	FieldSlug  = "slug"

	msgTitleRequired = "title is required"
	msgSlugRequired  = "slug is required"
)

// Form is the editing state of the create/rename dialog. A new form starts in
// slug.Auto; a form opened on an existing document starts in slug.Manual so
// the stored slug is not overwritten by title edits.
type Form struct {
	title string
	slug  string
	latch *slug.Latch
	isNew bool
	err   *FieldError
}

// NewForm returns an empty form for a new document.
func NewForm() *Form {
	return &Form{latch: slug.NewLatch(slug.Auto), isNew: true}
}

// EditForm returns a form populated from an existing document.
func EditForm(title, slugValue string) *Form {
	return &Form{title: title, slug: slugValue, latch: slug.NewLatch(slug.Manual)}
}

func (f *Form) Title() string { return f.title }

func (f *Form) Slug() string { return f.slug }

// Mode reports whether title edits still drive the slug.
func (f *Form) Mode() slug.Mode { return f.latch.Mode() }

func (f *Form) IsNew() bool { return f.isNew }

// ValidationError returns the failure of the last Validate call, cleared once
// either field is edited to a non-blank value.
func (f *Form) ValidationError() *FieldError { return f.err }

// SetTitle records a title edit and regenerates the slug while the latch is
// Auto.
func (f *Form) SetTitle(value string) {
	f.title = value
	if next, ok := f.latch.TitleChanged(value); ok {
		f.slug = next
	}
	f.clearError()
}

// SetSlug records a direct slug edit and disengages auto generation.
func (f *Form) SetSlug(value string) {
	f.slug = value
	f.latch.SlugEdited()
	f.clearError()
}

// SelectSuggestion applies a picklist entry and re-engages auto generation.
func (f *Form) SelectSuggestion(s slug.Suggestion) {
	f.title = s.Title
	f.slug = s.Slug
	f.latch.SuggestionSelected()
	f.clearError()
}

// Suggestions filters the picklist by the current title. Only new documents
// get suggestions.
func (f *Form) Suggestions(limit int) []slug.Suggestion {
	if !f.isNew {
		return nil
	}
	return slug.Suggestions(f.title, limit)
}

// Validate checks the trimmed title then the trimmed slug and remembers the
// first failure until the next edit.
func (f *Form) Validate() error {
	f.err = nil
	switch {
	case strings.TrimSpace(f.title) == "":
		f.err = &FieldError{Field: FieldTitle, Message: msgTitleRequired}
	case strings.TrimSpace(f.slug) == "":
		f.err = &FieldError{Field: FieldSlug, Message: msgSlugRequired}
	}
	if f.err != nil {
		return f.err
	}
	return nil
}

// Submit validates the form and asks creator for the trimmed title/slug pair.
// The form resets after a successful create; a Conflict leaves it untouched so
// the user can adjust the values.
func (f *Form) Submit(ctx context.Context, creator Creator) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	return f.create(ctx, creator, strings.TrimSpace(f.title), strings.TrimSpace(f.slug))
}

// CreateSample bypasses the form values and creates the sample resume.
func (f *Form) CreateSample(ctx context.Context, creator Creator) (Result, error) {
	return f.create(ctx, creator, document.SampleTitle, document.SampleSlug)
}

// Reset clears every field and re-engages auto generation.
func (f *Form) Reset() {
	f.title = ""
	f.slug = ""
	f.err = nil
	f.latch.Reset()
}

func (f *Form) create(ctx context.Context, creator Creator, title, slugValue string) (Result, error) {
	if creator == nil {
		return Result{}, ErrNilCreator
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	result, err := creator.Create(ctx, title, slugValue)
	if err != nil {
		return Result{}, err
	}
	if result.Created() {
		f.Reset()
	}
	return result, nil
}

func (f *Form) clearError() {
	if f.err == nil {
		return
	}
	if strings.TrimSpace(f.title) != "" || strings.TrimSpace(f.slug) != "" {
		f.err = nil
	}
}
