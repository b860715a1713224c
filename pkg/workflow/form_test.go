package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resume/pkg/slug"
)

type recordingCreator struct {
	calls  [][2]string
	result Result
	err    error
}

func (r *recordingCreator) Create(_ context.Context, title, slugValue string) (Result, error) {
	r.calls = append(r.calls, [2]string{title, slugValue})
	if r.err != nil {
		return Result{}, r.err
	}
	if r.result.Conflict != nil {
		return r.result, nil
	}
	return Result{Record: &Record{ID: "id-1", Title: title, Slug: slugValue}}, nil
}

func TestForm_AutoSlugUntilManualEdit(t *testing.T) {
	form := NewForm()

	form.SetTitle("Go Wizard")
	if form.Slug() != "go-wizard" {
		t.Fatalf("expected auto slug, got %q", form.Slug())
	}

	form.SetSlug("custom")
	form.SetTitle("Different Title")
	if form.Slug() != "custom" {
		t.Fatalf("manual slug overwritten: %q", form.Slug())
	}
	if form.Mode() != slug.Manual {
		t.Fatalf("expected manual mode, got %s", form.Mode())
	}

	form.SelectSuggestion(slug.Suggestion{Title: "Data Scientist", Slug: "data-scientist"})
	if form.Mode() != slug.Auto || form.Slug() != "data-scientist" {
		t.Fatalf("suggestion did not re-engage auto: %s %q", form.Mode(), form.Slug())
	}
	form.SetTitle("Data Scientist II")
	if form.Slug() != "data-scientist-ii" {
		t.Fatalf("expected regenerated slug, got %q", form.Slug())
	}
}

func TestEditForm_StartsManual(t *testing.T) {
	form := EditForm("My Resume", "my-resume-2020")
	form.SetTitle("My Resume (updated)")

	if form.Slug() != "my-resume-2020" {
		t.Fatalf("existing slug overwritten: %q", form.Slug())
	}
	if form.Suggestions(0) != nil {
		t.Fatalf("existing documents get no suggestions")
	}
}

func TestForm_Validate(t *testing.T) {
	cases := []struct {
		name  string
		title string
		slug  string
		field string
	}{
		{name: "missing title", title: "  ", slug: "x", field: FieldTitle},
		{name: "missing slug", title: "Title", slug: " ", field: FieldSlug},
		{name: "both missing reports title", title: "", slug: "", field: FieldTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := EditForm(tc.title, tc.slug)
			err := form.Validate()
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected FieldError, got %v", err)
			}
			if fieldErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, fieldErr.Field)
			}
			if form.ValidationError() == nil {
				t.Fatalf("expected validation error to be remembered")
			}
		})
	}
}

func TestForm_EditClearsValidationError(t *testing.T) {
	form := NewForm()
	if err := form.Validate(); err == nil {
		t.Fatalf("expected error on empty form")
	}
	form.SetTitle("x")
	if form.ValidationError() != nil {
		t.Fatalf("expected error cleared after edit")
	}
}

func TestForm_SubmitTrimsAndResets(t *testing.T) {
	creator := &recordingCreator{}
	form := NewForm()
	form.SetTitle("  Backend Developer ")
	form.SetSlug(" backend ")

	result, err := form.Submit(context.Background(), creator)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Created() {
		t.Fatalf("expected created result")
	}
	if diff := cmp.Diff([][2]string{{"Backend Developer", "backend"}}, creator.calls); diff != "" {
		t.Fatalf("creator calls mismatch (-want +got):\n%s", diff)
	}
	if form.Title() != "" || form.Slug() != "" || form.Mode() != slug.Auto {
		t.Fatalf("form not reset: %q %q %s", form.Title(), form.Slug(), form.Mode())
	}
}

func TestForm_SubmitInvalidSkipsCreator(t *testing.T) {
	creator := &recordingCreator{}
	if _, err := NewForm().Submit(context.Background(), creator); !IsFieldError(err) {
		t.Fatalf("expected field error, got %v", err)
	}
	if len(creator.calls) != 0 {
		t.Fatalf("creator called for invalid form")
	}
}

func TestForm_ConflictKeepsValues(t *testing.T) {
	creator := &recordingCreator{result: Result{Conflict: &Conflict{Title: "A", Slug: "a"}}}
	form := NewForm()
	form.SetTitle("A")

	result, err := form.Submit(context.Background(), creator)
	if err != nil {
		t.Fatalf("conflict must not be an error: %v", err)
	}
	if result.Created() || result.Conflict == nil {
		t.Fatalf("expected conflict result, got %+v", result)
	}
	if form.Title() != "A" || form.Slug() != "a" {
		t.Fatalf("form cleared after conflict")
	}
}

func TestForm_CreatorErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	form := NewForm()
	form.SetTitle("A")
	if _, err := form.Submit(context.Background(), &recordingCreator{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected creator error, got %v", err)
	}
	if _, err := form.Submit(context.Background(), nil); !errors.Is(err, ErrNilCreator) {
		t.Fatalf("expected ErrNilCreator, got %v", err)
	}
}

func TestForm_CreateSample(t *testing.T) {
	creator := &recordingCreator{}
	form := NewForm()
	form.SetTitle("ignored")

	if _, err := form.CreateSample(context.Background(), creator); err != nil {
		t.Fatalf("create sample: %v", err)
	}
	if diff := cmp.Diff([][2]string{{"Sample Resume", "sample-resume"}}, creator.calls); diff != "" {
		t.Fatalf("creator calls mismatch (-want +got):\n%s", diff)
	}
	if form.Title() != "" {
		t.Fatalf("expected reset after sample create")
	}
}

func TestForm_SubmitHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	form := NewForm()
	form.SetTitle("A")
	if _, err := form.Submit(ctx, &recordingCreator{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
