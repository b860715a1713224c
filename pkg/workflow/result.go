package workflow

import (
	"context"
	"time"

	"github.com/goliatone/go-resume/pkg/document"
)

// Record is a created resume.
type Record struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Slug      string            `json:"slug"`
	Document  document.Document `json:"document"`
	CreatedAt time.Time         `json:"created_at"`
}

// Conflict reports that the title/slug pair is already taken.
type Conflict struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Result is either a created Record or a Conflict. Exactly one is set.
type Result struct {
	Record   *Record   `json:"record,omitempty"`
	Conflict *Conflict `json:"conflict,omitempty"`
}

// Created reports whether the request produced a record.
func (r Result) Created() bool {
	return r.Record != nil
}

// Creator creates a document for a title/slug pair. A duplicate pair is an
// expected outcome and comes back as Result.Conflict, never as an error.
type Creator interface {
	Create(ctx context.Context, title, slug string) (Result, error)
}

// CreatorFunc adapts a function into a Creator.
type CreatorFunc func(ctx context.Context, title, slug string) (Result, error)

// Create delegates to the underlying function.
func (fn CreatorFunc) Create(ctx context.Context, title, slug string) (Result, error) {
	return fn(ctx, title, slug)
}
