// Package resume is the top-level entry point of the resume rendering
// engine. It re-exports the common operations so callers can parse a
// document, compose it with a template and encode it without importing each
// subpackage.
package resume

import (
	"context"

	internalLoader "github.com/goliatone/go-resume/internal/loader"
	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/orchestrator"
	"github.com/goliatone/go-resume/pkg/render"
	"github.com/goliatone/go-resume/pkg/slug"
	"github.com/goliatone/go-resume/pkg/templates/classic"
	"github.com/goliatone/go-resume/pkg/templates/modern"
)

// Document aliases document.Document.
type Document = document.Document

// Tree aliases render.Tree.
type Tree = render.Tree

// Parse validates and decodes a JSON resume.
func Parse(data []byte) (Document, error) {
	return document.Parse(data)
}

// RenderModern composes doc with the single-column template.
func RenderModern(doc Document, opts ...render.Option) Tree {
	return modern.Render(doc, opts...)
}

// RenderClassic composes doc with the multi-column template.
func RenderClassic(doc Document, opts ...render.Option) Tree {
	return classic.Render(doc, opts...)
}

// Slugify derives the URL-safe identifier for a title.
func Slugify(title string) string {
	return slug.Slugify(title)
}

// NewLoader returns the built-in source loader.
func NewLoader() orchestrator.Loader {
	return internalLoader.New()
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads src, composes it with templateName and encodes it with
// rendererName. Empty names select the defaults (modern, html).
func Generate(ctx context.Context, src document.Source, templateName, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:   src,
		Template: templateName,
		Renderer: rendererName,
	})
}

// GenerateFromDocument renders a pre-parsed document, bypassing the loader.
func GenerateFromDocument(ctx context.Context, doc Document, templateName, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Document: &doc,
		Template: templateName,
		Renderer: rendererName,
	})
}
