package orchestrator

import (
	"fmt"

	"github.com/goliatone/go-resume/pkg/render"
	"github.com/goliatone/go-resume/pkg/renderers"
	"github.com/goliatone/go-resume/pkg/renderers/html"
	"github.com/goliatone/go-resume/pkg/renderers/jsontree"
	"github.com/goliatone/go-resume/pkg/renderers/markdown"
	"github.com/goliatone/go-resume/pkg/renderers/terminal"
	"github.com/goliatone/go-resume/pkg/templates/classic"
	"github.com/goliatone/go-resume/pkg/templates/modern"
)

// DefaultTemplates returns a registry holding the built-in templates.
func DefaultTemplates() *render.Registry[render.Template] {
	registry := render.NewTemplateRegistry()
	registry.MustRegister(modern.New())
	registry.MustRegister(classic.New())
	return registry
}

// DefaultRenderers returns a registry holding the built-in encoders. The
// terminal encoder honours width when positive.
func DefaultRenderers(width int) (*render.Registry[renderers.Encoder], error) {
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default html renderer: %w", err)
	}

	registry := renderers.NewRegistry()
	for _, encoder := range []renderers.Encoder{
		htmlRenderer,
		markdown.New(),
		terminal.New(terminal.WithWidth(width)),
		jsontree.New(),
	} {
		if err := registry.Register(encoder); err != nil {
			return nil, fmt.Errorf("orchestrator: register %s: %w", encoder.Name(), err)
		}
	}
	return registry, nil
}
