package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-resume/internal/loader"
	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/render"
	"github.com/goliatone/go-resume/pkg/renderers"
	"github.com/goliatone/go-resume/pkg/renderers/html"
	"github.com/goliatone/go-resume/pkg/templates/modern"
	"github.com/goliatone/go-resume/pkg/themes"
	"github.com/goliatone/go-resume/pkg/visibility"
)

const (
	defaultTemplateName = modern.Name
	defaultRendererName = html.Name
)

// Loader reads the raw payload behind a document source.
type Loader interface {
	Load(ctx context.Context, src document.Source) ([]byte, error)
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom payload loader.
func WithLoader(loader Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithFS sets the filesystem the default loader reads fs sources from. It has
// no effect when WithLoader supplies a loader.
func WithFS(files fs.FS) Option {
	return func(o *Orchestrator) {
		o.files = files
	}
}

// WithTemplates injects a template registry.
func WithTemplates(registry *render.Registry[render.Template]) Option {
	return func(o *Orchestrator) {
		o.templates = registry
	}
}

// WithRegistry injects an encoder registry.
func WithRegistry(registry *render.Registry[renderers.Encoder]) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultTemplate overrides the template used when a request omits one.
func WithDefaultTemplate(name string) Option {
	return func(o *Orchestrator) {
		o.defaultTemplate = name
	}
}

// WithDefaultRenderer overrides the encoder used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithThemeSelector resolves named themes. Defaults to themes.Default().
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes = selector
	}
}

// WithItemPolicy selects which items every template renders.
func WithItemPolicy(policy visibility.Policy) Option {
	return func(o *Orchestrator) {
		o.itemPolicy = policy
	}
}

// WithLogger receives one debug line per pipeline stage.
func WithLogger(logger *log.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from document source to encoded
// output. It applies the built-in defaults (modern template, html encoder,
// preset themes) while remaining open to dependency injection.
type Orchestrator struct {
	loader          Loader
	files           fs.FS
	templates       *render.Registry[render.Template]
	registry        *render.Registry[renderers.Encoder]
	themes          theme.ThemeSelector
	itemPolicy      visibility.Policy
	logger          *log.Logger
	defaultTemplate string
	defaultRenderer string
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultTemplate: defaultTemplateName,
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single render.
type Request struct {
	// Source identifies where the document lives. Optional when Document is
	// supplied.
	Source document.Source

	// Document bypasses the loader when the caller already holds a parsed
	// document.
	Document *document.Document

	// Template names the composer. Empty selects the default template.
	Template string

	// Renderer names the output encoder. Empty selects the default encoder.
	Renderer string

	// ThemeName selects a preset that overrides metadata.theme. Empty keeps
	// the document theme unless ThemeVariant is set.
	ThemeName    string
	ThemeVariant string

	// RenderOptions are applied after the orchestrator's own options.
	RenderOptions []render.Option
}

// Templates exposes the template registry.
func (o *Orchestrator) Templates() *render.Registry[render.Template] {
	return o.templates
}

// Renderers exposes the encoder registry.
func (o *Orchestrator) Renderers() *render.Registry[renderers.Encoder] {
	return o.registry
}

// Generate executes load → parse → compose → encode and returns the encoded
// bytes (an HTML fragment for the default encoder).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	tree, err := o.Compose(ctx, req)
	if err != nil {
		return nil, err
	}

	encoder, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := encoder.Encode(ctx, tree)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: encode: %w", err)
	}
	o.logger.Debug("encoded", "renderer", encoder.Name(), "bytes", len(output))
	return output, nil
}

// Compose runs the pipeline up to the render tree.
func (o *Orchestrator) Compose(ctx context.Context, req Request) (render.Tree, error) {
	if ctx == nil {
		return render.Tree{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return render.Tree{}, err
	}
	if err := o.initialiseErr; err != nil {
		return render.Tree{}, err
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return render.Tree{}, err
	}

	tmpl, err := o.templateFor(req.Template)
	if err != nil {
		return render.Tree{}, err
	}

	opts, err := o.renderOptions(req)
	if err != nil {
		return render.Tree{}, err
	}

	tree := tmpl.Compose(doc, opts...)
	o.logger.Debug("composed", "template", tmpl.Name(), "sections", len(tree.Sections()))
	return tree, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (document.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return document.Document{}, errors.New("orchestrator: source or document is required")
	}

	data, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return document.Document{}, fmt.Errorf("orchestrator: load: %w", err)
	}
	o.logger.Debug("loaded", "source", req.Source.Location(), "kind", req.Source.Kind(), "bytes", len(data))

	doc, err := document.ParseFormat(data, document.FormatFor(req.Source.Location()))
	if err != nil {
		return document.Document{}, fmt.Errorf("orchestrator: parse: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) templateFor(name string) (render.Template, error) {
	if o.templates == nil {
		return nil, errors.New("orchestrator: template registry is nil")
	}
	target := name
	if target == "" {
		target = o.defaultTemplate
	}
	tmpl, err := o.templates.Get(target)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: template: %w", err)
	}
	return tmpl, nil
}

func (o *Orchestrator) renderOptions(req Request) ([]render.Option, error) {
	opts := []render.Option{render.WithItemPolicy(o.itemPolicy)}

	if req.ThemeName != "" || req.ThemeVariant != "" {
		if o.themes == nil {
			return nil, errors.New("orchestrator: theme selector is nil")
		}
		selection, err := o.themes.Select(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: theme: %w", err)
		}
		if selection == nil || selection.Manifest == nil {
			return nil, fmt.Errorf("orchestrator: theme: %q resolved to no manifest", req.ThemeName)
		}
		o.logger.Debug("theme selected", "theme", selection.Theme, "variant", selection.Variant)
		opts = append(opts, render.WithTheme(themes.ThemeFromSelection(selection)))
	}

	return append(opts, req.RenderOptions...), nil
}

func (o *Orchestrator) rendererFor(name string) (renderers.Encoder, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		encoder, err := o.registry.Get(target)
		if err == nil {
			return encoder, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	encoder, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return encoder, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(internalLoader.WithFS(o.files))
	}
	if o.templates == nil {
		o.templates = DefaultTemplates()
	}
	if o.registry == nil {
		registry, err := DefaultRenderers(0)
		if err != nil {
			o.initialiseErr = err
		} else {
			o.registry = registry
		}
	}
	if o.themes == nil {
		o.themes = themes.Default()
	}
	if o.itemPolicy == nil {
		o.itemPolicy = visibility.Default()
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.defaultTemplate == "" {
		o.defaultTemplate = defaultTemplateName
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
