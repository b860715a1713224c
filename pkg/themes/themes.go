// Package themes ships the preset colour themes as go-theme manifests and maps
// a selection onto the document.Theme tokens templates understand.
package themes

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-resume/pkg/document"
)

// Token keys every preset defines.
const (
	TokenBackground = "background"
	TokenText       = "text"
	TokenPrimary    = "primary"
)

const presetVersion = "1.0.0"

// DefaultTheme is selected when a request names no theme.
const DefaultTheme = "paper"

type manifestRegistry interface {
	theme.ThemeProvider
	Register(manifest *theme.Manifest) error
}

// Presets is a theme.ThemeSelector over a fixed set of manifests. Manifests
// are also registered with a go-theme registry so the same set can be handed
// to any go-theme consumer through Provider.
type Presets struct {
	mu        sync.RWMutex
	provider  manifestRegistry
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*Presets)(nil)

// NewPresets returns a selector holding the given manifests.
func NewPresets(manifests ...*theme.Manifest) (*Presets, error) {
	p := &Presets{
		provider:  theme.NewRegistry(),
		manifests: make(map[string]*theme.Manifest, len(manifests)),
	}
	for _, manifest := range manifests {
		if err := p.Register(manifest); err != nil {
			return nil, err
		}
	}
	return p, nil
}

var (
	defaultPresets     *Presets
	defaultPresetsOnce sync.Once
)

// Default returns the built-in presets.
func Default() *Presets {
	defaultPresetsOnce.Do(func() {
		presets, err := NewPresets(builtinManifests()...)
		if err != nil {
			panic(fmt.Sprintf("themes: builtin presets: %v", err))
		}
		defaultPresets = presets
	})
	return defaultPresets
}

// Register adds manifest. Names are case-insensitive and must be unique.
func (p *Presets) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return fmt.Errorf("themes: nil manifest")
	}
	key := normalise(manifest.Name)
	if key == "" {
		return fmt.Errorf("themes: manifest name is empty")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.manifests[key]; exists {
		return fmt.Errorf("themes: %q already registered", manifest.Name)
	}
	if err := p.provider.Register(manifest); err != nil {
		return fmt.Errorf("themes: register %q: %w", manifest.Name, err)
	}
	p.manifests[key] = manifest
	return nil
}

// Provider exposes the underlying go-theme registry.
func (p *Presets) Provider() theme.ThemeProvider {
	return p.provider
}

// Select resolves a theme and variant. An empty name selects DefaultTheme; an
// empty variant selects the base tokens. Unknown names or variants are errors.
func (p *Presets) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	key := normalise(name)
	if key == "" {
		key = DefaultTheme
	}
	p.mu.RLock()
	manifest, ok := p.manifests[key]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("themes: %q not found", name)
	}

	variant = normalise(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("themes: %q has no variant %q", manifest.Name, variant)
		}
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}, nil
}

// Names lists registered theme names, sorted.
func (p *Presets) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]string, 0, len(p.manifests))
	for _, manifest := range p.manifests {
		out = append(out, manifest.Name)
	}
	sort.Strings(out)
	return out
}

// Variants lists the variant names of a theme, sorted.
func (p *Presets) Variants(name string) []string {
	p.mu.RLock()
	manifest, ok := p.manifests[normalise(name)]
	p.mu.RUnlock()
	if !ok {
		return nil
	}
	out := make([]string, 0, len(manifest.Variants))
	for variant := range manifest.Variants {
		out = append(out, variant)
	}
	sort.Strings(out)
	return out
}

// Tokens merges the base tokens of the selected manifest with the variant
// overrides.
func Tokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	out := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		out[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// ThemeFromSelection maps the resolved tokens onto a document.Theme.
func ThemeFromSelection(selection *theme.Selection) document.Theme {
	tokens := Tokens(selection)
	return document.Theme{
		Background: tokens[TokenBackground],
		Text:       tokens[TokenText],
		Primary:    tokens[TokenPrimary],
	}
}

func normalise(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
