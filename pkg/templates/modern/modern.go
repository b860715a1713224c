// Package modern is the single-column template: every section in declaration
// order, stacked under the header.
package modern

import (
	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/render"
)

// Name is the registry name of the template.
const Name = "modern"

// Template implements render.Template.
type Template struct{}

var _ render.Template = Template{}

// New returns the single-column template.
func New() Template {
	return Template{}
}

func (Template) Name() string {
	return Name
}

// Compose renders doc. Layout metadata is ignored; sections appear in their
// declaration order.
func (Template) Compose(doc document.Document, opts ...render.Option) render.Tree {
	return Render(doc, opts...)
}

// Render is the functional form of Template.Compose.
func Render(doc document.Document, opts ...render.Option) render.Tree {
	options := render.NewOptions(opts...)
	theme := options.ThemeFor(doc)

	body := &render.Node{Kind: render.KindBody}
	for _, section := range doc.Sections.All() {
		body.Append(render.RenderSection(section, theme, render.WithItemPolicy(options.ItemPolicy)))
	}

	root := render.DocumentNode(theme)
	root.Append(render.RenderHeader(doc.Basics, theme), body)
	return render.Tree{Template: Name, Root: root}
}
