// Package classic is the multi-column template. Columns come from the first
// page of the layout matrix; the first column is narrower and the remaining
// columns share the rest of the width.
package classic

import (
	"strconv"

	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/layout"
	"github.com/goliatone/go-resume/pkg/render"
)

// Name is the registry name of the template.
const Name = "classic"

const (
	leadSpan = 1
	restSpan = 2
)

// Template implements render.Template.
type Template struct{}

var _ render.Template = Template{}

// New returns the multi-column template.
func New() Template {
	return Template{}
}

func (Template) Name() string {
	return Name
}

// Compose renders doc column by column.
func (Template) Compose(doc document.Document, opts ...render.Option) render.Tree {
	return Render(doc, opts...)
}

// Render is the functional form of Template.Compose.
func Render(doc document.Document, opts ...render.Option) render.Tree {
	options := render.NewOptions(opts...)
	theme := options.ThemeFor(doc)

	columnIDs := layout.ResolveColumns(doc.Metadata, doc.Sections)
	grid := gridSpan(len(columnIDs))

	columns := &render.Node{
		Kind:  render.KindColumns,
		Attrs: map[string]string{"count": strconv.Itoa(len(columnIDs)), "grid": strconv.Itoa(grid)},
	}
	for index, ids := range columnIDs {
		column := &render.Node{
			Kind: render.KindColumn,
			Key:  strconv.Itoa(index),
			Attrs: map[string]string{
				"span": strconv.Itoa(columnSpan(index, len(columnIDs))),
			},
		}
		for _, id := range ids {
			section, ok := doc.Sections.Get(id)
			if !ok {
				continue
			}
			column.Append(render.RenderSection(section, theme, render.WithItemPolicy(options.ItemPolicy)))
		}
		columns.Append(column)
	}

	root := render.DocumentNode(theme)
	root.Append(render.RenderHeader(doc.Basics, theme), columns)
	return render.Tree{Template: Name, Root: root}
}

// columnSpan gives the lead column one share and every other column two, so a
// two-column page splits 1:2. A lone column takes the full width.
func columnSpan(index, count int) int {
	if index == 0 && count > 1 {
		return leadSpan
	}
	return restSpan
}

func gridSpan(count int) int {
	if count <= 1 {
		return restSpan
	}
	return leadSpan + restSpan*(count-1)
}
