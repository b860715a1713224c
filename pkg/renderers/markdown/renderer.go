// Package markdown exports render trees as CommonMark. Rich fragments are
// converted with html-to-markdown; multi-column trees are flattened column by
// column.
package markdown

import (
	"context"
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"

	"github.com/goliatone/go-resume/pkg/render"
)

// Name is the registry name of the encoder.
const Name = "markdown"

// Renderer encodes trees as Markdown.
type Renderer struct {
	conv *converter.Converter
}

// New constructs the Markdown encoder.
func New() *Renderer {
	return &Renderer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Encode writes the header then every section in display order.
func (r *Renderer) Encode(ctx context.Context, tree render.Tree) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if tree.Root == nil {
		return nil, fmt.Errorf("markdown renderer: tree has no root")
	}

	var blocks []string
	if header := tree.Root.First(render.KindHeader); header != nil {
		blocks = append(blocks, r.header(header)...)
	}
	for _, section := range tree.Sections() {
		block, err := r.section(section)
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: section %q: %w", section.Key, err)
		}
		blocks = append(blocks, block)
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

func (r *Renderer) header(header *render.Node) []string {
	var blocks []string
	for _, part := range header.Children {
		switch part.Kind {
		case render.KindPicture:
			blocks = append(blocks, fmt.Sprintf("![%s](%s)", escape(part.Attrs["alt"]), part.Attrs["src"]))
		case render.KindName:
			blocks = append(blocks, "# "+escape(part.Text))
		case render.KindHeadline:
			blocks = append(blocks, "_"+escape(part.Text)+"_")
		case render.KindContact:
			entries := make([]string, 0, len(part.Children))
			for _, entry := range part.Children {
				entries = append(entries, inline(entry))
			}
			blocks = append(blocks, strings.Join(entries, " · "))
		}
	}
	return blocks
}

func (r *Renderer) section(section *render.Node) (string, error) {
	var b strings.Builder
	for _, part := range section.Children {
		switch part.Kind {
		case render.KindHeading:
			b.WriteString("## " + escape(part.Text))
		case render.KindContent:
			md, err := r.fragment(part.HTML)
			if err != nil {
				return "", err
			}
			if md != "" {
				b.WriteString("\n\n" + md)
			}
		case render.KindList:
			b.WriteString("\n")
			for _, item := range part.Children {
				line, err := r.item(item)
				if err != nil {
					return "", err
				}
				b.WriteString("\n" + line)
			}
		}
	}
	return b.String(), nil
}

func (r *Renderer) item(item *render.Node) (string, error) {
	var head []string
	var tail []string
	for _, part := range item.Children {
		switch part.Kind {
		case render.KindLabel:
			head = append(head, "**"+escape(part.Text)+"**")
		case render.KindPosition, render.KindLocation:
			head = append(head, escape(part.Text))
		case render.KindDate:
			head = append(head, "· "+escape(part.Text))
		case render.KindLink:
			head = append(head, inline(part))
		case render.KindSummary:
			md, err := r.fragment(part.HTML)
			if err != nil {
				return "", err
			}
			if md != "" {
				tail = append(tail, indent(md, "  "))
			}
		}
	}
	line := "- " + strings.Join(head, " ")
	if len(tail) > 0 {
		line += "\n" + strings.Join(tail, "\n")
	}
	return line, nil
}

func (r *Renderer) fragment(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	md, err := r.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

func inline(node *render.Node) string {
	if node.Kind == render.KindLink {
		return fmt.Sprintf("[%s](%s)", escape(node.Text), node.Attrs["href"])
	}
	return escape(node.Text)
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
)

func escape(text string) string {
	return escaper.Replace(text)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
