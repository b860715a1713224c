// Package terminal previews render trees in a terminal using lipgloss.
// Multi-column trees are laid out side by side.
package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-resume/pkg/render"
	"github.com/goliatone/go-resume/pkg/richtext"
)

// Name is the registry name of the encoder.
const Name = "terminal"

// DefaultWidth is the preview width in cells.
const DefaultWidth = 100

const columnGap = 2

var (
	colorDim  = lipgloss.Color("245")
	colorLink = lipgloss.Color("75")

	styleName     = lipgloss.NewStyle().Bold(true)
	styleHeadline = lipgloss.NewStyle().Italic(true)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleLabel    = lipgloss.NewStyle().Bold(true)
	styleLink     = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
)

type Option func(*Renderer)

// WithWidth sets the total preview width.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// Renderer encodes trees as styled terminal text.
type Renderer struct {
	width int
}

// New constructs the terminal encoder.
func New(opts ...Option) *Renderer {
	r := &Renderer{width: DefaultWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Encode renders the header followed by the body or columns.
func (r *Renderer) Encode(ctx context.Context, tree render.Tree) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if tree.Root == nil {
		return nil, fmt.Errorf("terminal renderer: tree has no root")
	}

	primary := lipgloss.NewStyle().Bold(true)
	if color := tree.Root.Style["color"]; color != "" {
		primary = primary.Foreground(lipgloss.Color(color))
	}

	var blocks []string
	for _, child := range tree.Root.Children {
		switch child.Kind {
		case render.KindHeader:
			blocks = append(blocks, r.header(child))
		case render.KindBody:
			blocks = append(blocks, r.sections(child.Children, r.width))
		case render.KindColumns:
			blocks = append(blocks, r.columns(child))
		}
	}
	return []byte(strings.Join(blocks, "\n\n") + "\n"), nil
}

func (r *Renderer) header(header *render.Node) string {
	var lines []string
	for _, part := range header.Children {
		switch part.Kind {
		case render.KindPicture:
			lines = append(lines, styleDim.Render("[picture] "+part.Attrs["src"]))
		case render.KindName:
			lines = append(lines, styleName.Render(part.Text))
		case render.KindHeadline:
			lines = append(lines, styleHeadline.Render(part.Text))
		case render.KindContact:
			entries := make([]string, 0, len(part.Children))
			for _, entry := range part.Children {
				entries = append(entries, inline(entry))
			}
			lines = append(lines, strings.Join(entries, styleDim.Render(" · ")))
		}
	}
	return lipgloss.NewStyle().Width(r.width).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) columns(node *render.Node) string {
	grid, _ := strconv.Atoi(node.Attrs["grid"])
	if grid <= 0 {
		grid = len(node.Children)
	}
	if grid == 0 {
		return ""
	}
	available := r.width - columnGap*(len(node.Children)-1)
	if available < len(node.Children) {
		available = len(node.Children)
	}

	rendered := make([]string, 0, len(node.Children)*2)
	for i, column := range node.Children {
		span, _ := strconv.Atoi(column.Attrs["span"])
		if span <= 0 {
			span = 1
		}
		width := available * span / grid
		if width < 1 {
			width = 1
		}
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, r.sections(column.Children, width))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (r *Renderer) sections(nodes []*render.Node, width int) string {
	blocks := make([]string, 0, len(nodes))
	for _, section := range nodes {
		if section.Kind == render.KindSection {
			blocks = append(blocks, r.section(section))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(blocks, "\n\n"))
}

func (r *Renderer) section(section *render.Node) string {
	var lines []string
	for _, part := range section.Children {
		switch part.Kind {
		case render.KindHeading:
			style := lipgloss.NewStyle().Bold(true)
			if color := part.Style["color"]; color != "" {
				style = style.Foreground(lipgloss.Color(color))
			}
			lines = append(lines, style.Render(strings.ToUpper(part.Text)))
		case render.KindContent:
			lines = append(lines, richtext.Fragment{HTML: part.HTML}.Text())
		case render.KindList:
			for _, item := range part.Children {
				lines = append(lines, r.item(item)...)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) item(item *render.Node) []string {
	var head []string
	var extra []string
	for _, part := range item.Children {
		switch part.Kind {
		case render.KindLabel:
			head = append(head, styleLabel.Render(part.Text))
		case render.KindPosition, render.KindLocation:
			head = append(head, part.Text)
		case render.KindDate:
			head = append(head, styleDim.Render(part.Text))
		case render.KindLink:
			head = append(head, inline(part))
		case render.KindSummary:
			if text := (richtext.Fragment{HTML: part.HTML}).Text(); text != "" {
				extra = append(extra, "  "+text)
			}
		}
	}
	return append([]string{"• " + strings.Join(head, " ")}, extra...)
}

func inline(node *render.Node) string {
	if node.Kind == render.KindLink {
		return styleLink.Render(node.Text)
	}
	return node.Text
}
