package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is sanitized HTML that is safe to embed as-is.
type Fragment struct {
	HTML string `json:"html,omitempty"`
}

// Empty reports whether there is nothing to render.
func (f Fragment) Empty() bool {
	return strings.TrimSpace(f.HTML) == ""
}

func (f Fragment) String() string {
	return f.HTML
}

// Text returns the visible text of the fragment with whitespace collapsed.
// Block-level elements and line breaks separate words.
func (f Fragment) Text() string {
	if f.Empty() {
		return ""
	}

	nodes, err := html.ParseFragment(strings.NewReader(f.HTML), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return strings.Join(strings.Fields(f.HTML), " ")
	}

	var b strings.Builder
	for _, node := range nodes {
		collectText(&b, node)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(b *strings.Builder, node *html.Node) {
	switch node.Type {
	case html.TextNode:
		b.WriteString(node.Data)
		return
	case html.ElementNode:
		if isBreaking(node.DataAtom) {
			b.WriteByte(' ')
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(b, child)
	}
	if node.Type == html.ElementNode && isBreaking(node.DataAtom) {
		b.WriteByte(' ')
	}
}

func isBreaking(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Br, atom.Hr, atom.Div, atom.Li, atom.Ul, atom.Ol,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Blockquote, atom.Pre:
		return true
	}
	return false
}
