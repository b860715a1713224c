package render

import (
	"strings"

	"github.com/goliatone/go-resume/pkg/richtext"
)

// Kind names the role of a Node in the render tree.
type Kind string

const (
	KindDocument     Kind = "document"
	KindHeader       Kind = "header"
	KindPicture      Kind = "picture"
	KindName         Kind = "name"
	KindHeadline     Kind = "headline"
	KindContact      Kind = "contact"
	KindContactEntry Kind = "contact-entry"
	KindLink         Kind = "link"
	KindBody         Kind = "body"
	KindColumns      Kind = "columns"
	KindColumn       Kind = "column"
	KindSection      Kind = "section"
	KindHeading      Kind = "heading"
	KindContent      Kind = "content"
	KindList         Kind = "list"
	KindItem         Kind = "item"
	KindLabel        Kind = "label"
	KindPosition     Kind = "position"
	KindLocation     Kind = "location"
	KindDate         Kind = "date"
	KindSummary      Kind = "summary"
)

// Node is one element of the template-agnostic render tree. Text holds plain
// text; HTML holds an already sanitized fragment. Attrs and Style are layout
// hints for the display surface.
type Node struct {
	Kind     Kind              `json:"kind"`
	Key      string            `json:"key,omitempty"`
	Text     string            `json:"text,omitempty"`
	HTML     string            `json:"html,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// Append adds non-nil children and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		if child != nil {
			n.Children = append(n.Children, child)
		}
	}
	return n
}

// Walk visits n and its descendants depth-first. Returning false from fn skips
// the children of the current node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || fn == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns every descendant (including n) of the given kind in document
// order.
func (n *Node) Find(kind Kind) []*Node {
	var out []*Node
	n.Walk(func(node *Node) bool {
		if node.Kind == kind {
			out = append(out, node)
		}
		return true
	})
	return out
}

// First returns the first direct child of the given kind.
func (n *Node) First(kind Kind) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// PlainText joins the visible text of n and its descendants with single
// spaces. HTML fragments contribute their text content.
func (n *Node) PlainText() string {
	var parts []string
	n.Walk(func(node *Node) bool {
		if node.Text != "" {
			parts = append(parts, node.Text)
		}
		if node.HTML != "" {
			if text := (richtext.Fragment{HTML: node.HTML}).Text(); text != "" {
				parts = append(parts, text)
			}
		}
		return true
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Tree is the output of a template: the root document node plus the name of
// the template that produced it.
type Tree struct {
	Template string `json:"template"`
	Root     *Node  `json:"root"`
}

// Sections returns the rendered section nodes in display order: top to bottom
// for single-column trees, column by column for multi-column trees.
func (t Tree) Sections() []*Node {
	if t.Root == nil {
		return nil
	}
	return t.Root.Find(KindSection)
}

// Section returns the rendered node of the section with the given id, or nil
// when the section was not rendered.
func (t Tree) Section(id string) *Node {
	for _, node := range t.Sections() {
		if node.Key == id {
			return node
		}
	}
	return nil
}

// SectionIDs lists the keys of the rendered sections in display order.
func (t Tree) SectionIDs() []string {
	sections := t.Sections()
	ids := make([]string, 0, len(sections))
	for _, node := range sections {
		ids = append(ids, node.Key)
	}
	return ids
}
