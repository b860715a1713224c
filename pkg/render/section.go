package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/richtext"
	"github.com/goliatone/go-resume/pkg/visibility"
)

// RenderSection renders one section: heading, optional rich content block and
// optional item list. It returns nil for hidden or unnamed sections so callers
// reserve no space for them. Item order is preserved.
func RenderSection(section document.Section, theme document.Theme, opts ...Option) *Node {
	if !visibility.Section(section) {
		return nil
	}
	options := NewOptions(opts...)

	node := &Node{Kind: KindSection, Key: section.ID}
	if columns := section.Columns; columns > 1 {
		node.Attrs = map[string]string{"columns": strconv.Itoa(columns)}
	}
	node.Append(
		&Node{
			Kind:  KindHeading,
			Text:  strings.TrimSpace(section.Name),
			Style: styleOf("color", theme.Primary),
		},
		renderContent(section.Content),
		renderItems(section.Items, theme, options.ItemPolicy),
	)
	return node
}

func renderContent(raw string) *Node {
	fragment := richtext.Sanitize(raw)
	if fragment.Empty() {
		return nil
	}
	return &Node{Kind: KindContent, HTML: fragment.HTML}
}

func renderItems(items []document.Item, theme document.Theme, policy visibility.Policy) *Node {
	if len(items) == 0 {
		return nil
	}

	list := &Node{Kind: KindList}
	for index, item := range items {
		if policy != nil && !policy.ItemVisible(item) {
			continue
		}
		list.Append(renderItem(index, item, theme))
	}
	if len(list.Children) == 0 {
		return nil
	}
	return list
}

func renderItem(index int, item document.Item, theme document.Theme) *Node {
	node := &Node{Kind: KindItem, Key: item.Key(index)}

	var label *Node
	if text := item.Label(); text != "" {
		label = &Node{Kind: KindLabel, Text: text, Attrs: map[string]string{"weight": "bold"}}
	}

	var position, location, date *Node
	if text := strings.TrimSpace(item.Position); text != "" {
		position = &Node{Kind: KindPosition, Text: "– " + text}
	}
	if text := strings.TrimSpace(item.Location); text != "" {
		location = &Node{Kind: KindLocation, Text: "(" + text + ")"}
	}
	if text := strings.TrimSpace(item.Date); text != "" {
		date = &Node{Kind: KindDate, Text: text}
	}

	var summary *Node
	if fragment := richtext.Sanitize(item.Summary); !fragment.Empty() {
		summary = &Node{Kind: KindSummary, HTML: fragment.HTML}
	}

	node.Append(label, position, location, date, summary, linkNode("url", item.URL, theme))
	return node
}
