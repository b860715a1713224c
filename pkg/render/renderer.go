package render

import "github.com/goliatone/go-resume/pkg/document"

// Template composes a document into a render tree. Implementations must be
// pure: same document and options, same tree.
type Template interface {
	Name() string
	Compose(doc document.Document, opts ...Option) Tree
}

// FontFamily is the font every built-in template uses.
const FontFamily = "Merriweather, serif"

// DocumentNode builds the themed root node shared by templates.
func DocumentNode(theme document.Theme) *Node {
	return &Node{
		Kind:  KindDocument,
		Style: styleOf("background-color", theme.Background, "color", theme.Text, "font-family", FontFamily),
	}
}

func styleOf(pairs ...string) map[string]string {
	var out map[string]string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string, len(pairs)/2)
		}
		out[pairs[i]] = pairs[i+1]
	}
	return out
}
