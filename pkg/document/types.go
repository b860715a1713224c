package document

import (
	"strconv"
	"strings"
)

// Document is the full resume payload: identity block, ordered sections and
// presentation metadata.
type Document struct {
	Basics   Basics   `json:"basics"`
	Sections Sections `json:"sections"`
	Metadata Metadata `json:"metadata"`
}

// Link is a labelled URL.
type Link struct {
	Label string `json:"label,omitempty"`
	Href  string `json:"href,omitempty"`
}

// Empty reports whether the link has nothing to point at.
func (l Link) Empty() bool {
	return strings.TrimSpace(l.Href) == ""
}

// Basics is the non-repeating identity/contact block.
type Basics struct {
	Name     string   `json:"name"`
	Headline string   `json:"headline,omitempty"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Location string   `json:"location,omitempty"`
	URL      Link     `json:"url,omitempty"`
	Picture  *Picture `json:"picture,omitempty"`
}

// Picture describes the optional portrait. Size, AspectRatio and BorderRadius
// are layout hints passed through to the render tree untouched; nil means
// unset and an explicit zero is kept.
type Picture struct {
	URL          string   `json:"url"`
	Size         *float64 `json:"size,omitempty"`
	AspectRatio  *float64 `json:"aspectRatio,omitempty"`
	BorderRadius *float64 `json:"borderRadius,omitempty"`
	Effects      Effects  `json:"effects"`
}

// Effects are independent picture filters.
type Effects struct {
	Hidden    bool `json:"hidden"`
	Border    bool `json:"border"`
	Grayscale bool `json:"grayscale"`
}

// Displayable reports whether the picture should be rendered at all.
func (p *Picture) Displayable() bool {
	return p != nil && strings.TrimSpace(p.URL) != "" && !p.Effects.Hidden
}

// Section is a named block holding either rich content, an item list, or both.
type Section struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Columns int    `json:"columns,omitempty"`
	Visible bool   `json:"visible"`
	Content string `json:"content,omitempty"`
	Items   []Item `json:"items,omitempty"`
}

// Displayable reports whether the section renders at all. Hidden or unnamed
// sections are suppressed entirely.
func (s Section) Displayable() bool {
	return s.Visible && strings.TrimSpace(s.Name) != ""
}

// Item is one entry of a section. Every field is optional; which ones are set
// depends on the kind of section (experience, education, profiles, ...).
type Item struct {
	ID          string `json:"id,omitempty"`
	Visible     *bool  `json:"visible,omitempty"`
	Name        string `json:"name,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	Company     string `json:"company,omitempty"`
	Institution string `json:"institution,omitempty"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	Area        string `json:"area,omitempty"`
	Username    string `json:"username,omitempty"`
	Network     string `json:"network,omitempty"`
	URL         Link   `json:"url,omitempty"`
	Date        string `json:"date,omitempty"`
}

// Label resolves the primary label: name, company, institution, username; the
// first non-empty value wins.
func (i Item) Label() string {
	for _, candidate := range []string{i.Name, i.Company, i.Institution, i.Username} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Key returns the item id, falling back to its position in the section.
func (i Item) Key(index int) string {
	if id := strings.TrimSpace(i.ID); id != "" {
		return id
	}
	return strconv.Itoa(index)
}

// Bool returns a pointer to v, handy when building items in code.
func Bool(v bool) *bool {
	return &v
}

// Float returns a pointer to v, for picture layout hints.
func Float(v float64) *float64 {
	return &v
}

// Theme carries the three colour tokens every template understands.
type Theme struct {
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
	Primary    string `json:"primary,omitempty"`
}

// Merge returns t with every empty token filled from fallback.
func (t Theme) Merge(fallback Theme) Theme {
	if t.Background == "" {
		t.Background = fallback.Background
	}
	if t.Text == "" {
		t.Text = fallback.Text
	}
	if t.Primary == "" {
		t.Primary = fallback.Primary
	}
	return t
}

// Layout is the page → column → ordered section id matrix.
type Layout [][][]string

// Page returns the columns of page n, or nil when the page does not exist.
func (l Layout) Page(n int) [][]string {
	if n < 0 || n >= len(l) {
		return nil
	}
	return l[n]
}

// Metadata holds presentation settings.
type Metadata struct {
	Theme  Theme  `json:"theme"`
	Layout Layout `json:"layout,omitempty"`
}
