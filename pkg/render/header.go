package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/richtext"
)

// RenderHeader builds the header block shared by every template: picture,
// name, headline and contact line. The name is always present (possibly
// empty); every other element is omitted when its data is missing.
func RenderHeader(basics document.Basics, theme document.Theme) *Node {
	header := &Node{Kind: KindHeader}
	header.Append(
		renderPicture(basics),
		&Node{Kind: KindName, Text: strings.TrimSpace(basics.Name)},
		textNode(KindHeadline, "", basics.Headline),
		renderContact(basics, theme),
	)
	return header
}

func renderPicture(basics document.Basics) *Node {
	picture := basics.Picture
	if !picture.Displayable() {
		return nil
	}
	src, ok := richtext.SafeURL(picture.URL)
	if !ok {
		return nil
	}

	attrs := map[string]string{
		"src": src,
		"alt": strings.TrimSpace(basics.Name),
	}
	setNumber(attrs, "size", picture.Size)
	setNumber(attrs, "aspectRatio", picture.AspectRatio)
	setNumber(attrs, "borderRadius", picture.BorderRadius)

	style := make(map[string]string, 4)
	if ratio, ok := attrs["aspectRatio"]; ok {
		style["aspect-ratio"] = ratio
	}
	if radius, ok := attrs["borderRadius"]; ok {
		style["border-radius"] = radius + "px"
	}
	if picture.Effects.Grayscale {
		style["filter"] = "grayscale(1)"
	}
	if picture.Effects.Border {
		style["border"] = "2px solid #000"
	}
	if len(style) == 0 {
		style = nil
	}

	return &Node{Kind: KindPicture, Attrs: attrs, Style: style}
}

func renderContact(basics document.Basics, theme document.Theme) *Node {
	contact := &Node{Kind: KindContact}
	contact.Append(
		textNode(KindContactEntry, "email", basics.Email),
		textNode(KindContactEntry, "phone", basics.Phone),
		textNode(KindContactEntry, "location", basics.Location),
		linkNode("url", basics.URL, theme),
	)
	if len(contact.Children) == 0 {
		return nil
	}
	return contact
}

func linkNode(key string, link document.Link, theme document.Theme) *Node {
	if link.Empty() {
		return nil
	}
	href, ok := richtext.SafeURL(link.Href)
	if !ok {
		return nil
	}
	label := strings.TrimSpace(link.Label)
	if label == "" {
		label = href
	}
	return &Node{
		Kind:  KindLink,
		Key:   key,
		Text:  label,
		Attrs: map[string]string{"href": href},
		Style: styleOf("color", theme.Primary),
	}
}

func textNode(kind Kind, key, value string) *Node {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &Node{Kind: kind, Key: key, Text: trimmed}
}

// setNumber records value under key when it was set, zero included.
func setNumber(attrs map[string]string, key string, value *float64) {
	if value == nil {
		return
	}
	attrs[key] = strconv.FormatFloat(*value, 'f', -1, 64)
}
