// Package richtext turns user-authored HTML (typically produced by a WYSIWYG
// editor) into safe fragments. It is the only place in the engine that
// interprets markup; everything else treats content as opaque.
package richtext

import (
	"errors"
	stdhtml "html"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// URLSchemes are the schemes allowed in links and image sources. URLs without
// a scheme are treated as relative and allowed.
var URLSchemes = []string{"http", "https", "mailto"}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// Sanitize strips script-executing constructs from raw while keeping
// structural and inline formatting (paragraphs, emphasis, links, lists).
// The result is rebalanced so unclosed tags never leak past the fragment.
// Empty or whitespace-only input, and markup with no visible text, yields the
// empty Fragment. Input whose text the policy swallowed (for example an
// unterminated tag) degrades to its escaped raw text.
func Sanitize(raw string) Fragment {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Fragment{}
	}

	fragment := Fragment{HTML: strings.TrimSpace(balance(sanitizeOrEscape(trimmed)))}
	if fragment.Text() != "" {
		return fragment
	}
	if rawText(trimmed) != "" {
		return Fragment{HTML: stdhtml.EscapeString(trimmed)}
	}
	return Fragment{}
}

// SafeURL returns the trimmed URL when it is relative or uses one of
// URLSchemes, and false otherwise.
func SafeURL(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", false
	}
	if parsed.Scheme == "" {
		return trimmed, true
	}
	scheme := strings.ToLower(parsed.Scheme)
	for _, allowed := range URLSchemes {
		if scheme == allowed {
			return trimmed, true
		}
	}
	return "", false
}

// balance re-renders sanitized markup through the HTML5 parser, closing any
// element left open.
func balance(cleaned string) string {
	if strings.TrimSpace(cleaned) == "" {
		return ""
	}
	nodes, err := html.ParseFragment(strings.NewReader(cleaned), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return stdhtml.EscapeString(cleaned)
	}
	var b strings.Builder
	for _, node := range nodes {
		if err := html.Render(&b, node); err != nil {
			return stdhtml.EscapeString(cleaned)
		}
	}
	return b.String()
}

// rawText returns the text of raw outside script-like elements, including
// the bytes of a tag left unterminated at the end of the input.
func rawText(raw string) string {
	z := html.NewTokenizer(strings.NewReader(raw))
	var (
		b      strings.Builder
		hidden int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				b.Write(z.Raw())
			}
			return strings.TrimSpace(b.String())
		case html.TextToken:
			if hidden == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken:
			if name, _ := z.TagName(); hiddenElement(string(name)) {
				hidden++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); hiddenElement(string(name)) && hidden > 0 {
				hidden--
			}
		}
	}
}

func hiddenElement(name string) bool {
	switch name {
	case "script", "style", "iframe", "template":
		return true
	}
	return false
}

// sanitizeOrEscape falls back to the escaped raw text if the policy fails on
// markup it cannot handle.
func sanitizeOrEscape(raw string) (out string) {
	defer func() {
		if recover() != nil {
			out = stdhtml.EscapeString(raw)
		}
	}()
	return contentPolicy().Sanitize(raw)
}

func contentPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.NewPolicy()

		p.AllowElements(
			"p", "br", "hr", "div", "span",
			"b", "strong", "i", "em", "u", "s", "strike", "mark", "sub", "sup",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"blockquote", "code", "pre",
		)
		p.AllowLists()

		p.AllowAttrs("href").OnElements("a")
		p.AllowURLSchemes(URLSchemes...)
		p.RequireParseableURLs(true)
		p.RequireNoFollowOnLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)

		policy = p
	})
	return policy
}
