package render

import (
	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/visibility"
)

// Option customises a single render call.
type Option func(*Options)

// Options describe per-call settings templates use without mutating the
// document.
type Options struct {
	// Theme overrides metadata.theme token by token; empty tokens fall back to
	// the document theme.
	Theme *document.Theme
	// ItemPolicy decides which items render. Nil means visibility.Default().
	ItemPolicy visibility.Policy
}

// WithTheme overrides the document theme.
func WithTheme(theme document.Theme) Option {
	return func(o *Options) {
		o.Theme = &theme
	}
}

// WithItemPolicy selects the item visibility policy.
func WithItemPolicy(policy visibility.Policy) Option {
	return func(o *Options) {
		if policy != nil {
			o.ItemPolicy = policy
		}
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	options := Options{ItemPolicy: visibility.Default()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&options)
	}
	return options
}

// ThemeFor resolves the effective theme for doc.
func (o Options) ThemeFor(doc document.Document) document.Theme {
	if o.Theme == nil {
		return doc.Metadata.Theme
	}
	return o.Theme.Merge(doc.Metadata.Theme)
}
