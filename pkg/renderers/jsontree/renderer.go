// Package jsontree encodes render trees as indented JSON, the snapshot format
// used by golden tests and by tools that want the raw tree.
package jsontree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-resume/pkg/render"
)

// Name is the registry name of the encoder.
const Name = "json"

type Renderer struct {
	indent string
}

type Option func(*Renderer)

// WithIndent overrides the two-space indent. An empty indent produces compact
// output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// New constructs the JSON encoder.
func New(opts ...Option) *Renderer {
	r := &Renderer{indent: "  "}
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
	return "application/json"
}

// Encode writes tree followed by a newline. HTML characters are not escaped so
// sanitised fragments stay readable.
func (r *Renderer) Encode(ctx context.Context, tree render.Tree) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("json renderer: encode: %w", err)
	}
	return buf.Bytes(), nil
}
