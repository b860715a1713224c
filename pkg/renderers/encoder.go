// Package renderers defines the Encoder contract output formats implement to
// turn a render tree into bytes. Implementations live in subpackages.
package renderers

import (
	"context"

	"github.com/goliatone/go-resume/pkg/render"
)

// Encoder serialises a render tree for one display surface.
type Encoder interface {
	Name() string
	ContentType() string
	Encode(ctx context.Context, tree render.Tree) ([]byte, error)
}

// NewRegistry returns an empty encoder registry.
func NewRegistry() *render.Registry[Encoder] {
	return render.NewRegistry[Encoder]("renderer")
}
