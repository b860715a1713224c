// Package loader reads raw document payloads from the sources pkg/document
// describes.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-resume/pkg/document"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFS sets the filesystem used for document.SourceKindFS sources.
func WithFS(files fs.FS) Option {
	return func(l *Loader) {
		l.fs = files
	}
}

// Loader dispatches on the source kind: files on disk, entries of an fs.FS or
// in-memory bytes.
type Loader struct {
	fs fs.FS
}

// New constructs a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Load returns the raw payload behind src.
func (l *Loader) Load(ctx context.Context, src document.Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case document.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case document.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case document.SourceKindBytes:
		data, err = loadBytes(ctx, src)
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// LoadDocument loads src and parses it in the format implied by its location.
func (l *Loader) LoadDocument(ctx context.Context, src document.Source) (document.Document, error) {
	data, err := l.Load(ctx, src)
	if err != nil {
		return document.Document{}, err
	}
	return document.ParseFormat(data, document.FormatFor(src.Location()))
}

func loadBytes(ctx context.Context, src document.Source) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	switch payload := src.(type) {
	case document.BytesSource:
		return append([]byte(nil), payload.Data...), nil
	case *document.BytesSource:
		if payload == nil {
			return nil, errors.New("loader: bytes source is nil")
		}
		return append([]byte(nil), payload.Data...), nil
	default:
		return nil, fmt.Errorf("loader: bytes source %T carries no payload", src)
	}
}
