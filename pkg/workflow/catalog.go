package workflow

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-resume/pkg/document"
)

// CatalogOption customises a Catalog.
type CatalogOption func(*Catalog)

// WithIDGenerator overrides the record id source (uuid v4 by default).
func WithIDGenerator(fn func() string) CatalogOption {
	return func(c *Catalog) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithClock overrides the creation timestamp source.
func WithClock(fn func() time.Time) CatalogOption {
	return func(c *Catalog) {
		if fn != nil {
			c.now = fn
		}
	}
}

// WithSeed overrides how the initial document of a new record is built. The
// default gives the sample slug the sample resume and every other slug an
// empty document.
func WithSeed(fn func(title, slug string) document.Document) CatalogOption {
	return func(c *Catalog) {
		if fn != nil {
			c.seed = fn
		}
	}
}

// Catalog is an in-memory Creator. Title/slug pairs are unique ignoring case.
// It is safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	records map[string]Record
	pairs   map[string]string
	newID   func() string
	now     func() time.Time
	seed    func(title, slug string) document.Document
}

var _ Creator = (*Catalog)(nil)

// NewCatalog returns an empty catalog.
func NewCatalog(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		records: make(map[string]Record),
		pairs:   make(map[string]string),
		newID:   uuid.NewString,
		now:     time.Now,
		seed:    defaultSeed,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Create stores a new record or reports a Conflict for a known pair.
func (c *Catalog) Create(ctx context.Context, title, slug string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	key := pairKey(title, slug)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pairs[key]; exists {
		return Result{Conflict: &Conflict{Title: title, Slug: slug}}, nil
	}
	record := Record{
		ID:        c.newID(),
		Title:     title,
		Slug:      slug,
		Document:  c.seed(title, slug),
		CreatedAt: c.now().UTC(),
	}
	c.records[record.ID] = record
	c.pairs[key] = record.ID
	return Result{Record: &record}, nil
}

// Get returns the record with the given id.
func (c *Catalog) Get(id string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	record, ok := c.records[id]
	return record, ok
}

// Find returns the record for a title/slug pair, ignoring case.
func (c *Catalog) Find(title, slug string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.pairs[pairKey(title, slug)]
	if !ok {
		return Record{}, false
	}
	return c.records[id], true
}

// List returns every record ordered by creation time then slug.
func (c *Catalog) List() []Record {
	c.mu.RLock()
	out := make([]Record, 0, len(c.records))
	for _, record := range c.records {
		out = append(out, record)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// Len reports the number of records.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func pairKey(title, slug string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "\x00" + strings.ToLower(strings.TrimSpace(slug))
}

func defaultSeed(title, slug string) document.Document {
	if strings.EqualFold(slug, document.SampleSlug) {
		return document.Sample()
	}
	return document.Document{Sections: document.NewSections()}
}
