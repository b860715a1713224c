// Package layout resolves the metadata layout matrix into the section ids each
// column of a multi-column template renders.
package layout

import "github.com/goliatone/go-resume/pkg/document"

// Lookup is the part of document.Sections the resolver needs.
type Lookup interface {
	Has(id string) bool
	IDs() []string
}

// ResolveColumns returns the column lists of the first page. Ids that do not
// name a section are dropped. When the layout is absent, or its first page has
// no columns, the result is a single column holding every section id in
// declaration order.
func ResolveColumns(meta document.Metadata, sections Lookup) [][]string {
	page := meta.Layout.Page(0)
	if len(page) == 0 {
		return [][]string{Fallback(sections)}
	}
	return resolvePage(page, sections)
}

// ResolvePages resolves every page of the layout with the same rules as
// ResolveColumns. A missing layout resolves to one fallback page.
func ResolvePages(meta document.Metadata, sections Lookup) [][][]string {
	if len(meta.Layout) == 0 || len(meta.Layout.Page(0)) == 0 {
		return [][][]string{{Fallback(sections)}}
	}
	pages := make([][][]string, 0, len(meta.Layout))
	for _, page := range meta.Layout {
		pages = append(pages, resolvePage(page, sections))
	}
	return pages
}

// Fallback is the single default column: all section ids in declaration order.
func Fallback(sections Lookup) []string {
	if sections == nil {
		return []string{}
	}
	ids := sections.IDs()
	if ids == nil {
		return []string{}
	}
	return ids
}

func resolvePage(page [][]string, sections Lookup) [][]string {
	columns := make([][]string, 0, len(page))
	for _, column := range page {
		columns = append(columns, filterKnown(column, sections))
	}
	return columns
}

func filterKnown(ids []string, sections Lookup) []string {
	out := make([]string, 0, len(ids))
	if sections == nil {
		return out
	}
	for _, id := range ids {
		if sections.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
