// Package document defines the typed resume document consumed by the rendering
// engine. A Document is produced by Parse (or ParseYAML) which validates the raw
// payload against the embedded JSON Schema once, at the boundary, and decodes it
// into the closed shape declared here. Downstream packages (layout, render,
// templates) only ever see these types and never mutate them.
//
// Sections keep their declaration order: the order of keys in the JSON object
// (or YAML mapping) is the order single-column templates render them in and the
// order the multi-column layout fallback uses.
package document
