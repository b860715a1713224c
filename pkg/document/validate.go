package document

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

// Issue is a single schema violation with its location inside the payload.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError aggregates every Issue found while validating a payload.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "document: schema validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
			continue
		}
		parts = append(parts, issue.Message)
	}
	return "document: schema validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err carries schema issues.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// Schema returns the embedded JSON Schema document.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
		if schemaErr != nil {
			schemaErr = fmt.Errorf("document: compile schema: %w", schemaErr)
		}
	})
	return schema, schemaErr
}

// Validate checks a raw JSON payload against the document schema. It returns a
// *ValidationError when the payload is well-formed but does not match.
func Validate(data []byte) error {
	compiled, err := compiledSchema()
	if err != nil {
		return err
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("document: validate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	issues := make([]Issue, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		path := re.Field()
		field := path
		if idx := strings.LastIndex(path, "."); idx >= 0 {
			field = path[idx+1:]
		}
		issues = append(issues, Issue{
			Path:    path,
			Field:   field,
			Message: re.Description(),
		})
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Path < issues[j].Path
	})
	return &ValidationError{Issues: issues}
}
