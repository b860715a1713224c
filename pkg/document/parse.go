package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a supported payload encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor infers the payload format from a file name. Anything that is not
// a .yaml/.yml file is treated as JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse validates a JSON payload against the document schema and decodes it.
func Parse(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, errors.New("document: payload is empty")
	}
	if !json.Valid(trimmed) {
		return Document{}, errors.New("document: payload is not valid JSON")
	}
	if err := Validate(trimmed); err != nil {
		return Document{}, err
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return Document{}, fmt.Errorf("document: decode: %w", err)
	}
	return doc, nil
}

// ParseYAML converts a YAML payload to JSON, keeping mapping order, and then
// runs it through Parse.
func ParseYAML(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, fmt.Errorf("document: decode yaml: %w", err)
	}

	var buf bytes.Buffer
	if err := writeYAMLAsJSON(&buf, &root); err != nil {
		return Document{}, err
	}
	return Parse(buf.Bytes())
}

// ParseFormat dispatches to Parse or ParseYAML.
func ParseFormat(data []byte, format Format) (Document, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatJSON, "":
		return Parse(data)
	default:
		return Document{}, fmt.Errorf("document: unsupported format %q", format)
	}
}

func writeYAMLAsJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case 0:
		buf.WriteString("null")
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeYAMLAsJSON(buf, node.Content[0])
	case yaml.AliasNode:
		if node.Alias == nil {
			return errors.New("document: yaml alias without target")
		}
		return writeYAMLAsJSON(buf, node.Alias)
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == "<<" {
				return fmt.Errorf("document: yaml merge keys are not supported (line %d)", key.Line)
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			encoded, err := json.Marshal(key.Value)
			if err != nil {
				return err
			}
			buf.Write(encoded)
			buf.WriteByte(':')
			if err := writeYAMLAsJSON(buf, value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, child := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeYAMLAsJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("document: yaml scalar at line %d: %w", node.Line, err)
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("document: yaml scalar at line %d: %w", node.Line, err)
		}
		buf.Write(encoded)
	default:
		return fmt.Errorf("document: unsupported yaml node kind %d", node.Kind)
	}
	return nil
}
