package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Sections is an ordered, read-only collection of sections keyed by id. The
// zero value is an empty collection.
type Sections struct {
	order []string
	byID  map[string]Section
}

// NewSections builds a collection in the given order. A section with an empty
// ID cannot be addressed and is skipped; duplicate ids keep the first one.
func NewSections(sections ...Section) Sections {
	out := Sections{byID: make(map[string]Section, len(sections))}
	for _, section := range sections {
		out.add(section.ID, section)
	}
	return out
}

func (s *Sections) add(key string, section Section) {
	if key == "" {
		return
	}
	if s.byID == nil {
		s.byID = make(map[string]Section)
	}
	if _, exists := s.byID[key]; exists {
		return
	}
	if section.ID == "" {
		section.ID = key
	}
	s.order = append(s.order, key)
	s.byID[key] = section
}

// Len returns the number of sections.
func (s Sections) Len() int {
	return len(s.order)
}

// IDs returns the section ids in declaration order.
func (s Sections) IDs() []string {
	if len(s.order) == 0 {
		return nil
	}
	return append([]string(nil), s.order...)
}

// Get looks a section up by id.
func (s Sections) Get(id string) (Section, bool) {
	section, ok := s.byID[id]
	return section, ok
}

// Has reports whether id names a section.
func (s Sections) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// All returns the sections in declaration order.
func (s Sections) All() []Section {
	if len(s.order) == 0 {
		return nil
	}
	out := make([]Section, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Equal reports whether both collections hold the same sections in the same
// order. go-cmp picks this method up, so tests can compare documents directly.
func (s Sections) Equal(other Sections) bool {
	if len(s.order) != len(other.order) {
		return false
	}
	for i, id := range s.order {
		if other.order[i] != id {
			return false
		}
		a, b := s.byID[id], other.byID[id]
		ja, errA := json.Marshal(a)
		jb, errB := json.Marshal(b)
		if errA != nil || errB != nil || !bytes.Equal(ja, jb) {
			return false
		}
	}
	return true
}

// MarshalJSON writes the sections as a JSON object keeping declaration order.
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range s.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.byID[id])
		if err != nil {
			return nil, fmt.Errorf("document: marshal section %q: %w", id, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of sections, recording key order.
func (s *Sections) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = Sections{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("document: sections: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("document: sections must be an object")
	}

	out := Sections{byID: make(map[string]Section)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("document: sections: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return errors.New("document: sections: expected object key")
		}
		var section Section
		if err := dec.Decode(&section); err != nil {
			return fmt.Errorf("document: section %q: %w", key, err)
		}
		out.add(key, section)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("document: sections: %w", err)
	}

	*s = out
	return nil
}
