package slug

import "fmt"

// Mode is the state of a Latch.
type Mode int

const (
	// Auto regenerates the slug whenever the title changes.
	Auto Mode = iota
	// Manual keeps whatever the user typed into the slug field.
	Manual
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Manual:
		return "manual"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Latch tracks whether title edits still drive the slug. A direct slug edit
// disengages it for the rest of the editing session; picking a suggestion or
// resetting the form engages it again.
//
// Latch is not safe for concurrent use; it belongs to one editing session.
type Latch struct {
	mode Mode
}

// NewLatch returns a latch in the given mode.
func NewLatch(mode Mode) *Latch {
	return &Latch{mode: mode}
}

// Mode reports the current state.
func (l *Latch) Mode() Mode {
	return l.mode
}

// TitleChanged returns the regenerated slug and true while the latch is Auto.
// A title that names a picklist entry yields that entry's canonical slug. In
// Manual mode it returns "" and false and the caller keeps its slug.
func (l *Latch) TitleChanged(title string) (string, bool) {
	if l.mode != Auto {
		return "", false
	}
	if match, ok := Lookup(title); ok {
		return match.Slug, true
	}
	return Slugify(title), true
}

// SlugEdited records a direct edit of the slug field.
func (l *Latch) SlugEdited() {
	l.mode = Manual
}

// SuggestionSelected re-engages auto mode after a picklist selection.
func (l *Latch) SuggestionSelected() {
	l.mode = Auto
}

// Reset returns the latch to Auto.
func (l *Latch) Reset() {
	l.mode = Auto
}
