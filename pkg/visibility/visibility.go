// Package visibility decides which sections and items make it into a render.
// Section visibility is fixed (hidden or unnamed sections are suppressed);
// the default for items that omit the flag is a Policy so it can be switched
// without touching the renderers.
package visibility

import "github.com/goliatone/go-resume/pkg/document"

// Policy determines whether an item is rendered.
type Policy interface {
	ItemVisible(item document.Item) bool
}

// PolicyFunc adapts a function into a Policy.
type PolicyFunc func(item document.Item) bool

// ItemVisible delegates to the underlying function.
func (fn PolicyFunc) ItemVisible(item document.Item) bool {
	return fn(item)
}

// VisibleUnlessFalse renders every item except those explicitly marked
// visible=false. It is the default.
var VisibleUnlessFalse Policy = PolicyFunc(func(item document.Item) bool {
	return item.Visible == nil || *item.Visible
})

// RequireTrue renders only items explicitly marked visible=true, hiding items
// that omit the flag.
var RequireTrue Policy = PolicyFunc(func(item document.Item) bool {
	return item.Visible != nil && *item.Visible
})

// Default returns the policy used when callers do not choose one.
func Default() Policy {
	return VisibleUnlessFalse
}

// Section reports whether a section renders at all.
func Section(section document.Section) bool {
	return section.Displayable()
}

// Items filters items through policy, preserving order. A nil policy means
// Default(). The input slice is never modified.
func Items(items []document.Item, policy Policy) []document.Item {
	if policy == nil {
		policy = Default()
	}
	out := make([]document.Item, 0, len(items))
	for _, item := range items {
		if policy.ItemVisible(item) {
			out = append(out, item)
		}
	}
	return out
}
