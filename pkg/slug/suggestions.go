package slug

import "strings"

// DefaultSuggestionLimit caps Suggestions when the caller passes limit <= 0.
const DefaultSuggestionLimit = 5

// Suggestion is one entry of the job-title picklist.
type Suggestion struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

var jobTitles = []Suggestion{
	{Title: "Frontend Developer", Slug: "frontend-developer"},
	{Title: "Backend Developer", Slug: "backend-developer"},
	{Title: "Full Stack Developer", Slug: "full-stack-developer"},
	{Title: "Software Engineer", Slug: "software-engineer"},
	{Title: "Mobile App Developer", Slug: "mobile-app-developer"},
	{Title: "Data Scientist", Slug: "data-scientist"},
	{Title: "Machine Learning Engineer", Slug: "machine-learning-engineer"},
	{Title: "DevOps Engineer", Slug: "devops-engineer"},
	{Title: "UI/UX Designer", Slug: "ui-ux-designer"},
	{Title: "Product Manager", Slug: "product-manager"},
}

// JobTitles returns a copy of the built-in picklist.
func JobTitles() []Suggestion {
	out := make([]Suggestion, len(jobTitles))
	copy(out, jobTitles)
	return out
}

// Suggestions filters the picklist by a case-insensitive substring match on
// the title. An empty query matches everything.
func Suggestions(query string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]Suggestion, 0, limit)
	for _, s := range jobTitles {
		if len(out) == limit {
			break
		}
		if strings.Contains(strings.ToLower(s.Title), needle) {
			out = append(out, s)
		}
	}
	return out
}

// Lookup returns the picklist entry whose title equals title, ignoring case
// and surrounding whitespace.
func Lookup(title string) (Suggestion, bool) {
	needle := strings.TrimSpace(title)
	for _, s := range jobTitles {
		if strings.EqualFold(s.Title, needle) {
			return s, true
		}
	}
	return Suggestion{}, false
}
