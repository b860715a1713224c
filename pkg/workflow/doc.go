// Package workflow holds the document-creation state machines: the title/slug
// form with its slug latch, the in-memory catalog that answers create
// requests, the hover-driven sample affordance and an interactive prompt flow
// built on a swappable PromptDriver.
package workflow
