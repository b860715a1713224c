package document

import (
	_ "embed"
	"fmt"
)

//go:embed sample.json
var sampleJSON []byte

// SampleTitle and SampleSlug identify the document created by the "Create
// Sample Resume" action.
const (
	SampleTitle = "Sample Resume"
	SampleSlug  = "sample-resume"
)

// Sample returns the built-in sample resume. It panics if the embedded payload
// is invalid, which only happens when the file is edited incorrectly.
func Sample() Document {
	doc, err := Parse(sampleJSON)
	if err != nil {
		panic(fmt.Sprintf("document: embedded sample is invalid: %v", err))
	}
	return doc
}

// SampleJSON returns a copy of the embedded sample payload.
func SampleJSON() []byte {
	return append([]byte(nil), sampleJSON...)
}
