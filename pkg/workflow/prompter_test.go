package workflow

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	infoMessages []string
	inputCfgs    []InputConfig
	inputPos     int
	selectPos    int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.inputCfgs = append(s.inputCfgs, cfg)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestPrompter_PicklistKeepsCanonicalSlug(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{startPicklist, 8}, confirm: []bool{true}}
	catalog := NewCatalog()

	result, err := NewPrompter(WithPromptDriver(driver)).Run(context.Background(), catalog)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !result.Created() {
		t.Fatalf("expected created result")
	}
	if result.Record.Title != "UI/UX Designer" || result.Record.Slug != "ui-ux-designer" {
		t.Fatalf("unexpected record %q %q", result.Record.Title, result.Record.Slug)
	}
	if diff := cmp.Diff([]string{`Created "UI/UX Designer" (ui-ux-designer)`}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestPrompter_TypedTitleWithManualSlug(t *testing.T) {
	driver := &stubDriver{
		selectIdx: []int{startTyped},
		inputs:    []string{"Platform Engineer", "platform"},
		confirm:   []bool{false},
	}
	catalog := NewCatalog()

	result, err := NewPrompter(WithPromptDriver(driver)).Run(context.Background(), catalog)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Record.Slug != "platform" {
		t.Fatalf("expected manual slug, got %q", result.Record.Slug)
	}
	if driver.inputCfgs[1].Default != "platform-engineer" {
		t.Fatalf("slug prompt should default to the generated slug, got %q", driver.inputCfgs[1].Default)
	}
	if err := driver.inputCfgs[0].Validator("  "); err == nil || err.Error() != msgTitleRequired {
		t.Fatalf("expected title validator, got %v", err)
	}
}

func TestPrompter_Sample(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{startSample}}
	catalog := NewCatalog()

	result, err := NewPrompter(WithPromptDriver(driver)).Run(context.Background(), catalog)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Record.Slug != "sample-resume" || result.Record.Document.Sections.Len() == 0 {
		t.Fatalf("expected seeded sample, got %+v", result.Record)
	}
}

func TestPrompter_ConflictReported(t *testing.T) {
	catalog := NewCatalog()
	if _, err := catalog.Create(context.Background(), "Sample Resume", "sample-resume"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	driver := &stubDriver{selectIdx: []int{startSample}}

	result, err := NewPrompter(WithPromptDriver(driver)).Run(context.Background(), catalog)
	if err != nil {
		t.Fatalf("conflict must not be an error: %v", err)
	}
	if result.Conflict == nil {
		t.Fatalf("expected conflict")
	}
	want := []string{`A resume titled "Sample Resume" with slug "sample-resume" already exists`}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestPrompter_EditFormSkipsStartMenu(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Renamed"}, confirm: []bool{true}}
	form := EditForm("Old", "old")

	result, err := NewPrompter(WithPromptDriver(driver), WithForm(form)).Run(context.Background(), NewCatalog())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.selectPos != 0 {
		t.Fatalf("start menu shown for existing document")
	}
	if result.Record.Title != "Renamed" || result.Record.Slug != "old" {
		t.Fatalf("unexpected record %q %q", result.Record.Title, result.Record.Slug)
	}
}

func TestPrompter_DriverErrorAborts(t *testing.T) {
	driver := &stubDriver{}
	if _, err := NewPrompter(WithPromptDriver(driver)).Run(context.Background(), NewCatalog()); err == nil {
		t.Fatalf("expected error when driver has nothing scripted")
	}
}
