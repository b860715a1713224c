package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-resume/pkg/slug"
)

const (
	startPicklist = iota
	startTyped
	startSample
)

var startOptions = []string{
	startPicklist: "Pick a job title",
	startTyped:    "Type a title",
	startSample:   "Create Sample Resume",
}

// PrompterOption customises a Prompter.
type PrompterOption func(*Prompter)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) PrompterOption {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithForm starts the flow from an existing form, for example one opened on a
// document being renamed.
func WithForm(form *Form) PrompterOption {
	return func(p *Prompter) {
		if form != nil {
			p.form = form
		}
	}
}

// Prompter walks a user through creating a document: choose a picklist title,
// type one, or take the sample; review the generated slug; submit.
type Prompter struct {
	driver PromptDriver
	form   *Form
}

// NewPrompter returns a prompter over a fresh form.
func NewPrompter(opts ...PrompterOption) *Prompter {
	p := &Prompter{form: NewForm()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(nil)
	}
	return p
}

// Form exposes the form the prompter edits.
func (p *Prompter) Form() *Form {
	return p.form
}

// Run collects a title and slug and submits them to creator. A Conflict is
// reported through the driver and returned as the result.
func (p *Prompter) Run(ctx context.Context, creator Creator) (Result, error) {
	if p.form.IsNew() {
		choice, err := p.driver.Select(ctx, SelectConfig{
			Message: "How would you like to start?",
			Options: startOptions,
		})
		if err != nil {
			return Result{}, err
		}
		switch choice {
		case startPicklist:
			if err := p.pickTitle(ctx); err != nil {
				return Result{}, err
			}
		case startTyped:
			if err := p.typeTitle(ctx); err != nil {
				return Result{}, err
			}
		case startSample:
			result, err := p.form.CreateSample(ctx, creator)
			return p.report(ctx, result, err)
		default:
			return Result{}, fmt.Errorf("workflow: unknown start option %d", choice)
		}
	} else if err := p.typeTitle(ctx); err != nil {
		return Result{}, err
	}

	if err := p.reviewSlug(ctx); err != nil {
		return Result{}, err
	}
	result, err := p.form.Submit(ctx, creator)
	return p.report(ctx, result, err)
}

func (p *Prompter) pickTitle(ctx context.Context) error {
	titles := slug.JobTitles()
	options := make([]string, len(titles))
	for i, s := range titles {
		options[i] = s.Title
	}
	index, err := p.driver.Select(ctx, SelectConfig{Message: "Job title", Options: options, PageSize: len(options)})
	if err != nil {
		return err
	}
	if index < 0 || index >= len(titles) {
		return fmt.Errorf("workflow: job title index %d out of range", index)
	}
	p.form.SelectSuggestion(titles[index])
	return nil
}

func (p *Prompter) typeTitle(ctx context.Context) error {
	title, err := p.driver.Input(ctx, InputConfig{
		Message:   "Title",
		Default:   p.form.Title(),
		Validator: requireText(msgTitleRequired),
	})
	if err != nil {
		return err
	}
	p.form.SetTitle(title)
	return nil
}

func (p *Prompter) reviewSlug(ctx context.Context) error {
	keep, err := p.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Use slug %q?", p.form.Slug()),
		Default: true,
	})
	if err != nil {
		return err
	}
	if keep {
		return nil
	}
	value, err := p.driver.Input(ctx, InputConfig{
		Message:   "Slug",
		Default:   p.form.Slug(),
		Validator: requireText(msgSlugRequired),
	})
	if err != nil {
		return err
	}
	p.form.SetSlug(value)
	return nil
}

func (p *Prompter) report(ctx context.Context, result Result, err error) (Result, error) {
	if err != nil {
		return result, err
	}
	var msg string
	switch {
	case result.Conflict != nil:
		msg = fmt.Sprintf("A resume titled %q with slug %q already exists", result.Conflict.Title, result.Conflict.Slug)
	case result.Record != nil:
		msg = fmt.Sprintf("Created %q (%s)", result.Record.Title, result.Record.Slug)
	}
	if msg != "" {
		if infoErr := p.driver.Info(ctx, msg); infoErr != nil {
			return result, infoErr
		}
	}
	return result, nil
}

func requireText(message string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(message)
		}
		return nil
	}
}
