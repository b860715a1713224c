package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume/pkg/orchestrator"
	"github.com/goliatone/go-resume/pkg/workflow"
)

type newOpts struct {
	title    string
	slug     string
	sample   bool
	editing  bool
	render   string
	template string
}

func (c *CLI) newCommand() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a resume from a title and slug",
		Long: `New walks through the create flow: pick a job title from the picklist or type one,
review the generated slug and create the resume. --title/--slug skip the prompts,
--sample creates the sample resume and --edit opens the flow on an existing title/slug.
With --render the created document is rendered to stdout in that format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			result, err := c.runNew(cmd, opts)
			if err != nil {
				return err
			}
			if result.Conflict != nil {
				return fmt.Errorf("new: resume %q with slug %q already exists", result.Conflict.Title, result.Conflict.Slug)
			}
			record := result.Record
			if record == nil {
				return fmt.Errorf("new: no resume created")
			}
			logger.Debug("resume created", "id", record.ID, "slug", record.Slug, "total", c.catalog.Len())

			if opts.render == "" {
				return nil
			}
			cfg := c.config
			cfg.Format = opts.render
			if opts.template != "" {
				cfg.Template = opts.template
			}
			doc := record.Document
			return c.runRender(ctx, cmd.OutOrStdout(), orchestrator.Request{Document: &doc}, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "resume title; skips the prompts")
	cmd.Flags().StringVar(&opts.slug, "slug", "", "resume slug; generated from the title when empty")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "create the sample resume")
	cmd.Flags().BoolVar(&opts.editing, "edit", false, "start the prompts from --title and --slug as an existing resume")
	cmd.Flags().StringVar(&opts.render, "render", "", "render the created resume in this format")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "template used with --render")

	return cmd
}

func (c *CLI) runNew(cmd *cobra.Command, opts newOpts) (workflow.Result, error) {
	ctx := cmd.Context()
	status := cmd.ErrOrStderr()

	switch {
	case opts.sample:
		result, err := workflow.NewForm().CreateSample(ctx, c.catalog)
		report(status, result, err)
		return result, err
	case opts.title != "" && !opts.editing:
		form := workflow.NewForm()
		form.SetTitle(opts.title)
		if opts.slug != "" {
			form.SetSlug(opts.slug)
		}
		result, err := form.Submit(ctx, c.catalog)
		report(status, result, err)
		return result, err
	}

	form := workflow.NewForm()
	if opts.editing {
		form = workflow.EditForm(opts.title, opts.slug)
	}
	driver := c.driver
	if driver == nil {
		driver = workflow.NewSurveyDriver(status)
	}
	prompter := workflow.NewPrompter(workflow.WithPromptDriver(driver), workflow.WithForm(form))
	return prompter.Run(ctx, c.catalog)
}

func report(w io.Writer, result workflow.Result, err error) {
	switch {
	case err != nil:
		printError(w, "%v", err)
	case result.Conflict != nil:
		printError(w, "A resume titled %q with slug %q already exists", result.Conflict.Title, result.Conflict.Slug)
	case result.Record != nil:
		printSuccess(w, "Created %q (%s)", result.Record.Title, result.Record.Slug)
	}
}
