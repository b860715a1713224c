package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume/internal/config"
	"github.com/goliatone/go-resume/pkg/document"
	"github.com/goliatone/go-resume/pkg/orchestrator"
)

const stdinArg = "-"

type renderOpts struct {
	template    string
	format      string
	theme       string
	variant     string
	items       string
	inputFormat string
	width       int
	sample      bool
}

// merge lets explicit flags win over the config file.
func (o renderOpts) merge(cfg config.Config) config.Config {
	if o.template != "" {
		cfg.Template = o.template
	}
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	if o.variant != "" {
		cfg.Variant = o.variant
	}
	if o.items != "" {
		cfg.Items = o.items
	}
	if o.width > 0 {
		cfg.Width = o.width
	}
	return cfg
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a resume document",
		Long:  `Render reads a JSON or YAML resume (or stdin with "-") and writes the encoded output to stdout. Use --sample to render the built-in sample resume.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := c.renderRequest(args, opts)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), req, opts.merge(c.config))
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "template: modern, classic")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: html, markdown, terminal, json")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "preset theme overriding metadata.theme")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "preset theme variant")
	cmd.Flags().StringVar(&opts.items, "items", "", "item visibility: visible-unless-false, require-true")
	cmd.Flags().StringVar(&opts.inputFormat, "input-format", string(document.FormatJSON), "stdin payload format: json, yaml")
	cmd.Flags().IntVar(&opts.width, "width", 0, "terminal output width")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "render the built-in sample resume")

	return cmd
}

func (c *CLI) renderRequest(args []string, opts renderOpts) (orchestrator.Request, error) {
	switch {
	case opts.sample && len(args) > 0:
		return orchestrator.Request{}, fmt.Errorf("render: --sample takes no file argument")
	case opts.sample:
		doc := document.Sample()
		return orchestrator.Request{Document: &doc}, nil
	case len(args) == 0:
		return orchestrator.Request{}, fmt.Errorf("render: a file, \"-\" or --sample is required")
	case args[0] == stdinArg:
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return orchestrator.Request{}, fmt.Errorf("render: read stdin: %w", err)
		}
		name := "stdin." + strings.ToLower(strings.TrimSpace(opts.inputFormat))
		return orchestrator.Request{Source: document.SourceFromBytes(name, data)}, nil
	default:
		return orchestrator.Request{Source: document.SourceFromFile(args[0])}, nil
	}
}

func (c *CLI) runRender(ctx context.Context, out io.Writer, req orchestrator.Request, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	orch, err := c.newOrchestrator(ctx, cfg)
	if err != nil {
		return err
	}

	req.Template = cfg.Template
	req.Renderer = cfg.Format
	req.ThemeName = cfg.Theme
	req.ThemeVariant = cfg.Variant

	output, err := orch.Generate(ctx, req)
	if err != nil {
		return err
	}
	logger.Debug("rendered", "template", req.Template, "format", req.Renderer, "bytes", len(output))

	if _, err := out.Write(output); err != nil {
		return fmt.Errorf("render: write output: %w", err)
	}
	return nil
}

func (c *CLI) newOrchestrator(ctx context.Context, cfg config.Config) (*orchestrator.Orchestrator, error) {
	policy, err := cfg.ItemPolicy()
	if err != nil {
		return nil, err
	}
	registry, err := orchestrator.DefaultRenderers(cfg.Width)
	if err != nil {
		return nil, err
	}
	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithItemPolicy(policy),
		orchestrator.WithLogger(loggerFromContext(ctx)),
	), nil
}
