package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume/pkg/orchestrator"
	"github.com/goliatone/go-resume/pkg/themes"
)

func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List preset themes and their variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			presets := themes.Default()

			printTitle(out, "Themes")
			for _, name := range presets.Names() {
				detail := ""
				if variants := presets.Variants(name); len(variants) > 0 {
					detail = "(" + strings.Join(variants, ", ") + ")"
				}
				if name == themes.DefaultTheme {
					detail = strings.TrimSpace(detail + " default")
				}
				printEntry(out, name, detail)
			}
			return nil
		},
	}
}

func (c *CLI) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List templates and output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			printTitle(out, "Templates")
			for _, name := range orchestrator.DefaultTemplates().List() {
				printEntry(out, name, "")
			}

			registry, err := orchestrator.DefaultRenderers(c.config.Width)
			if err != nil {
				return err
			}
			printTitle(out, "Formats")
			for _, name := range registry.List() {
				encoder, err := registry.Get(name)
				if err != nil {
					return err
				}
				printEntry(out, name, encoder.ContentType())
			}
			return nil
		},
	}
}
