package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume/pkg/slug"
)

func (c *CLI) slugCommand() *cobra.Command {
	var (
		suggest bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "slug <title...>",
		Short: "Print the slug for a resume title",
		Long:  `Slug prints the URL-safe identifier derived from a title. With --suggest it lists matching job titles from the built-in picklist together with their slugs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			out := cmd.OutOrStdout()

			if suggest {
				for _, s := range slug.Suggestions(title, limit) {
					fmt.Fprintf(out, "%s\t%s\n", s.Title, s.Slug)
				}
				return nil
			}

			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("slug: title is required")
			}
			value, _ := slug.NewLatch().TitleChanged(title)
			fmt.Fprintln(out, value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&suggest, "suggest", false, "list picklist titles matching the query")
	cmd.Flags().IntVar(&limit, "limit", slug.DefaultSuggestionLimit, "maximum number of suggestions")

	return cmd
}
