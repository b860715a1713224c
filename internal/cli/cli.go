// Package cli implements the resume command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-resume/internal/config"
	"github.com/goliatone/go-resume/pkg/workflow"
)

const appName = "resume"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Option customises a CLI.
type Option func(*CLI)

// WithPromptDriver replaces the survey prompts used by the new command.
func WithPromptDriver(driver workflow.PromptDriver) Option {
	return func(c *CLI) {
		c.driver = driver
	}
}

// WithCatalog sets the catalog new resumes are created in.
func WithCatalog(catalog *workflow.Catalog) Option {
	return func(c *CLI) {
		c.catalog = catalog
	}
}

// WithStdin sets the reader used when a command reads "-".
func WithStdin(r io.Reader) Option {
	return func(c *CLI) {
		c.stdin = r
	}
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	config  config.Config
	driver  workflow.PromptDriver
	catalog *workflow.Catalog
	stdin   io.Reader
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level, opts ...Option) *CLI {
	c := &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
		stdin:  os.Stdin,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.catalog == nil {
		c.catalog = workflow.NewCatalog()
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent pre-run loads the config file and attaches the logger to the
// command context.
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          appName,
		Short:        "Render resume documents with interchangeable templates",
		Long:         `resume composes a structured resume document into a render tree with a single-column or multi-column template and encodes it as HTML, Markdown, terminal text or JSON.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			c.Logger.Debug("config loaded", "template", cfg.Template, "format", cfg.Format, "theme", cfg.Theme)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(appName + " {{.Version}}\ncommit: " + commit + "\nbuilt: " + date + "\n")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.FileName+")")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.slugCommand())
	root.AddCommand(c.newCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.templatesCommand())

	return root
}
