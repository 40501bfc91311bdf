package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hildr/notion-cli/config"
	"github.com/hildr/notion-cli/notion"
)

var (
	cfgFile     string
	apiKeyFlag  string
	timeoutSecs int
	debug       bool

	logger zerolog.Logger
	client *notion.Client
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "notion",
	Short: "A command-line client for the Notion API",
	Long: `notion-cli talks to the hosted Notion API from the terminal:
search pages and databases, read and create content, append blocks
of various kinds, update and archive pages, and query databases.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = setupLogger(debug)
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}
	},
}

// SetVersion sets the version information shown by --version.
func SetVersion(version, buildTime string) {
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("✗"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/notion-cli/config.toml)")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Notion API key (overrides env and config file)")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", config.DefaultTimeoutSeconds, "request timeout in seconds")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// setupLogger configures the zerolog logger
func setupLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.Path()
}

// initializeClient is the PreRunE shared by every command that talks to the
// API. Commands that only touch local config (init, config) skip it, so a
// missing credential never blocks onboarding.
func initializeClient(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	resolved, err := config.Resolve(apiKeyFlag, timeoutSecs, rootCmd.PersistentFlags().Changed("timeout"), path)
	if err != nil {
		return err
	}

	client, err = notion.NewClient(resolved.APIKey, logger,
		notion.WithTimeout(resolved.Timeout),
		notion.WithAPIVersion(resolved.APIVersion),
	)
	if err != nil {
		return fmt.Errorf("failed to create Notion client: %w", err)
	}

	return nil
}
