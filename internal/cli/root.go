package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/slayerdex/internal/api"
	"github.com/rshade/slayerdex/internal/config"
	"github.com/rshade/slayerdex/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// annotationInteractive marks commands that may take over the terminal, so
// their logs go to a file.
const annotationInteractive = "slayerdex/interactive"

// annotationTolerateConfigErrors marks commands that must run even when the
// config file is broken.
const annotationTolerateConfigErrors = "slayerdex/tolerate-config-errors"

// NewRootCmd creates the root Cobra command for the slayerdex CLI.
// Without a subcommand it opens the interactive browser.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for
// testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "slayerdex",
		Short:   "Browse Demon Slayer characters from the terminal",
		Long:    "slayerdex lists Demon Slayer characters from the public character API and shows their details.",
		Version: ver,
		Example: rootCmdExample,
		Annotations: map[string]string{
			annotationInteractive: "true",
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd, lookupEnv)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("plain", false, "plain text output without colors or the interactive browser")
	cmd.PersistentFlags().String("api-url", "", "character API base URL (overrides config file and env var)")
	cmd.PersistentFlags().Int("limit", 0, "maximum number of characters to list (0 = use config default)")
	cmd.PersistentFlags().Duration("timeout", 0, "HTTP timeout (0 = use config default)")

	cmd.AddCommand(NewBrowseCmd(), NewListCmd(), NewShowCmd(), NewMockAPICmd(), newConfigCmd())
	return cmd
}

const rootCmdExample = `  # Browse characters interactively
  slayerdex

  # Print the character table
  slayerdex list --plain

  # Print characters as JSON
  slayerdex list --output json

  # Show several characters at once
  slayerdex show 1 2 3

  # Run against the offline mock API
  slayerdex mock-api --addr :8089 &
  slayerdex --api-url http://localhost:8089/api/v1`

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		Annotations: map[string]string{
			annotationTolerateConfigErrors: "true",
		},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigPathCmd())
	return cmd
}

// loadConfig initializes the global config and applies flag overrides on a
// copy, which then becomes the global config.
func loadConfig(cmd *cobra.Command) error {
	if err := config.InitGlobalConfig(); err != nil {
		if !hasAnnotation(cmd, annotationTolerateConfigErrors) {
			return fmt.Errorf("loading configuration: %w", err)
		}
		cmd.PrintErrf("Warning: ignoring invalid configuration: %v\n", err)
	}

	cfg := *config.GetGlobalConfig()
	flags := cmd.Flags()

	if flags.Changed("api-url") {
		cfg.API.BaseURL, _ = flags.GetString("api-url")
	}
	if flags.Changed("limit") {
		limit, _ := flags.GetInt("limit")
		if limit > 0 {
			cfg.API.ListLimit = limit
		}
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		if timeout > 0 {
			cfg.API.Timeout = timeout
		}
	}
	if flags.Changed("plain") {
		cfg.Output.Plain, _ = flags.GetBool("plain")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	config.SetGlobalConfig(&cfg)
	return nil
}

// hasAnnotation reports whether cmd or one of its parents carries key.
func hasAnnotation(cmd *cobra.Command, key string) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[key] == "true" {
			return true
		}
	}
	return false
}

// newClient builds the API client from the effective configuration.
func newClient(cfg *config.Config) *api.Client {
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = api.DefaultTimeout
	}
	return api.NewClient(cfg.API.BaseURL, api.WithTimeout(timeout))
}
