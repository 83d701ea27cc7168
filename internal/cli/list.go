package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/config"
	"github.com/rshade/slayerdex/internal/loader"
	"github.com/rshade/slayerdex/internal/tui"
)

// NewListCmd creates the list command, which prints the listing without the
// interactive browser.
func NewListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the character listing",
		Long: `Fetches the character listing once and prints it.

A failed request prints an empty listing; the command still exits 0.`,
		Example: `  # Table output
  slayerdex list

  # JSON output with at most 10 characters
  slayerdex list --output json --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")
	return cmd
}

func runList(cmd *cobra.Command, output string) error {
	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	ctx := cmd.Context()
	state := loader.NewListing(newClient(cfg), cfg.API.ListLimit).Load(ctx)

	logger.Debug().Ctx(ctx).
		Str("status", state.Status.String()).
		Int("count", len(state.Items)).
		Msg("listing loaded")

	return renderListing(cmd, format, cfg, state.Items)
}

func renderListing(cmd *cobra.Command, format string, cfg *config.Config, items []character.Summary) error {
	out := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return writeJSON(out, items)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(out, tui.EmptyListingMessage)
		return err
	}

	width := 0
	if tui.DetectOutputMode(cfg.Output.Plain) != tui.OutputModePlain {
		width = tui.TerminalWidth()
	}
	_, err := fmt.Fprint(out, tui.RenderSummaryTable(items, width))
	return err
}
