package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/slayerdex/internal/config"
	"github.com/rshade/slayerdex/internal/tui"
)

// NewBrowseCmd creates the browse command. It is also what the root command
// runs when no subcommand is given.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse characters interactively",
		Long: `Opens the interactive browser: the character listing first, then a detail
screen for the selected character.

Keys: ↑/↓ or j/k move, enter opens details, / filters by name, esc goes back,
q quits. When stdout is not a terminal or --plain is set, the listing is
printed as a table instead.`,
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			annotationInteractive: "true",
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}
}

func runBrowse(cmd *cobra.Command) error {
	cfg := config.GetGlobalConfig()
	if tui.DetectOutputMode(cfg.Output.Plain) != tui.OutputModeInteractive {
		return runList(cmd, config.FormatTable)
	}

	ctx := cmd.Context()
	model, _ := tui.NewAppModel(ctx, newClient(cfg), cfg.API.ListLimit, tui.NewAssets(cfg.Theme))

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
