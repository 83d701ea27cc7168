package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/config"
	"github.com/rshade/slayerdex/internal/loader"
	"github.com/rshade/slayerdex/internal/tui"
)

// maxConcurrentDetails bounds the detail requests in flight for one show.
const maxConcurrentDetails = 4

// showResult is the JSON form of one detail lookup.
type showResult struct {
	ID        character.ID      `json:"id"`
	Found     bool              `json:"found"`
	Character *character.Detail `json:"character,omitempty"`
}

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>...",
		Short: "Print character details",
		Long: `Fetches each character by id and prints its details in argument order.

Ids that cannot be loaded print "Character not found."; the command still exits 0.`,
		Example: `  slayerdex show 1
  slayerdex show 1 2 3 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, output, args)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json (default from config)")
	return cmd
}

func runShow(cmd *cobra.Command, output string, ids []string) error {
	format, err := resolveOutputFormat(output)
	if err != nil {
		return err
	}

	cfg := config.GetGlobalConfig()
	states := loadDetails(cmd, newClient(cfg), ids)

	if format == config.FormatJSON {
		results := make([]showResult, len(ids))
		for i, state := range states {
			results[i] = showResult{ID: character.ID(ids[i]), Found: state.Status == loader.DetailFound}
			if results[i].Found {
				c := state.Character
				results[i].Character = &c
			}
		}
		return writeJSON(cmd.OutOrStdout(), results)
	}

	mode := tui.DetectOutputMode(cfg.Output.Plain)
	assets := tui.NewAssets(cfg.Theme)
	for i, state := range states {
		if i > 0 {
			if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		if err := renderDetail(cmd.OutOrStdout(), mode, assets, ids[i], state); err != nil {
			return err
		}
	}
	return nil
}

// loadDetails runs one Detail loader per id concurrently. Loaders never fail,
// so the group only bounds concurrency.
func loadDetails(cmd *cobra.Command, source loader.DetailSource, ids []string) []loader.DetailState {
	states := make([]loader.DetailState, len(ids))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(maxConcurrentDetails)
	for i, id := range ids {
		g.Go(func() error {
			states[i] = loader.NewDetail(source, character.ID(id)).Load(ctx)
			return nil
		})
	}
	_ = g.Wait()

	found := 0
	for _, s := range states {
		if s.Status == loader.DetailFound {
			found++
		}
	}
	logger.Debug().Ctx(cmd.Context()).
		Int("requested", len(ids)).
		Int("found", found).
		Msg("details loaded")
	return states
}

func renderDetail(w io.Writer, mode tui.OutputMode, assets *tui.Assets, id string, state loader.DetailState) error {
	if state.Status != loader.DetailFound {
		_, err := fmt.Fprintf(w, "%s: %s\n", id, tui.NotFoundMessage)
		return err
	}

	if mode == tui.OutputModePlain {
		_, err := fmt.Fprint(w, tui.RenderDetailPlain(state.Character))
		return err
	}

	theme := state.Character.Theme()
	width := min(tui.TerminalWidth(), 72) //nolint:mnd // Readable card width.
	card := tui.RenderDetailCard(state.Character, assets.Styles(theme), width)
	_, err := fmt.Fprintln(w, assets.Backdrop(theme).Render(width+2, 0, card)) //nolint:mnd // One motif column each side.
	return err
}
