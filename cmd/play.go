package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/game"
	"github.com/arcanaland/solitaire/internal/render"
	"github.com/arcanaland/solitaire/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Deal a new game and play it",
	Long: `Play deals a new game of Klondike and reads commands from standard input.

Commands:
  s2w      turn a card from the stock onto the waste pile
  w2f      move the waste card onto its foundation pile
  w2t #    move the waste card onto tableau column #
  t2f #    move the top card of column # onto its foundation pile
  t2t # #  move cards from one column onto another
  quit     end the game

Flags override the values in the config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := settingsFromFlags(cmd)
		if err != nil {
			return err
		}

		logger, err := newLogger(settings.LogLevel)
		if err != nil {
			return err
		}

		g, err := game.New(game.Options{Decks: settings.Decks, Seed: settings.Seed}, logger)
		if err != nil {
			return fmt.Errorf("error dealing game: %v", err)
		}

		noColor, _ := cmd.Flags().GetBool("no-color")
		stdout := int(os.Stdout.Fd())
		r := render.New(render.Options{
			Color: settings.Color && !noColor && term.IsTerminal(stdout),
			Width: render.TerminalWidth(stdout),
		})

		outcome, err := session.New(g, r, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
		if err != nil {
			return err
		}

		logger.Info("session finished", "outcome", outcome, "moves", g.Moves(), "seed", g.Seed())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
	addDealFlags(playCmd)
	playCmd.Flags().Bool("no-color", false, "Disable coloured output")
}

// addDealFlags registers the flags that shape a deal
func addDealFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("decks", "n", 0, "Number of decks to shuffle together")
	cmd.Flags().Int64P("seed", "s", 0, "Shuffle seed; 0 picks a random deal")
}

// settingsFromFlags loads the config file and applies any deal flags set
// on the command line.
func settingsFromFlags(cmd *cobra.Command) (*config.Config, error) {
	settings, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %v", err)
	}

	if cmd.Flags().Changed("decks") {
		settings.Decks, _ = cmd.Flags().GetInt("decks")
	}
	if cmd.Flags().Changed("seed") {
		settings.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if logLevel != "" {
		settings.LogLevel = logLevel
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
