package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/solitaire/internal/game"
	"github.com/arcanaland/solitaire/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the opening board of a deal",
	Long: `Show deals a game and prints its opening board without playing it.
Pass the same --seed to play to replay a deal you have seen.

Examples:
  solitaire show --seed 42
  solitaire show --decks 2 --seed 7`,
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

		stdout := int(os.Stdout.Fd())
		r := render.New(render.Options{
			Color: settings.Color && term.IsTerminal(stdout),
			Width: render.TerminalWidth(stdout),
		})

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, colorize.CyanString("Game: ")+g.ID().String())
		fmt.Fprintln(out, colorize.CyanString("Seed: ")+fmt.Sprint(g.Seed()))
		fmt.Fprintln(out, colorize.CyanString("Decks:")+fmt.Sprintf(" %d", g.Decks()))
		fmt.Fprint(out, r.Board(g.Snapshot()))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	addDealFlags(showCmd)
}
