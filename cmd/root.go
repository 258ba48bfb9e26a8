package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logLevel string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "solitaire",
	Short: "Klondike solitaire in your terminal",
	Long: `Solitaire deals a game of Klondike patience and lets you play it with short
text commands. Cards move between the stock, the waste pile, the four
foundation piles and the seven tableau columns.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// newLogger builds the stderr logger, preferring the --log-level flag over
// the configured level.
func newLogger(configured string) (*log.Logger, error) {
	name := configured
	if logLevel != "" {
		name = logLevel
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, err
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "solitaire",
	}), nil
}
