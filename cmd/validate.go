package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/config"
	"github.com/arcanaland/solitaire/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file and the deal it produces",
	Long: `Validate checks a solitaire config file for unknown keys and out-of-range
settings, then deals a game from it and checks the opening position.
Without a path the user's config file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigFilePath()
		if len(args) == 1 {
			configPath = args[0]
		}

		// Check if path exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", configPath)
		}

		v := validator.NewValidator(configPath)
		if _, err := v.Validate(); err != nil {
			return fmt.Errorf("validation error: %v", err)
		}
		results, err := v.ValidateGame()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Config '%s' is valid.\n", configPath)
		} else {
			fmt.Fprintf(out, "❌ Config '%s' has %d validation errors:\n", configPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
