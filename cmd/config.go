package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/solitaire/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the solitaire config file",
	Long:  `Commands for creating, inspecting and changing the solitaire config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# %s\n", config.GetConfigFilePath())
		return toml.NewEncoder(out).Encode(cfg)
	},
}

// configSetCmd represents the config set command
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting (decks, seed, color, log_level)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if err := cfg.Set(key, value); err != nil {
			return err
		}

		if err := config.SaveConfig(cfg); err != nil {
			return fmt.Errorf("error saving config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
