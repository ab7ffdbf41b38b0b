package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alfawave-io/alfacrm/internal/constants"
)

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the stored CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString("api_key")
			if apiKey != "" {
				apiKey = constants.MaskedSecret
			}

			fmt.Printf("hostname: %s\n", viper.GetString("hostname"))
			fmt.Printf("email:    %s\n", viper.GetString("email"))
			fmt.Printf("api_key:  %s\n", apiKey)
			fmt.Printf("branch:   %d\n", viper.GetInt("branch"))
			fmt.Printf("output:   %s\n", viper.GetString("output"))

			if used := viper.ConfigFileUsed(); used != "" {
				fmt.Printf("file:     %s\n", used)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set(args[0], args[1])

			return saveConfig()
		},
	}
}

// saveConfig writes the current viper state to the config file, creating
// ~/.alfacrm/config.yml when none is in use yet.
func saveConfig() error {
	if viper.ConfigFileUsed() != "" {
		err := viper.WriteConfig()
		if err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".alfacrm")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")

	err = viper.WriteConfigAs(configPath)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return os.Chmod(configPath, constants.ConfigFilePerm)
}
