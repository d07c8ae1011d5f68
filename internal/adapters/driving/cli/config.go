package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/issuefeed/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Show or change values of the config file.

Keys are dot-separated table paths, for example server.addr or
hosts.codeberg.api_host.`,
	RunE: runConfigList,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all values",
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one value",
	Long: `Set one value and save the config file.

Values that parse as booleans, integers or floats are stored as such;
everything else is stored as a string.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return fmt.Errorf("config store: %w", domain.ErrMissingService)
		}
		fmt.Fprintln(cmd.OutOrStdout(), configStore.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return fmt.Errorf("config store: %w", domain.ErrMissingService)
	}

	keys := configStore.Keys("")
	if len(keys) == 0 {
		if path := configStore.Path(); path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No values set in %s\n", path)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No values set")
		}
		return nil
	}
	for _, key := range keys {
		value, _ := configStore.Get(key)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return fmt.Errorf("config store: %w", domain.ErrMissingService)
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: key %q is not set", domain.ErrInvalidInput, args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return fmt.Errorf("config store: %w", domain.ErrMissingService)
	}

	key, value := args[0], parseConfigValue(args[1])
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
	return nil
}

// parseConfigValue types a command line value the way TOML would.
func parseConfigValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
