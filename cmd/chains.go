package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chinmay1088/explorer/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List known chains or set the default chain",
	Long: `List the chains known by name and show the one in use.

Any other chain id can still be passed with --chain <id>.

Examples:
  explorer chains              # List chains
  explorer chains use base     # Make Base the default in the config file`,
	Args: cobra.NoArgs,
	RunE: runChains,
}

var chainsUseCmd = &cobra.Command{
	Use:   "use <chain>",
	Short: "Save the default chain to the config file",
	Args:  cobra.ExactArgs(1),
	RunE:  runChainsUse,
}

func init() {
	chainsCmd.AddCommand(chainsUseCmd)
}

func runChains(cmd *cobra.Command, _ []string) error {
	current, err := api.ParseChain(viper.GetString("chain"))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if current == 0 {
		fmt.Fprintf(out, "🌐 Current chain: %s\n\n", color.YellowString("explorer default"))
	} else {
		fmt.Fprintf(out, "🌐 Current chain: %s\n\n", color.GreenString("%s (%d)", current, uint64(current)))
	}

	for _, chain := range api.KnownChains() {
		marker := "  "
		if chain == current {
			marker = color.GreenString("➜ ")
		}
		fmt.Fprintf(out, "%s%-12d %s\n", marker, uint64(chain), chain)
	}
	return nil
}

func runChainsUse(cmd *cobra.Command, args []string) error {
	chain, err := api.ParseChain(args[0])
	if err != nil {
		return err
	}
	if chain == 0 {
		return fmt.Errorf("invalid chain: %q", args[0])
	}

	path, err := configPath()
	if err != nil {
		return err
	}

	// only the file's own settings are rewritten, never flag or env values
	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("yaml")
	if err := file.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config: %w", err)
	}
	file.Set("chain", chain.String())

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "🌐 Switched to %s (%d)\n", color.GreenString(chain.String()), uint64(chain))
	fmt.Fprintf(cmd.OutOrStdout(), "📍 Saved to %s\n", path)
	return nil
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".explorer.yaml"), nil
}
