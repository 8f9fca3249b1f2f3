package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Query Etherscan-compatible block explorers from the command line",
	Long: `Explorer is a command-line client for Etherscan-compatible block explorer APIs.
It talks to the Etherscan V2 multichain endpoint by default and works with any
explorer exposing the same module/action interface (Routescan, OKLink, Blockscout...).

Configuration (flags override environment, environment overrides the config file):
  --api-key   EXPLORER_API_KEY    API key (prompted for when missing)
  --chain     EXPLORER_CHAIN      chain name or id, e.g. sepolia or 8453
  --url       EXPLORER_URL        explorer API endpoint
  --config                        config file (default ~/.explorer.yaml)
A .env file in the working directory is loaded first.

Examples:
  explorer balance 0xde0B...7BAe              # Native balance
  explorer txs 0xde0B...7BAe --page 2         # Transaction history
  explorer block 1744030101 --closest before  # Block at a timestamp
  explorer rpc block-number --chain base      # Latest block on Base
  explorer export 0xde0B...7BAe --pages 5     # Export history to CSV`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.explorer.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "explorer API key")
	rootCmd.PersistentFlags().String("chain", "", "chain name or id (see 'explorer chains')")
	rootCmd.PersistentFlags().String("url", "", "explorer API endpoint")
	rootCmd.PersistentFlags().Duration("timeout", defaultTimeout, "HTTP timeout per request")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (debug logging)")
	bindFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(verifyStatusCmd)
	rootCmd.AddCommand(rpcCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(chainsCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Explorer CLI v%s\n", version)
	},
}
