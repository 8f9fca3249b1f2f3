package cmd

import (
	"fmt"

	"github.com/chinmay1088/explorer/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address> [address...]",
	Short: "Check native or token balances",
	Long: `Check the native balance of one or more addresses (up to 20), or the
ERC-20 balance of a single address with --token.

Examples:
  explorer balance 0xde0B...7BAe                      # Native balance
  explorer balance 0xde0B...7BAe 0x742d...f44e        # Several addresses at once
  explorer balance 0xde0B...7BAe --token 0xdAC1...1ec7 --decimals 6`,
	Args: cobra.RangeArgs(1, 20),
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().String("token", "", "ERC-20 contract address")
	balanceCmd.Flags().Int32("decimals", api.EtherDecimals, "token decimals used to format --token balances")
	balanceCmd.Flags().String("tag", string(api.TagLatest), "block tag")
}

func runBalance(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	token, _ := cmd.Flags().GetString("token")
	decimals, _ := cmd.Flags().GetInt32("decimals")
	tag, _ := cmd.Flags().GetString("tag")
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintln(out, "💰 Balances")
	fmt.Fprintf(out, "🌐 Chain: %s\n\n", chainLabel(client))

	if token != "" {
		if len(args) != 1 {
			return fmt.Errorf("--token takes exactly one address")
		}
		raw, err := client.GetAccountTokenBalance(ctx, api.TokenBalanceOptions{
			ContractAddress: token,
			Address:         args[0],
			Tag:             api.Tag(tag),
		})
		if err != nil {
			return fmt.Errorf("failed to fetch token balance: %w", err)
		}
		return printBalance(cmd, args[0], raw, decimals, "tokens")
	}

	if len(args) == 1 {
		wei, err := client.GetBalance(ctx, api.BalanceOptions{Address: args[0], Tag: api.Tag(tag)})
		if err != nil {
			return fmt.Errorf("failed to fetch balance: %w", err)
		}
		return printBalance(cmd, args[0], wei, api.EtherDecimals, "ETH")
	}

	balances, err := client.GetBalanceMulti(ctx, api.BalanceMultiOptions{Addresses: args, Tag: api.Tag(tag)})
	if err != nil {
		return fmt.Errorf("failed to fetch balances: %w", err)
	}
	for _, b := range balances {
		if err := printBalance(cmd, b.Account, b.Balance, api.EtherDecimals, "ETH"); err != nil {
			return err
		}
	}
	return nil
}

func printBalance(cmd *cobra.Command, address, raw string, decimals int32, unit string) error {
	amount, err := api.FormatUnits(raw, decimals)
	if err != nil {
		return fmt.Errorf("failed to format balance: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔷 %s %s\n", color.GreenString(amount.String()), unit)
	fmt.Fprintf(out, "   🔢 Raw: %s\n", raw)
	fmt.Fprintf(out, "   📍 Address: %s\n\n", address)
	return nil
}

func chainLabel(client *api.Client) string {
	chain := client.Transport().ChainID()
	if chain == 0 {
		return "explorer default"
	}
	return fmt.Sprintf("%s (%d)", chain, uint64(chain))
}
