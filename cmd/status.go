package cmd

import (
	"fmt"

	"github.com/chinmay1088/explorer/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status <txhash>",
	Short: "Show execution and receipt status of a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	opts := api.TxHashOptions{TxHash: args[0]}

	execution, err := client.GetContractExecutionStatus(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch execution status: %w", err)
	}
	receipt, err := client.GetTxReceiptStatus(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to fetch receipt status: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔎 Transaction %s\n", args[0])

	switch {
	case execution == nil:
		fmt.Fprintln(out, "   Execution: unknown")
	case execution.IsError == "0":
		fmt.Fprintf(out, "   Execution: %s\n", color.GreenString("ok"))
	default:
		fmt.Fprintf(out, "   Execution: %s %s\n", color.RedString("error"), execution.ErrDescription)
	}

	switch {
	case receipt == nil || receipt.Status == "":
		fmt.Fprintln(out, "   Receipt:   n/a (pre-Byzantium)")
	case receipt.Status == string(api.StatusSuccess):
		fmt.Fprintf(out, "   Receipt:   %s\n", color.GreenString("success"))
	default:
		fmt.Fprintf(out, "   Receipt:   %s\n", color.RedString("failed"))
	}
	return nil
}
