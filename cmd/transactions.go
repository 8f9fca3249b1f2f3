package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chinmay1088/explorer/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	pageFlag  int
	limitFlag int
)

var transactionsCmd = &cobra.Command{
	Use:     "txs <address>",
	Aliases: []string{"transactions"},
	Short:   "Show transaction history with pagination",
	Long: `Show the transaction history of an address, one page at a time.

By default normal transactions are listed; --internal lists internal
transactions and --token lists ERC-20 transfers of one token contract.

Examples:
  explorer txs 0xde0B...7BAe                       # Latest 10 transactions
  explorer txs 0xde0B...7BAe --page 2 --limit 25   # Second page of 25
  explorer txs 0xde0B...7BAe --internal            # Internal transactions
  explorer txs 0xde0B...7BAe --token 0xdAC1...1ec7 # USDT transfers`,
	Args: cobra.ExactArgs(1),
	RunE: runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVarP(&pageFlag, "page", "p", 1, "page number")
	transactionsCmd.Flags().IntVarP(&limitFlag, "limit", "l", 10, "transactions per page (1-10000)")
	transactionsCmd.Flags().Bool("internal", false, "list internal transactions")
	transactionsCmd.Flags().String("token", "", "list ERC-20 transfers of this token contract")
	transactionsCmd.Flags().String("sort", string(api.SortDesc), "sort order (asc, desc)")
	transactionsCmd.Flags().Uint64("start-block", 0, "first block to include")
	transactionsCmd.Flags().Uint64("end-block", 0, "last block to include")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	if pageFlag < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if limitFlag < 1 || limitFlag > 10000 {
		return fmt.Errorf("limit must be between 1 and 10000")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	internal, _ := cmd.Flags().GetBool("internal")
	token, _ := cmd.Flags().GetString("token")
	sort, _ := cmd.Flags().GetString("sort")
	startBlock, _ := cmd.Flags().GetUint64("start-block")
	endBlock, _ := cmd.Flags().GetUint64("end-block")

	address := args[0]
	blocks := api.BlockOptions{StartBlock: startBlock, EndBlock: endBlock, Sort: api.Sort(sort)}
	paging := api.PaginationOptions{Page: pageFlag, Offset: limitFlag}
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintln(out, "🔄 Loading transactions...")
	startTime := time.Now()

	var rows []txRow
	switch {
	case token != "":
		events, err := client.GetErc20TokenTransferEventsList(ctx, api.Erc20TokenTransferEventsListOptions{
			Address:           address,
			ContractAddress:   token,
			BlockOptions:      blocks,
			PaginationOptions: paging,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch token transfers: %w", err)
		}
		for _, e := range events {
			decimals, _ := strconv.ParseInt(e.TokenDecimal, 10, 32)
			rows = append(rows, txRow{e.Hash, e.BlockNumber, e.TimeStamp, e.From, e.To, e.Value, int32(decimals), e.TokenSymbol, false})
		}
	case internal:
		txs, err := client.GetInternalTxListByAddress(ctx, api.InternalTxListOptions{
			Address:           address,
			BlockOptions:      blocks,
			PaginationOptions: paging,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch internal transactions: %w", err)
		}
		for _, tx := range txs {
			rows = append(rows, txRow{tx.Hash, tx.BlockNumber, tx.TimeStamp, tx.From, tx.To, tx.Value, api.EtherDecimals, "ETH", tx.IsError == "1"})
		}
	default:
		txs, err := client.GetNormalTxListByAddress(ctx, api.NormalTxListOptions{
			Address:           address,
			BlockOptions:      blocks,
			PaginationOptions: paging,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch transactions: %w", err)
		}
		for _, tx := range txs {
			rows = append(rows, txRow{tx.Hash, tx.BlockNumber, tx.TimeStamp, tx.From, tx.To, tx.Value, api.EtherDecimals, "ETH", tx.IsError == "1"})
		}
	}

	fmt.Fprintf(out, "📜 Transaction history (page %d, %d per page):\n\n", pageFlag, limitFlag)
	if len(rows) == 0 {
		fmt.Fprintln(out, "   No transactions found")
	}
	for _, row := range rows {
		row.print(cmd, address)
	}

	fmt.Fprintf(out, "\n⏱️ Loaded in %v\n", time.Since(startTime).Round(time.Millisecond*10))
	return nil
}

type txRow struct {
	hash      string
	block     string
	timestamp string
	from      string
	to        string
	value     string
	decimals  int32
	unit      string
	failed    bool
}

func (r txRow) print(cmd *cobra.Command, address string) {
	out := cmd.OutOrStdout()

	direction := color.RedString("OUT")
	if strings.EqualFold(r.to, address) {
		direction = color.GreenString("IN ")
	}

	amount := r.value
	if d, err := api.FormatUnits(r.value, r.decimals); err == nil {
		amount = d.String()
	}

	fmt.Fprintf(out, "%s %s %s %s\n", direction, amount, r.unit, r.hash)
	fmt.Fprintf(out, "    %s → %s\n", r.from, r.to)
	fmt.Fprintf(out, "    block %s at %s", r.block, formatUnixTime(r.timestamp))
	if r.failed {
		fmt.Fprintf(out, " %s", color.RedString("(failed)"))
	}
	fmt.Fprintln(out)
}

func formatUnixTime(s string) string {
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	return time.Unix(sec, 0).UTC().Format("2006-01-02 15:04:05 UTC")
}
