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

var blockCmd = &cobra.Command{
	Use:   "block <timestamp|now>",
	Short: "Find the block closest to a timestamp",
	Long: `Find the block mined closest to a unix timestamp (seconds).

Examples:
  explorer block now                          # Latest block by time
  explorer block 1744030101                   # First block at or after the time
  explorer block 1744030101 --closest before  # Last block before the time`,
	Args: cobra.ExactArgs(1),
	RunE: runBlock,
}

var countdownCmd = &cobra.Command{
	Use:   "countdown <block>",
	Short: "Estimate the time until a future block",
	Args:  cobra.ExactArgs(1),
	RunE:  runCountdown,
}

func init() {
	blockCmd.Flags().String("closest", string(api.ClosestAfter), "which side of the timestamp (before, after)")
}

func runBlock(cmd *cobra.Command, args []string) error {
	timestamp, err := parseTimestamp(args[0])
	if err != nil {
		return err
	}
	closest, _ := cmd.Flags().GetString("closest")

	client, err := newClient()
	if err != nil {
		return err
	}

	block, err := client.GetBlockNumberByTimestamp(cmd.Context(), api.BlockNumberByTimestampOptions{
		Timestamp: timestamp,
		Closest:   api.Closest(closest),
	})
	if err != nil {
		return fmt.Errorf("failed to fetch block: %w", err)
	}

	out := cmd.OutOrStdout()
	if block == "" {
		fmt.Fprintln(out, "⚠️  No block found for that timestamp")
		return nil
	}
	fmt.Fprintf(out, "🧱 Block %s\n", color.GreenString(block))
	fmt.Fprintf(out, "   🕒 %s %s\n", closest, time.Unix(timestamp, 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "   🌐 Chain: %s\n", chainLabel(client))
	return nil
}

func parseTimestamp(s string) (int64, error) {
	if strings.EqualFold(s, "now") {
		return time.Now().Unix(), nil
	}
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ts <= 0 {
		return 0, fmt.Errorf("invalid timestamp %q: expected unix seconds or 'now'", s)
	}
	return ts, nil
}

func runCountdown(cmd *cobra.Command, args []string) error {
	blockNo, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid block number %q", args[0])
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	countdown, err := client.GetBlockCountdown(cmd.Context(), api.BlockCountdownOptions{BlockNo: blockNo})
	if err != nil {
		return fmt.Errorf("failed to fetch countdown: %w", err)
	}

	out := cmd.OutOrStdout()
	if countdown == nil {
		fmt.Fprintln(out, "⚠️  No countdown available")
		return nil
	}

	fmt.Fprintf(out, "⏳ Countdown to block %s\n", color.CyanString(countdown.CountdownBlock))
	fmt.Fprintf(out, "   Current block:    %s\n", countdown.CurrentBlock)
	fmt.Fprintf(out, "   Remaining blocks: %s\n", countdown.RemainingBlock)
	if secs, err := strconv.ParseFloat(countdown.EstimateTimeInSec, 64); err == nil {
		fmt.Fprintf(out, "   Estimated time:   %s\n", time.Duration(secs*float64(time.Second)).Round(time.Second))
	} else {
		fmt.Fprintf(out, "   Estimated time:   %ss\n", countdown.EstimateTimeInSec)
	}
	return nil
}
