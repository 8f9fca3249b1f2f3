package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chinmay1088/explorer/api"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs [address]",
	Short: "Fetch event logs as JSON",
	Long: `Fetch event logs emitted by an address and/or matching topics.

Topic operators are given as pairs, e.g. --opr 0_1=and --opr 0_2=or.

Examples:
  explorer logs 0xbd36...aa0f --from 15073139 --to 15074139
  explorer logs --topic0 0xddf2...b3ef --topic1 0x0000...ccb1 --opr 0_1=and`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().Uint64("from", 0, "first block")
	logsCmd.Flags().Uint64("to", 0, "last block")
	for i := 0; i < 4; i++ {
		logsCmd.Flags().String(fmt.Sprintf("topic%d", i), "", fmt.Sprintf("topic %d filter", i))
	}
	logsCmd.Flags().StringSlice("opr", nil, "topic operators, e.g. 0_1=and")
	logsCmd.Flags().Int("page", 0, "page number")
	logsCmd.Flags().Int("offset", 0, "logs per page")
}

func runLogs(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	opts := api.LogsOptions{}
	opts.FromBlock, _ = flags.GetUint64("from")
	opts.ToBlock, _ = flags.GetUint64("to")
	opts.Topic0, _ = flags.GetString("topic0")
	opts.Topic1, _ = flags.GetString("topic1")
	opts.Topic2, _ = flags.GetString("topic2")
	opts.Topic3, _ = flags.GetString("topic3")
	opts.Page, _ = flags.GetInt("page")
	opts.Offset, _ = flags.GetInt("offset")
	if len(args) == 1 {
		opts.Address = args[0]
	}

	oprs, _ := flags.GetStringSlice("opr")
	if err := applyTopicOperators(&opts, oprs); err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	logs, err := client.GetLogs(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to fetch logs: %w", err)
	}

	return printJSON(cmd, logs)
}

func applyTopicOperators(opts *api.LogsOptions, pairs []string) error {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("invalid topic operator %q: expected <a>_<b>=and|or", pair)
		}
		op := api.TopicOperation(strings.ToLower(value))
		switch key {
		case "0_1":
			opts.Topic01Opr = op
		case "0_2":
			opts.Topic02Opr = op
		case "0_3":
			opts.Topic03Opr = op
		case "1_2":
			opts.Topic12Opr = op
		case "1_3":
			opts.Topic13Opr = op
		case "2_3":
			opts.Topic23Opr = op
		default:
			return fmt.Errorf("unknown topic pair %q", key)
		}
	}
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
