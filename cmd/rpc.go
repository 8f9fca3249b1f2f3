package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chinmay1088/explorer/api"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rpcCmd = &cobra.Command{
	Use:   "rpc",
	Short: "Call eth_* methods through the explorer proxy",
	Long: `Call JSON-RPC methods through the explorer's proxy module.

Block arguments accept a decimal number, a 0x-prefixed hex number or one of
the tags earliest, pending and latest.

Examples:
  explorer rpc block-number
  explorer rpc block 19000000 --full
  explorer rpc tx 0x1e2910...b1d4
  explorer rpc call 0xdAC1...1ec7 0x18160ddd`,
}

func init() {
	blockSub := &cobra.Command{
		Use:   "block <block>",
		Short: "eth_getBlockByNumber",
		Args:  cobra.ExactArgs(1),
		RunE:  runRPCBlock,
	}
	blockSub.Flags().Bool("full", false, "include full transaction objects")

	callSub := &cobra.Command{
		Use:   "call <to> <data> [block]",
		Short: "eth_call",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runRPCCall,
	}

	estimateSub := &cobra.Command{
		Use:   "estimate-gas <to> <data>",
		Short: "eth_estimateGas",
		Args:  cobra.ExactArgs(2),
		RunE:  runRPCEstimateGas,
	}
	estimateSub.Flags().String("value", "", "value in wei (hex)")
	estimateSub.Flags().String("gas-price", "", "gas price in wei (hex)")
	estimateSub.Flags().String("gas", "", "gas limit (hex)")

	rpcCmd.AddCommand(
		&cobra.Command{
			Use:   "block-number",
			Short: "eth_blockNumber",
			Args:  cobra.NoArgs,
			RunE:  runRPCBlockNumber,
		},
		&cobra.Command{
			Use:   "gas-price",
			Short: "eth_gasPrice",
			Args:  cobra.NoArgs,
			RunE:  runRPCGasPrice,
		},
		blockSub,
		&cobra.Command{
			Use:   "uncle <block> <index>",
			Short: "eth_getUncleByBlockNumberAndIndex",
			Args:  cobra.ExactArgs(2),
			RunE:  runRPCUncle,
		},
		&cobra.Command{
			Use:   "tx-count <block>",
			Short: "eth_getBlockTransactionCountByNumber",
			Args:  cobra.ExactArgs(1),
			RunE:  runRPCBlockTxCount,
		},
		&cobra.Command{
			Use:   "tx <txhash>",
			Short: "eth_getTransactionByHash",
			Args:  cobra.ExactArgs(1),
			RunE:  runRPCTx,
		},
		&cobra.Command{
			Use:   "tx-by-index <block> <index>",
			Short: "eth_getTransactionByBlockNumberAndIndex",
			Args:  cobra.ExactArgs(2),
			RunE:  runRPCTxByIndex,
		},
		&cobra.Command{
			Use:   "nonce <address> [block]",
			Short: "eth_getTransactionCount",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  runRPCNonce,
		},
		&cobra.Command{
			Use:   "send <signed-tx-hex>",
			Short: "eth_sendRawTransaction",
			Args:  cobra.ExactArgs(1),
			RunE:  runRPCSend,
		},
		&cobra.Command{
			Use:   "receipt <txhash>",
			Short: "eth_getTransactionReceipt",
			Args:  cobra.ExactArgs(1),
			RunE:  runRPCReceipt,
		},
		callSub,
		&cobra.Command{
			Use:   "code <address> [block]",
			Short: "eth_getCode",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  runRPCCode,
		},
		&cobra.Command{
			Use:   "storage <address> <position> [block]",
			Short: "eth_getStorageAt",
			Args:  cobra.RangeArgs(2, 3),
			RunE:  runRPCStorage,
		},
		estimateSub,
	)
}

// blockTag turns a decimal block number into the hex form the proxy expects and passes
// hex numbers and symbolic tags through.
func blockTag(s string) (api.Tag, error) {
	switch lower := strings.ToLower(s); {
	case lower == string(api.TagEarliest), lower == string(api.TagPending), lower == string(api.TagLatest):
		return api.Tag(lower), nil
	case strings.HasPrefix(lower, "0x"):
		if _, err := api.HexToBig(lower); err != nil {
			return "", err
		}
		return api.Tag(lower), nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid block %q: expected a number, hex or tag", s)
	}
	return api.Tag(hexutil.EncodeUint64(n)), nil
}

func optionalBlockTag(args []string, i int) (api.Tag, error) {
	if len(args) <= i {
		return api.TagLatest, nil
	}
	return blockTag(args[i])
}

// indexArg accepts a decimal or hex index and returns it in hex.
func indexArg(s string) (string, error) {
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		return s, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid index %q", s)
	}
	return hexutil.EncodeUint64(n), nil
}

// printQuantity prints a hex quantity next to its decimal value.
func printQuantity(cmd *cobra.Command, label, hex string) error {
	n, err := api.HexToBig(hex)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", label, color.GreenString(n.String()), hex)
	return nil
}

func printNullable[T any](cmd *cobra.Command, what string, v *T) error {
	if v == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "⚠️  %s not found\n", what)
		return nil
	}
	return printJSON(cmd, v)
}

func runRPCBlockNumber(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	hex, err := client.EthBlockNumber(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch block number: %w", err)
	}
	return printQuantity(cmd, "🧱 Block number", hex)
}

func runRPCGasPrice(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	hex, err := client.EthGasPrice(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch gas price: %w", err)
	}
	if err := printQuantity(cmd, "⛽ Gas price (wei)", hex); err != nil {
		return err
	}
	if gwei, err := api.FormatUnits(hex, 9); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "   %s gwei\n", gwei.String())
	}
	return nil
}

func runRPCBlock(cmd *cobra.Command, args []string) error {
	tag, err := blockTag(args[0])
	if err != nil {
		return err
	}
	full, _ := cmd.Flags().GetBool("full")

	client, err := newClient()
	if err != nil {
		return err
	}
	block, err := client.EthGetBlockByNumber(cmd.Context(), api.EthBlockByNumberOptions{Tag: tag, Boolean: full})
	if err != nil {
		return fmt.Errorf("failed to fetch block: %w", err)
	}
	return printNullable(cmd, "block", block)
}

func runRPCUncle(cmd *cobra.Command, args []string) error {
	tag, err := blockTag(args[0])
	if err != nil {
		return err
	}
	index, err := indexArg(args[1])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	uncle, err := client.EthGetUncleByBlockNumberAndIndex(cmd.Context(), api.EthUncleByBlockNumberAndIndexOptions{Tag: tag, Index: index})
	if err != nil {
		return fmt.Errorf("failed to fetch uncle: %w", err)
	}
	return printNullable(cmd, "uncle", uncle)
}

func runRPCBlockTxCount(cmd *cobra.Command, args []string) error {
	tag, err := blockTag(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	hex, err := client.EthGetBlockTransactionCountByNumber(cmd.Context(), api.EthBlockTransactionCountByNumberOptions{Tag: tag})
	if err != nil {
		return fmt.Errorf("failed to fetch transaction count: %w", err)
	}
	return printQuantity(cmd, "📦 Transactions", hex)
}

func runRPCTx(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	tx, err := client.EthGetTransactionByHash(cmd.Context(), api.EthTransactionByHashOptions{TxHash: args[0]})
	if err != nil {
		return fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return printNullable(cmd, "transaction", tx)
}

func runRPCTxByIndex(cmd *cobra.Command, args []string) error {
	tag, err := blockTag(args[0])
	if err != nil {
		return err
	}
	index, err := indexArg(args[1])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	tx, err := client.EthGetTransactionByBlockNumberAndIndex(cmd.Context(), api.EthTransactionByBlockNumberAndIndexOptions{Tag: tag, Index: index})
	if err != nil {
		return fmt.Errorf("failed to fetch transaction: %w", err)
	}
	return printNullable(cmd, "transaction", tx)
}

func runRPCNonce(cmd *cobra.Command, args []string) error {
	tag, err := optionalBlockTag(args, 1)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	hex, err := client.EthGetTransactionCount(cmd.Context(), api.EthTransactionCountOptions{Address: args[0], Tag: tag})
	if err != nil {
		return fmt.Errorf("failed to fetch nonce: %w", err)
	}
	return printQuantity(cmd, "🔢 Nonce", hex)
}

func runRPCSend(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	hash, err := client.EthSendRawTransaction(cmd.Context(), api.EthSendRawTransactionOptions{Hex: args[0]})
	if err != nil {
		return fmt.Errorf("failed to send transaction: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Transaction sent: %s\n", color.GreenString(hash))
	return nil
}

func runRPCReceipt(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}
	receipt, err := client.EthGetTransactionReceipt(cmd.Context(), api.EthTransactionReceiptOptions{TxHash: args[0]})
	if err != nil {
		return fmt.Errorf("failed to fetch receipt: %w", err)
	}
	return printNullable(cmd, "receipt", receipt)
}

func runRPCCall(cmd *cobra.Command, args []string) error {
	tag, err := optionalBlockTag(args, 2)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	result, err := client.EthCall(cmd.Context(), api.EthCallOptions{To: args[0], Data: args[1], Tag: tag})
	if err != nil {
		return fmt.Errorf("failed to call contract: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

func runRPCCode(cmd *cobra.Command, args []string) error {
	tag, err := optionalBlockTag(args, 1)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	code, err := client.EthGetCode(cmd.Context(), api.EthCodeOptions{Address: args[0], Tag: tag})
	if err != nil {
		return fmt.Errorf("failed to fetch code: %w", err)
	}
	if code == "0x" {
		fmt.Fprintln(cmd.OutOrStdout(), "⚠️  No code at this address")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}

func runRPCStorage(cmd *cobra.Command, args []string) error {
	position, err := indexArg(args[1])
	if err != nil {
		return err
	}
	tag, err := optionalBlockTag(args, 2)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}
	word, err := client.EthGetStorageAt(cmd.Context(), api.EthStorageAtOptions{Address: args[0], Position: position, Tag: tag})
	if err != nil {
		return fmt.Errorf("failed to fetch storage: %w", err)
	}
	return printQuantity(cmd, "💾 Storage", word)
}

func runRPCEstimateGas(cmd *cobra.Command, args []string) error {
	value, _ := cmd.Flags().GetString("value")
	gasPrice, _ := cmd.Flags().GetString("gas-price")
	gas, _ := cmd.Flags().GetString("gas")

	client, err := newClient()
	if err != nil {
		return err
	}
	hex, err := client.EthEstimateGas(cmd.Context(), api.EthEstimateGasOptions{
		To:       args[0],
		Data:     args[1],
		Value:    value,
		GasPrice: gasPrice,
		Gas:      gas,
	})
	if err != nil {
		return fmt.Errorf("failed to estimate gas: %w", err)
	}
	return printQuantity(cmd, "⛽ Estimated gas", hex)
}
