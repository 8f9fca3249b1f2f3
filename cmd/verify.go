package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/chinmay1088/explorer/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <contract> <source-file>",
	Short: "Submit contract source code for verification",
	Long: `Submit the source of a deployed contract for verification. The explorer
answers with a GUID; poll it with 'explorer verify-status <guid>'.

Examples:
  explorer verify 0x9b2e...41c1 Token.sol --name Token --compiler v0.8.24+commit.e11b9ed9
  explorer verify 0x9b2e...41c1 input.json --format solidity-standard-json-input \
      --name contracts/Token.sol:Token --compiler v0.8.24+commit.e11b9ed9`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

var verifyStatusCmd = &cobra.Command{
	Use:   "verify-status <guid>",
	Short: "Check the status of a verification request",
	Args:  cobra.ExactArgs(1),
	RunE:  runVerifyStatus,
}

func init() {
	verifyCmd.Flags().String("name", "", "contract name")
	verifyCmd.Flags().String("compiler", "", "compiler version, e.g. v0.8.24+commit.e11b9ed9")
	verifyCmd.Flags().String("format", string(api.CodeFormatSoliditySingleFile), "code format")
	verifyCmd.Flags().Bool("optimize", false, "optimization was enabled")
	verifyCmd.Flags().Int("runs", 200, "optimizer runs")
	verifyCmd.Flags().String("args", "", "ABI-encoded constructor arguments (hex, no 0x)")
	verifyCmd.Flags().String("evm", "", "EVM version")
	verifyCmd.Flags().Int("license", 0, "license type number")
}

func runVerify(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	flags := cmd.Flags()
	name, _ := flags.GetString("name")
	compiler, _ := flags.GetString("compiler")
	format, _ := flags.GetString("format")
	optimize, _ := flags.GetBool("optimize")
	runs, _ := flags.GetInt("runs")
	ctorArgs, _ := flags.GetString("args")
	evm, _ := flags.GetString("evm")
	license, _ := flags.GetInt("license")

	opts := api.VerifySourceCodeOptions{
		ContractAddress:      args[0],
		SourceCode:           string(source),
		CodeFormat:           api.CodeFormat(format),
		ContractName:         name,
		CompilerVersion:      compiler,
		OptimizationUsed:     "0",
		ConstructorArguments: ctorArgs,
		EVMVersion:           evm,
		LicenseType:          license,
	}
	if optimize {
		opts.OptimizationUsed = "1"
		opts.Runs = runs
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	guid, err := client.VerifySourceCode(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("failed to submit verification: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📤 Verification submitted\n")
	fmt.Fprintf(out, "   🆔 GUID: %s\n", color.CyanString(guid))
	fmt.Fprintf(out, "💡 Check progress with: explorer verify-status %s\n", guid)
	return nil
}

func runVerifyStatus(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	status, err := client.CheckVerifyStatus(cmd.Context(), api.CheckVerifyStatusOptions{GUID: args[0]})
	out := cmd.OutOrStdout()
	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		// pending and failed verifications both come back with status "0"
		fmt.Fprintf(out, "⏳ %s\n", color.YellowString(respErr.Envelope))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check verification: %w", err)
	}

	fmt.Fprintf(out, "✅ %s\n", color.GreenString(status))
	return nil
}
