package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chinmay1088/explorer/api"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <address>",
	Short: "Export transaction history to CSV or JSON",
	Long: `Export the transaction history of an address.

Pages are fetched one after another until a short page is returned or
--pages is reached.

File formats:
  --csv        Export to CSV format (default)
  --json       Export to JSON format

Examples:
  explorer export 0xde0B...7BAe                       # First 5 pages to CSV
  explorer export 0xde0B...7BAe --pages 20 --json     # Up to 20 pages to JSON
  explorer export 0xde0B...7BAe --out ./history.csv   # Custom output file`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().Bool("csv", false, "Export to CSV format")
	exportCmd.Flags().Bool("json", false, "Export to JSON format")
	exportCmd.Flags().Int("pages", 5, "maximum number of pages to fetch")
	exportCmd.Flags().Int("offset", 100, "transactions per page")
	exportCmd.Flags().String("sort", string(api.SortAsc), "sort order (asc, desc)")
	exportCmd.Flags().String("out", "", "output file without extension (default ./<address>_<time>)")
}

// ExportData is the document written by the export command.
type ExportData struct {
	ExportDate   string            `json:"export_date"`
	Chain        string            `json:"chain"`
	Address      string            `json:"address"`
	Transactions []TransactionData `json:"transactions"`
}

type TransactionData struct {
	Hash        string `json:"hash"`
	BlockNumber string `json:"block_number"`
	Timestamp   string `json:"timestamp"`
	From        string `json:"from"`
	To          string `json:"to"`
	Amount      string `json:"amount"`
	Fee         string `json:"fee"`
	Direction   string `json:"direction"`
	Failed      bool   `json:"failed"`
}

func runExport(cmd *cobra.Command, args []string) error {
	pages, _ := cmd.Flags().GetInt("pages")
	offset, _ := cmd.Flags().GetInt("offset")
	sort, _ := cmd.Flags().GetString("sort")
	outBase, _ := cmd.Flags().GetString("out")
	if pages < 1 || offset < 1 {
		return fmt.Errorf("pages and offset must be positive")
	}
	asCSV, _ := cmd.Flags().GetBool("csv")
	asJSON, _ := cmd.Flags().GetBool("json")
	if !asCSV && !asJSON {
		asCSV = true
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	address := args[0]
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 Chain: %s\n", chainLabel(client))
	fmt.Fprintf(out, "📊 Exporting transactions of %s...\n", address)

	bar := progressbar.NewOptions(pages,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Fetching pages..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	txs, err := fetchHistory(cmd, client, address, pages, offset, api.Sort(sort), bar)
	if err != nil {
		return err
	}

	exportData := &ExportData{
		ExportDate:   time.Now().UTC().Format(time.RFC3339),
		Chain:        chainLabel(client),
		Address:      address,
		Transactions: make([]TransactionData, 0, len(txs)),
	}
	for _, tx := range txs {
		exportData.Transactions = append(exportData.Transactions, toTransactionData(tx, address))
	}

	bar.Describe("[cyan][2/2][reset] Writing export files...")
	if outBase == "" {
		outBase = fmt.Sprintf("%s_%s", strings.ToLower(address), time.Now().Format("20060102_150405"))
	}
	files, err := writeExportFiles(exportData, outBase, asCSV, asJSON)
	if err != nil {
		return fmt.Errorf("failed to write export files: %w", err)
	}
	_ = bar.Finish()
	fmt.Fprintln(cmd.ErrOrStderr())

	fmt.Fprintln(out, "📁 Export completed successfully!")
	for _, f := range files {
		fmt.Fprintf(out, "📍 %s\n", f)
	}
	fmt.Fprintf(out, "   Transactions: %d\n", len(exportData.Transactions))
	return nil
}

// fetchHistory walks txlist pages sequentially, stopping at the first short page.
func fetchHistory(cmd *cobra.Command, client *api.Client, address string, pages, offset int, sort api.Sort, bar *progressbar.ProgressBar) ([]api.Transaction, error) {
	var all []api.Transaction
	for page := 1; page <= pages; page++ {
		txs, err := client.GetNormalTxListByAddress(cmd.Context(), api.NormalTxListOptions{
			Address:           address,
			BlockOptions:      api.BlockOptions{Sort: sort},
			PaginationOptions: api.PaginationOptions{Page: page, Offset: offset},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		all = append(all, txs...)
		_ = bar.Add(1)

		logger.Debug().Int("page", page).Int("count", len(txs)).Msg("fetched history page")
		if len(txs) < offset {
			break
		}
	}
	return all, nil
}

func toTransactionData(tx api.Transaction, address string) TransactionData {
	direction := "out"
	if strings.EqualFold(tx.To, address) {
		direction = "in"
	}

	amount := tx.Value
	if v, err := api.WeiToEther(tx.Value); err == nil {
		amount = v.String()
	}

	fee := ""
	gasUsed, errUsed := decimal.NewFromString(tx.GasUsed)
	gasPrice, errPrice := decimal.NewFromString(tx.GasPrice)
	if errUsed == nil && errPrice == nil {
		fee = gasUsed.Mul(gasPrice).Shift(-api.EtherDecimals).String()
	}

	return TransactionData{
		Hash:        tx.Hash,
		BlockNumber: tx.BlockNumber,
		Timestamp:   formatUnixTime(tx.TimeStamp),
		From:        tx.From,
		To:          tx.To,
		Amount:      amount,
		Fee:         fee,
		Direction:   direction,
		Failed:      tx.IsError == "1",
	}
}

func writeExportFiles(exportData *ExportData, base string, asCSV, asJSON bool) ([]string, error) {
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	var files []string
	if asCSV {
		name := base + ".csv"
		if err := writeFile(name, func(w io.Writer) error { return writeCSV(w, exportData) }); err != nil {
			return nil, fmt.Errorf("failed to write CSV export: %w", err)
		}
		files = append(files, name)
	}
	if asJSON {
		name := base + ".json"
		if err := writeFile(name, func(w io.Writer) error { return writeJSON(w, exportData) }); err != nil {
			return nil, fmt.Errorf("failed to write JSON export: %w", err)
		}
		files = append(files, name)
	}
	return files, nil
}

func writeFile(name string, write func(io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeCSV(w io.Writer, exportData *ExportData) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Hash", "Block", "Time", "Direction", "From", "To", "Amount", "Fee", "Failed"}); err != nil {
		return err
	}
	for _, tx := range exportData.Transactions {
		if err := writer.Write([]string{
			tx.Hash,
			tx.BlockNumber,
			tx.Timestamp,
			tx.Direction,
			tx.From,
			tx.To,
			tx.Amount,
			tx.Fee,
			fmt.Sprintf("%t", tx.Failed),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeJSON(w io.Writer, exportData *ExportData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(exportData)
}
