package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/internal/po"
)

var poCmd = &cobra.Command{
	Use:   "po",
	Short: "Work with customer purchase orders",
}

var poParseCmd = &cobra.Command{
	Use:   "parse [po-file]",
	Short: "Extract line items from a purchase order",
	Long: `Parse a purchase order workbook (xlsx, xls or csv) and join every line with the
SKU master.

The header row and columns are detected from a list of known header names, so
customer-specific layouts work without configuration. Rows without a SKU or
with a non-positive quantity are skipped. Lines whose SKU is not in the SKU
master are still returned and listed as unmatched.`,
	Example: `  # Parse a PO and print a table
  cigen po parse order.xlsx

  # Parse a specific sheet and include the Korean product name
  cigen po parse order.xlsx --sheet "PO" --name-kr

  # JSON output without prices
  cigen po parse order.xls --no-price --json`,
	Args: cobra.ExactArgs(1),
	RunE: runPOParse,
}

func init() {
	rootCmd.AddCommand(poCmd)
	poCmd.AddCommand(poParseCmd)

	poParseCmd.Flags().String("sheet", "", "Sheet name to parse (default: detect)")
	poParseCmd.Flags().Bool("no-price", false, "Do not extract unit price, amount and currency")
	poParseCmd.Flags().Bool("no-hs-code", false, "Do not extract HS codes from the PO")
	poParseCmd.Flags().Bool("name-kr", false, "Include the Korean product name column")
	poParseCmd.Flags().Bool("json", false, "Print the result as JSON")
}

func poOptions(cmd *cobra.Command) po.Options {
	opts := po.DefaultOptions()
	opts.Sheet, _ = cmd.Flags().GetString("sheet")
	noPrice, _ := cmd.Flags().GetBool("no-price")
	noHS, _ := cmd.Flags().GetBool("no-hs-code")
	opts.IncludePrice = !noPrice
	opts.IncludeHSCode = !noHS
	opts.IncludeNameKR, _ = cmd.Flags().GetBool("name-kr")
	return opts
}

func runPOParse(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("po")

	a, err := newApp(cmd, true)
	if err != nil {
		return err
	}

	path := args[0]
	opts := poOptions(cmd)
	result := a.parser.ParseFile(path, opts)

	log.Info().
		Str("file", path).
		Str("sheet", result.Sheet).
		Int("items", len(result.Items)).
		Msg("Parsed purchase order")

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := printJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printParseResult(cmd.OutOrStdout(), result, opts)
	}

	if result.HasFatal() {
		return fmt.Errorf("failed to parse %s", path)
	}
	return nil
}

func printParseResult(out io.Writer, result po.Result, opts po.Options) {
	for _, m := range result.Messages {
		fmt.Fprintln(out, m)
	}
	if len(result.Items) == 0 {
		return
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	header := "SKU\tBARCODE\tDESCRIPTION\tQTY\tHS CODE"
	if opts.IncludePrice {
		header += "\tUNIT PRICE\tAMOUNT\tCURRENCY"
	}
	fmt.Fprintln(tw, header+"\tSOURCE")
	for _, item := range result.Items {
		line := fmt.Sprintf("%s\t%s\t%s\t%d\t%s", item.SKUID, item.Barcode, item.Description, item.Qty, item.HSCode)
		if opts.IncludePrice {
			line += fmt.Sprintf("\t%g\t%g\t%s", item.UnitPrice, item.Amount, item.Currency)
		}
		fmt.Fprintln(tw, line+"\t"+string(item.Source))
	}
	tw.Flush()
}
