package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

var skuCmd = &cobra.Command{
	Use:   "sku",
	Short: "Query the SKU master",
}

var skuSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search SKU, barcode, variant name or product name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadedApp(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		return printRecords(cmd, a.skus.Search(args[0], limit))
	},
}

var skuGetCmd = &cobra.Command{
	Use:   "get [sku-id]",
	Short: "Show one SKU by its exact ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadedApp(cmd)
		if err != nil {
			return err
		}
		rec, ok := a.skus.GetBySKU(args[0])
		if !ok {
			return fmt.Errorf("SKU %q not found", args[0])
		}
		return printJSON(cmd.OutOrStdout(), rec)
	},
}

var skuBarcodeCmd = &cobra.Command{
	Use:   "barcode [barcode]",
	Short: "Show the SKU with the given barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadedApp(cmd)
		if err != nil {
			return err
		}
		rec, ok := a.skus.GetByBarcode(args[0])
		if !ok {
			return fmt.Errorf("barcode %q not found", args[0])
		}
		return printJSON(cmd.OutOrStdout(), rec)
	},
}

var skuActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "List sellable SKUs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadedApp(cmd)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		return printRecords(cmd, a.skus.ActiveProducts(limit))
	},
}

var skuInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where the SKU master was loaded from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, true)
		if err != nil {
			return err
		}
		source, loadedAt := a.skus.Source()
		if !a.skus.IsLoaded() {
			fmt.Fprintln(cmd.OutOrStdout(), "SKU master not loaded")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "source:  %s\nloaded:  %s\nrecords: %d\n",
			source, loadedAt.Format(time.RFC3339), a.skus.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skuCmd)
	skuCmd.AddCommand(skuSearchCmd, skuGetCmd, skuBarcodeCmd, skuActiveCmd, skuInfoCmd)

	skuSearchCmd.Flags().Int("limit", 20, "Maximum number of results")
	skuActiveCmd.Flags().Int("limit", 100, "Maximum number of results")
	for _, c := range []*cobra.Command{skuSearchCmd, skuActiveCmd} {
		c.Flags().Bool("json", false, "Print the result as JSON")
	}
}

// loadedApp builds the app and requires a loaded SKU master.
func loadedApp(cmd *cobra.Command) (*app, error) {
	a, err := newApp(cmd, true)
	if err != nil {
		return nil, err
	}
	if !a.skus.IsLoaded() {
		return nil, fmt.Errorf("SKU master not loaded; set SKU_MASTER_CSV or GOOGLE_SHEET_URL")
	}
	return a, nil
}

func printRecords(cmd *cobra.Command, records []models.ProductRecord) error {
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if records == nil {
			records = []models.ProductRecord{}
		}
		return printJSON(cmd.OutOrStdout(), records)
	}
	writeRecordTable(cmd.OutOrStdout(), records)
	return nil
}

func writeRecordTable(out io.Writer, records []models.ProductRecord) {
	if len(records) == 0 {
		fmt.Fprintln(out, "no matching SKUs")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tBARCODE\tDESCRIPTION\tMANUFACTURER\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.SKUID, r.Barcode, r.Description, r.Manufacturer, r.Status)
	}
	tw.Flush()
}
