package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "cigen",
	Short: "Commercial invoice generator",
	Long: `cigen turns purchase orders into commercial invoices.

It reads customer purchase orders (xlsx, xls or csv), joins every line with the
SKU master, and renders numbered commercial invoices as xlsx workbooks.
Receivers, staff and the invoice history are kept as JSON files in the data
directory.

Environment variables:
  CI_DATA_DIR            - Data directory for receivers, staff and history (default ./data)
  CI_OUTPUT_DIR          - Directory for generated invoices (default $CI_DATA_DIR/generated)
  SKU_MASTER_CSV         - Local SKU master CSV file
  SKU_MASTER_ENCODING    - Preferred encoding of the SKU master CSV (utf-8, cp949, euc-kr)
  GOOGLE_SHEET_URL       - Google Sheets URL holding the SKU master (takes precedence)
  GOOGLE_SHEET_WORKSHEET - Worksheet with the SKU master (default sku_master)
  CI_PROFILE             - YAML company profile (sender and bank details)`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("sku-master", "", "SKU master CSV file (overrides SKU_MASTER_CSV)")
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (overrides CI_DATA_DIR)")
}
