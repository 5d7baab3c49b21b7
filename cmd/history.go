package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show generated invoices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")
		entries := a.store.History(limit)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if entries == nil {
				entries = []models.HistoryEntry{}
			}
			return printJSON(cmd.OutOrStdout(), entries)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "INVOICE\tDATE\tCUSTOMER\tITEMS\tTOTAL")
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s %.2f\n", e.InvoiceNo, e.Date, e.CustomerCode, e.ItemCount, e.Currency, e.Total)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Int("limit", 20, "Number of most recent invoices to show")
	historyCmd.Flags().Bool("json", false, "Print the result as JSON")
}
