package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

var receiverCmd = &cobra.Command{
	Use:   "receiver",
	Short: "Manage saved receivers",
}

var receiverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved receivers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		receivers := a.store.Receivers()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			if receivers == nil {
				receivers = []models.Receiver{}
			}
			return printJSON(cmd.OutOrStdout(), receivers)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tCOMPANY\tCOUNTRY\tCURRENCY\tEMAIL")
		for _, r := range receivers {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.CustomerCode, r.CompanyName, r.Country, r.Currency, r.Email)
		}
		return tw.Flush()
	},
}

var receiverAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a receiver",
	Example: `  cigen receiver add --code SK --company "SK Trading" --address "Tokyo, Japan" \
    --country JAPAN --currency USD`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		var r models.Receiver
		r.CustomerCode, _ = flags.GetString("code")
		r.CompanyName, _ = flags.GetString("company")
		r.Address, _ = flags.GetString("address")
		r.Country, _ = flags.GetString("country")
		r.Email, _ = flags.GetString("email")
		r.Phone, _ = flags.GetString("phone")
		r.BusinessNo, _ = flags.GetString("business-no")
		r.TradeTerms, _ = flags.GetString("trade-terms")
		currency, _ := flags.GetString("currency")
		r.Currency = strings.ToUpper(currency)

		if err := a.store.SaveReceiver(r); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved receiver %s\n", strings.ToUpper(r.CustomerCode))
		return nil
	},
}

var receiverDeleteCmd = &cobra.Command{
	Use:   "delete [customer-code]",
	Short: "Delete a receiver",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		deleted, err := a.store.DeleteReceiver(args[0])
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("receiver %q not found", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted receiver %s\n", strings.ToUpper(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(receiverCmd)
	receiverCmd.AddCommand(receiverListCmd, receiverAddCmd, receiverDeleteCmd)

	receiverListCmd.Flags().Bool("json", false, "Print the result as JSON")

	f := receiverAddCmd.Flags()
	f.String("code", "", "Customer code, e.g. SK (required)")
	f.String("company", "", "Company name")
	f.String("address", "", "Address")
	f.String("country", "", "Country")
	f.String("email", "", "Email")
	f.String("phone", "", "Phone")
	f.String("business-no", "", "Business registration number")
	f.String("currency", "", "Default invoice currency (KRW, USD, EUR)")
	f.String("trade-terms", "", "Default trade terms (FOB, CIF, EXW, DAP)")
	_ = receiverAddCmd.MarkFlagRequired("code")
}
