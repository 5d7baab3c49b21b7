package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/internal/invoice"
	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/internal/po"
	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

var invoiceCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Generate commercial invoices",
}

var invoiceGenerateCmd = &cobra.Command{
	Use:   "generate [draft.json]",
	Short: "Render a commercial invoice from a draft",
	Long: `Render a commercial invoice workbook from a JSON draft.

The draft holds the invoice fields (receiver, shipping terms, currency, items,
tax rate, remarks). The receiver may be given by customer_code and staff by
name or email; both are looked up in the data directory. When the draft has a
"po" section, the purchase order is parsed and its lines are appended to the
items.

The invoice number INV{CODE}{YYMMDD}-{SEQ} is assigned from the invoice
history unless the draft sets one. The workbook is written to
{output-dir}/{invoice_no}.xlsx and the invoice is recorded in the history.`,
	Example: `  # Generate from a draft
  cigen invoice generate draft.json

  # Validate and number only, write nothing
  cigen invoice generate draft.json --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoiceGenerate,
}

var invoiceNextCmd = &cobra.Command{
	Use:   "next-number",
	Short: "Show the next invoice number for a customer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		code, _ := cmd.Flags().GetString("customer")
		date, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		if strings.TrimSpace(code) == "" {
			code = invoice.DefaultCustomerCode
		}
		seq := a.store.NextSequence(code, date)
		fmt.Fprintln(cmd.OutOrStdout(), invoice.FormatNumber(code, date, seq))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invoiceCmd)
	invoiceCmd.AddCommand(invoiceGenerateCmd, invoiceNextCmd)

	invoiceGenerateCmd.Flags().Bool("dry-run", false, "Validate and number the invoice without writing it")

	invoiceNextCmd.Flags().String("customer", "", "Customer code (default XX)")
	invoiceNextCmd.Flags().String("date", "", "Invoice date YYYY-MM-DD (default: today)")
}

func runInvoiceGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("invoice")

	draftPath := args[0]
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Load the draft
	draft, err := invoice.LoadDraft(draftPath)
	if err != nil {
		return err
	}

	a, err := newApp(cmd, draft.PO != nil)
	if err != nil {
		return err
	}

	// Resolve saved receiver and staff
	data, err := draft.Resolve(a.store, a.store)
	if err != nil {
		return err
	}

	if draft.PO != nil {
		items, err := importPO(a, draft.PO, filepath.Dir(draftPath), log)
		if err != nil {
			return err
		}
		data.Items = append(data.Items, items...)
	}

	if dryRun {
		invoiceNo := a.generator.AssignNumber(data)
		if err := invoice.Validate(data); err != nil {
			return describeValidation(cmd, err)
		}
		totals := invoice.TotalsOf(data)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items, declared total %s\n",
			invoiceNo, len(data.Items), invoice.FormatMoney(data.Currency, totals.DeclaredTotal))
		return nil
	}

	// Generate
	result, err := a.generator.Generate(data)
	if err != nil {
		return describeValidation(cmd, err)
	}

	log.Info().
		Str("invoice_no", result.InvoiceNo).
		Str("path", result.Path).
		Msg("Invoice generated")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Invoice:  %s\n", result.InvoiceNo)
	fmt.Fprintf(out, "File:     %s\n", result.Path)
	fmt.Fprintf(out, "Subtotal: %s\n", invoice.FormatMoney(data.Currency, result.Totals.Subtotal))
	fmt.Fprintf(out, "Tax:      %s\n", invoice.FormatMoney(data.Currency, result.Totals.TaxAmount))
	fmt.Fprintf(out, "Total:    %s\n", invoice.FormatMoney(data.Currency, result.Totals.DeclaredTotal))
	if result.Totals.HasFOC {
		fmt.Fprintf(out, "Payment:  %s\n", invoice.FormatMoney(data.Currency, result.Totals.TransactionTotal))
	}
	return nil
}

// importPO parses the draft's purchase order and converts its lines. A
// relative PO path is resolved against the draft's directory.
func importPO(a *app, imp *invoice.POImport, baseDir string, log zerolog.Logger) ([]models.LineItem, error) {
	path := imp.File
	if path == "" {
		return nil, fmt.Errorf("draft po section has no file")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	opts := po.DefaultOptions()
	opts.Sheet = imp.Sheet
	opts.IncludeNameKR = imp.IncludeNameKR

	result := a.parser.ParseFile(path, opts)
	for _, m := range result.Messages {
		switch m.Severity {
		case po.SeverityFatal:
			log.Error().Str("file", path).Msg(m.Text)
		case po.SeverityWarning:
			log.Warn().Str("file", path).Msg(m.Text)
		default:
			log.Debug().Str("file", path).Msg(m.Text)
		}
	}
	if result.HasFatal() {
		return nil, fmt.Errorf("failed to parse purchase order %s", path)
	}

	return invoice.FromParsed(result.Items, imp.DefaultPrice, imp.AllFOC), nil
}

// describeValidation prints each validation problem before returning err.
func describeValidation(cmd *cobra.Command, err error) error {
	var verrs invoice.ValidationErrors
	if errors.As(err, &verrs) {
		for _, msg := range verrs.Messages() {
			fmt.Fprintln(cmd.ErrOrStderr(), "  -", msg)
		}
		return fmt.Errorf("invoice draft has %d problem(s)", len(verrs))
	}
	return err
}

func dateFlag(cmd *cobra.Command) (time.Time, error) {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format. Use YYYY-MM-DD: %w", err)
	}
	return date, nil
}
