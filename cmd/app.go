package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/internal/config"
	"github.com/bonhokoo-eng/ci-generator/internal/invoice"
	"github.com/bonhokoo-eng/ci-generator/internal/logger"
	"github.com/bonhokoo-eng/ci-generator/internal/po"
	"github.com/bonhokoo-eng/ci-generator/internal/sheets"
	"github.com/bonhokoo-eng/ci-generator/internal/skumaster"
	"github.com/bonhokoo-eng/ci-generator/internal/store"
)

// app holds the services of one command invocation.
type app struct {
	cfg       *config.Config
	skus      *skumaster.Table
	store     *store.Store
	parser    *po.Parser
	generator *invoice.Generator
	log       zerolog.Logger
}

// newApp loads configuration and builds the services. The SKU master is
// loaded only when withSKUs is set; a missing or failing source leaves the
// table empty and every PO line unmatched.
func newApp(cmd *cobra.Command, withSKUs bool) (*app, error) {
	log := logger.WithComponent("app")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.DataDir = dir
		if os.Getenv("CI_OUTPUT_DIR") == "" {
			cfg.OutputDir = filepath.Join(dir, "generated")
		}
	}
	if path, _ := cmd.Flags().GetString("sku-master"); path != "" {
		cfg.SKUMasterCSV = path
	}

	// Open local state
	st, err := store.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	profile, err := cfg.Profile()
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:       cfg,
		skus:      skumaster.NewTable(),
		store:     st,
		generator: invoice.NewGenerator(invoice.NewRenderer(profile), st, cfg.OutputDir),
		log:       log,
	}
	a.parser = po.NewParser(a.skus, po.WithReaders(po.DefaultReaders(cfg.POEncoding)...))

	if withSKUs {
		a.loadSKUMaster(cmd.Context())
	}
	return a, nil
}

// loadSKUMaster tries the Google Sheet first and the local CSV second.
func (a *app) loadSKUMaster(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	if a.cfg.GoogleSheetURL != "" {
		err := a.loadRemote(ctx)
		if err == nil {
			return
		}
		a.log.Warn().Err(err).Msg("Failed to load SKU master from Google Sheets")
	}

	if a.cfg.SKUMasterCSV != "" {
		if err := a.skus.LoadFile(a.cfg.SKUMasterCSV, a.cfg.SKUMasterEncoding); err != nil {
			a.log.Warn().Err(err).Str("file", a.cfg.SKUMasterCSV).Msg("Failed to load SKU master")
		}
		return
	}

	if !a.skus.IsLoaded() {
		a.log.Warn().Msg("No SKU master configured; all PO lines will be unmatched")
	}
}

func (a *app) loadRemote(ctx context.Context) error {
	svc, err := sheets.NewSheetsService(ctx, a.cfg.GoogleSheetURL)
	if err != nil {
		return err
	}
	snapshot := sheets.NewSnapshot(svc, a.cfg.GoogleSheetWorksheet, a.cfg.SKUMasterCacheTTL)
	return a.skus.LoadRemote(ctx, snapshot)
}

// printJSON writes v as indented JSON.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
