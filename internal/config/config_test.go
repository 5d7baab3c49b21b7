package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CI_DATA_DIR", "")
	t.Setenv("CI_OUTPUT_DIR", "")
	t.Setenv("SKU_MASTER_CACHE_TTL", "")
	t.Setenv("GOOGLE_SHEET_WORKSHEET", "")
	t.Setenv("PO_ENCODING", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DataDir != "./data" {
		t.Errorf("DataDir = %q, want ./data", cfg.DataDir)
	}
	if cfg.OutputDir != filepath.Join("./data", "generated") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.SKUMasterCacheTTL != time.Hour {
		t.Errorf("SKUMasterCacheTTL = %v, want 1h", cfg.SKUMasterCacheTTL)
	}
	if cfg.GoogleSheetWorksheet != "sku_master" {
		t.Errorf("GoogleSheetWorksheet = %q", cfg.GoogleSheetWorksheet)
	}
	if cfg.POEncoding != "" {
		t.Errorf("POEncoding = %q, want empty", cfg.POEncoding)
	}
}

func TestLoadPOEncoding(t *testing.T) {
	t.Setenv("PO_ENCODING", "cp949")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.POEncoding != "cp949" {
		t.Errorf("POEncoding = %q, want cp949", cfg.POEncoding)
	}
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("SKU_MASTER_CACHE_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid TTL")
	}
}

func TestLoadRejectsBadLogSize(t *testing.T) {
	t.Setenv("LOG_MAX_SIZE_MB", "ten")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-integer LOG_MAX_SIZE_MB")
	}
}

func TestLoadProfileFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	body := `
international:
  company_name: Example Trading Co., Ltd.
  address: 1 Example-ro, Seoul
bank:
  bank_name: EXAMPLE BANK
  swift_code: EXAMKRSE
remarks:
  - Payment terms T/T in advance.
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.International.CompanyName != "Example Trading Co., Ltd." {
		t.Errorf("international company = %q", profile.International.CompanyName)
	}
	if profile.Bank.SwiftCode != "EXAMKRSE" {
		t.Errorf("swift = %q", profile.Bank.SwiftCode)
	}
	if profile.Domestic.CompanyName == "" {
		t.Errorf("domestic sender should keep its default when absent from the file")
	}
	if len(profile.Remarks) != 1 {
		t.Errorf("remarks = %v", profile.Remarks)
	}
}

func TestLoadProfileEmptyPath(t *testing.T) {
	profile, err := LoadProfile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.International.CompanyName == "" {
		t.Errorf("expected default profile")
	}
}
