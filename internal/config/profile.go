package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sender is the exporter block printed at the top of the invoice.
type Sender struct {
	CompanyName string `yaml:"company_name"`
	Address     string `yaml:"address"`
	Tel         string `yaml:"tel"`
	Fax         string `yaml:"fax"`
	BusinessNo  string `yaml:"business_no"`
}

// BankDetails are printed in the remarks block of international invoices.
type BankDetails struct {
	AccountHolder  string `yaml:"account_holder"`
	AccountNumber  string `yaml:"account_number"`
	BankName       string `yaml:"bank_name"`
	BankAddress    string `yaml:"bank_address"`
	SwiftCode      string `yaml:"swift_code"`
	CompanyAddress string `yaml:"company_address"`
}

// Profile is the exporter's company profile used by the invoice renderer.
type Profile struct {
	Domestic      Sender      `yaml:"domestic"`
	International Sender      `yaml:"international"`
	Bank          BankDetails `yaml:"bank"`

	// Remarks replace the default remark lines when set.
	Remarks         []string `yaml:"remarks"`
	DomesticRemarks []string `yaml:"domestic_remarks"`
}

// DefaultProfile is used when no profile file is configured.
func DefaultProfile() *Profile {
	return &Profile{
		Domestic: Sender{
			CompanyName: "Exporter Co., Ltd.",
			Address:     "Seoul, Republic of Korea",
		},
		International: Sender{
			CompanyName: "Exporter Co., Ltd.",
			Address:     "Seoul, Republic of Korea",
		},
	}
}

// LoadProfile reads a YAML company profile. An empty path yields DefaultProfile.
func LoadProfile(path string) (*Profile, error) {
	const op = "LoadProfile"

	if path == "" {
		return DefaultProfile(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read profile %s: %w", op, path, err)
	}

	profile := DefaultProfile()
	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("%s: failed to parse profile %s: %w", op, path, err)
	}
	return profile, nil
}

// Profile loads the company profile configured by CI_PROFILE.
func (c *Config) Profile() (*Profile, error) {
	return LoadProfile(c.ProfilePath)
}
