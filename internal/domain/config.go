package domain

import "fmt"

// Notification channels.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// BillingConfig is the user-facing configuration read from .billcraft.yaml.
// CLI flags override it; unset fields fall back to DefaultConfig.
type BillingConfig struct {
	Jurisdiction string       `yaml:"jurisdiction" validate:"required,oneof=IN SG"`
	Channel      string       `yaml:"channel" validate:"required,oneof=email sms"`
	OutputDir    string       `yaml:"output_dir" validate:"required"`
	Ledger       LedgerConfig `yaml:"ledger"`
}

// LedgerConfig controls the opt-in git-backed invoice archive.
type LedgerConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// DefaultConfig returns the configuration used when no .billcraft.yaml
// exists: India GST, email notifications, invoices in the working directory,
// ledger off.
func DefaultConfig() BillingConfig {
	return BillingConfig{
		Jurisdiction: JurisdictionIN,
		Channel:      ChannelEmail,
		OutputDir:    ".",
		Ledger: LedgerConfig{
			Enabled: false,
			Path:    ".billcraft/ledger",
		},
	}
}

// Validate catches typos in user config before any command runs with it.
func (c BillingConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid billing config: %w", err)
	}
	if c.Ledger.Enabled && c.Ledger.Path == "" {
		return fmt.Errorf("invalid billing config: ledger enabled without a path")
	}
	return nil
}
