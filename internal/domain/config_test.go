package domain_test

import (
	"testing"

	"github.com/billcraft/billcraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, domain.JurisdictionIN, cfg.Jurisdiction)
	assert.Equal(t, domain.ChannelEmail, cfg.Channel)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.Ledger.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestBillingConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BillingConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *domain.BillingConfig) {}, false},
		{"singapore sms", func(c *domain.BillingConfig) {
			c.Jurisdiction = domain.JurisdictionSG
			c.Channel = domain.ChannelSMS
		}, false},
		{"unknown jurisdiction", func(c *domain.BillingConfig) { c.Jurisdiction = "XX" }, true},
		{"unknown channel", func(c *domain.BillingConfig) { c.Channel = "pigeon" }, true},
		{"empty output dir", func(c *domain.BillingConfig) { c.OutputDir = "" }, true},
		{"ledger enabled without path", func(c *domain.BillingConfig) {
			c.Ledger.Enabled = true
			c.Ledger.Path = ""
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
