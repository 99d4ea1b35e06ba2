package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/billcraft/billcraft/internal/domain"
)

const fileName = ".billcraft.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .billcraft.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .billcraft.yaml from dir. A missing file yields DefaultConfig;
// keys absent from the file keep their default values.
func (l *YAMLLoader) Load(dir string) (domain.BillingConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.BillingConfig{}, fmt.Errorf("reading %s: %w", fileName, err)
	}

	// Unmarshal over the defaults so partial configs stay usable.
	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.BillingConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.BillingConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}
