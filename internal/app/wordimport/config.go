package wordimport

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds import settings.
type Config struct {
	Dir    string `yaml:"dir"     env:"WORD_IMPORT_DIR"     env-default:"./import"`
	DryRun bool   `yaml:"dry_run" env:"WORD_IMPORT_DRY_RUN"`
}

// LoadConfig reads config from a YAML file or, when path is empty, from the
// environment.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("word-import config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("word-import config: %w", err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("word-import config: read env: %w", err)
	}
	return &cfg, nil
}
