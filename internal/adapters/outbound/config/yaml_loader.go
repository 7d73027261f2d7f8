package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/matchscore/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the engine config file looked up in the config directory.
const FileName = ".matchscore.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .matchscore.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .matchscore.yaml from dir.
// Returns DefaultEngineConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.EngineConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultEngineConfig(), nil
		}
		return domain.EngineConfig{}, err
	}

	var cfg domain.EngineConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.EngineConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}
