package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ScanConfig carries default options for directory scanning commands.
type ScanConfig struct {
	Recursive     bool `yaml:"recursive"`
	IncludeHidden bool `yaml:"include_hidden"`
	Absolute      bool `yaml:"absolute"`
}

// ProjectConfig is the optional per-project configuration. All fields have
// zero-value defaults; the file's absence is not an error for callers that
// treat ErrConfigNotFound as "use defaults".
type ProjectConfig struct {
	// DataRoot is the base directory holding the data-distribution tree.
	// The GBMFN_DATA_ROOT environment variable takes precedence in the CLI.
	DataRoot string `yaml:"data_root"`

	// Extension overrides the default extension for constructed filenames.
	Extension string `yaml:"extension,omitempty"`

	// Scan holds default scan options.
	Scan ScanConfig `yaml:"scan"`
}

const ConfigFileName = "gbmfn.yaml"

func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
