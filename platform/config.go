package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Static description of a compilation target.  The register configuration
// derived from it is computed once and never changes.
type TargetConfig struct {
	Architecture    ArchitectureName    `yaml:"architecture" toml:"architecture"`
	OperatingSystem OperatingSystemName `yaml:"operating-system" toml:"operating-system"`

	// When true, the runtime keeps the compressed heap base in a dedicated
	// register, which is then excluded from allocation.
	CompressedHeapBase bool `yaml:"compressed-heap-base" toml:"compressed-heap-base"`

	LogLevel string `yaml:"log-level" toml:"log-level"`
}

func DefaultTargetConfig() TargetConfig {
	return TargetConfig{
		Architecture:       Sparcv9,
		OperatingSystem:    Linux,
		CompressedHeapBase: true,
		LogLevel:           "info",
	}
}

// Loads a yaml (.yaml / .yml) or toml (.toml) target configuration.  Fields
// missing from the file keep their default values.
func LoadTargetConfig(path string) (TargetConfig, error) {
	config := DefaultTargetConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read target config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &config)
	case ".toml":
		err = toml.Unmarshal(content, &config)
	default:
		return config, fmt.Errorf("unsupported target config format: %s", path)
	}

	if err != nil {
		return config, fmt.Errorf("failed to parse target config %s: %w", path, err)
	}

	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("invalid target config %s: %w", path, err)
	}

	return config, nil
}

func (config TargetConfig) Validate() error {
	var err error

	switch config.Architecture {
	case Sparcv9:
	default:
		err = multierr.Append(
			err,
			fmt.Errorf("unsupported architecture: %q", config.Architecture))
	}

	switch config.OperatingSystem {
	case Linux, Solaris:
	default:
		err = multierr.Append(
			err,
			fmt.Errorf("unsupported operating system: %q", config.OperatingSystem))
	}

	_, levelErr := config.Level()
	err = multierr.Append(err, levelErr)

	return err
}

func (config TargetConfig) Level() (zapcore.Level, error) {
	level := zapcore.InfoLevel
	if config.LogLevel == "" {
		return level, nil
	}

	err := level.UnmarshalText([]byte(config.LogLevel))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}
