package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25

	// DefaultSize is the number of elements of A = {1..5}.
	DefaultSize = 5
)

// configNames are tried in order in every directory during discovery.
var configNames = []string{"relclosure.yaml", "relclosure.yml"}

// Config represents the relclosure configuration from relclosure.yaml.
type Config struct {
	// Size is n, the number of elements of the set.
	Size int `mapstructure:"size" json:"size"`

	Input    InputConfig    `mapstructure:"input" json:"input"`
	Output   OutputConfig   `mapstructure:"output" json:"output"`
	Analysis AnalysisConfig `mapstructure:"analysis" json:"analysis"`
}

// InputConfig holds input settings.
type InputConfig struct {
	// File is a .yaml, .yml, .json or .txt relation file. Empty means interactive.
	File string `mapstructure:"file" json:"file"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Format string `mapstructure:"format" json:"format"`
	Color  bool   `mapstructure:"color" json:"color"`
}

// AnalysisConfig holds pipeline settings.
type AnalysisConfig struct {
	StrictRecheck bool `mapstructure:"strict_recheck" json:"strict_recheck"`
}

// LoadConfig discovers and loads configuration with precedence
// flags > env > config file > defaults. Flags are applied by the caller.
//
// Returns the config, the path of the file used (empty if none) and any error.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("RELCLOSURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, configPath, err
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("size", DefaultSize)
	v.SetDefault("input.file", "")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)
	v.SetDefault("analysis.strict_recheck", true)
}

// Validate checks values that no later stage can repair.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be > 0, got %d", c.Size)
	}
	return nil
}

// findConfigFile returns explicitPath if it exists, otherwise walks up from
// cwd looking for relclosure.yaml or relclosure.yml, stopping at a .git
// directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break // repo root
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // filesystem root
		}
		dir = parent
	}

	return "", nil
}

// ResolvedSize returns the flag value when set, the config value otherwise.
func (c *Config) ResolvedSize(flagSize int) int {
	if flagSize > 0 {
		return flagSize
	}
	return c.Size
}

// ResolvedFile returns the flag value when set, the config value otherwise.
func (c *Config) ResolvedFile(flagFile string) string {
	if flagFile != "" {
		return flagFile
	}
	return c.Input.File
}

// ResolvedFormat returns the flag value when set, the config value otherwise.
func (c *Config) ResolvedFormat(flagFormat string) string {
	if flagFormat != "" {
		return flagFormat
	}
	return c.Output.Format
}
