package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	nlerror "github.com/msto63/numlab/foundation/core/error"
	nlerrors "github.com/msto63/numlab/foundation/core/errors"
	nllog "github.com/msto63/numlab/foundation/core/log"
)

// Environment variables read by the loader
const (
	EnvConfigPath = "NUMLAB_CONFIG"
	EnvLogLevel   = "NUMLAB_LOG_LEVEL"
)

// Limits enforced by Validate
const (
	MaxPrecision = 12
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Output  OutputConfig  `toml:"output" yaml:"output"`

	// Path is the file the configuration was read from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// InputConfig limits what the collector accepts
type InputConfig struct {
	// MaxCount is the largest accepted element count
	MaxCount int `toml:"max_count" yaml:"max_count"`

	// MaxAttempts caps consecutive failures per prompt, 0 means unlimited
	MaxAttempts int `toml:"max_attempts" yaml:"max_attempts"`
}

// RenderConfig controls how lists and values are printed
type RenderConfig struct {
	Precision  int    `toml:"precision" yaml:"precision"`
	Separator  string `toml:"separator" yaml:"separator"`
	Terminator string `toml:"terminator" yaml:"terminator"`
}

// OutputConfig holds the optional file dump settings
type OutputConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:      "numlab",
			LogLevel:  "info",
			LogFormat: "text",
		},
		Input: InputConfig{
			MaxCount:    1000,
			MaxAttempts: 0,
		},
		Render: RenderConfig{
			Precision:  2,
			Separator:  " -> ",
			Terminator: "<end>",
		},
	}
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; anything other than .yaml or .yml is read as TOML. Keys
// missing from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nlerror.Wrap(err, "config file not found").
				WithCode(nlerror.CodeNotFound).
				WithSeverity(nlerror.SeverityHigh).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, nlerrors.IOFailure(nlerrors.ModuleConfig, "Load", path, err)
	}

	cfg := Default()
	if err := decode(content, detectFormat(path), cfg); err != nil {
		return nil, err.WithDetail("path", path)
	}
	cfg.Path = path

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.applyEnvOverrides()

	return cfg, nil
}

// LoadFromEnv loads configuration from the NUMLAB_CONFIG environment variable
// or the first existing default location. Without any file the built-in
// defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		cfg := Default()
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	return Load(path)
}

// Resolve loads flagPath when it is set and falls back to LoadFromEnv
func Resolve(flagPath string) (*Config, error) {
	if flagPath != "" {
		return Load(flagPath)
	}
	return LoadFromEnv()
}

// DefaultPaths returns the locations searched when NUMLAB_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "numlab", "config.toml"))
	}
	return paths
}

// Validate checks the configuration for values the program cannot work with
func (c *Config) Validate() error {
	if _, err := nllog.ParseLevel(c.General.LogLevel); err != nil {
		return nlerrors.InvalidConfig("general.log_level", c.General.LogLevel, "unknown level")
	}
	if _, err := nllog.ParseFormat(c.General.LogFormat); err != nil {
		return nlerrors.InvalidConfig("general.log_format", c.General.LogFormat, "unknown format")
	}
	if c.Input.MaxCount < 1 {
		return nlerrors.InvalidConfig("input.max_count", c.Input.MaxCount, "must be at least 1")
	}
	if c.Input.MaxAttempts < 0 {
		return nlerrors.InvalidConfig("input.max_attempts", c.Input.MaxAttempts, "must not be negative")
	}
	if c.Render.Precision < 0 || c.Render.Precision > MaxPrecision {
		return nlerrors.InvalidConfig("render.precision", c.Render.Precision, "must be between 0 and 12")
	}
	if c.Render.Separator == "" {
		return nlerrors.InvalidConfig("render.separator", c.Render.Separator, "must not be empty")
	}
	if c.Render.Terminator == "" {
		return nlerrors.InvalidConfig("render.terminator", c.Render.Terminator, "must not be empty")
	}
	return nil
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func (f format) String() string {
	if f == formatYAML {
		return "yaml"
	}
	return "toml"
}

func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatTOML
	}
}

func decode(content []byte, f format, cfg *Config) *nlerror.Error {
	var err error
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(content, cfg)
	default:
		err = toml.Unmarshal(content, cfg)
	}
	if err != nil {
		return nlerror.Wrap(err, f.String()+" parse error").
			WithCode(nlerror.CodeConfigError).
			WithOperation("config.decode").
			WithDetail("format", f.String())
	}
	return nil
}

// applyDefaults fills string settings left empty by the file
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.General.Name == "" {
		c.General.Name = defaults.General.Name
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = defaults.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = defaults.General.LogFormat
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Output.Path = os.ExpandEnv(c.Output.Path)
}

func (c *Config) applyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}
}
