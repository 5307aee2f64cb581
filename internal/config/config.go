package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// bentoDatabase is the data file location relative to the user's home directory.
const bentoDatabase = "Library/Application Support/Bento/bento.bentodb/Contents/Resources/Database"

// Config holds the bentographer configuration.
type Config struct {
	Database  DatabaseConfig  `yaml:"database"`
	Ranking   RankingConfig   `yaml:"ranking"`
	Chart     ChartConfig     `yaml:"chart"`
	Selection SelectionConfig `yaml:"selection"`
	Serve     ServeConfig     `yaml:"serve"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// DatabaseConfig holds data file settings.
type DatabaseConfig struct {
	Path             string `yaml:"path"`
	ReadinessTimeout int    `yaml:"readiness_timeout_sec"`
}

// RankingConfig holds field ranking settings.
type RankingConfig struct {
	// IgnorableTypes replaces the built-in list of never-plotted field types when set.
	IgnorableTypes []string `yaml:"ignorable_types"`
}

// ChartConfig holds chart output settings.
type ChartConfig struct {
	Output string `yaml:"output"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SelectionConfig preselects prompt answers by label. Empty means ask.
type SelectionConfig struct {
	Library string `yaml:"library"`
	X       string `yaml:"x"`
	Y       string `yaml:"y"`
}

// ServeConfig holds chart server settings. The server is off when Addr is empty.
type ServeConfig struct {
	Addr            string   `yaml:"addr"`
	ReadTimeoutSec  int      `yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `yaml:"write_timeout_sec"`
	ShutdownSec     int      `yaml:"shutdown_timeout_sec"`
	APIKeys         []string `yaml:"api_keys"`
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile path, empty = off
}

// Overrides carries command line values that take precedence over the file.
// Empty fields leave the loaded value untouched.
type Overrides struct {
	DatabasePath string
	Library      string
	X            string
	Y            string
	Output       string
	ServeAddr    string
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
// A missing file yields the defaults.
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	var cfg Config
	data, err := os.ReadFile(filepath.Clean(configPath))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	default:
		// Substitute env variables of the form ${VAR}
		data = expandEnvVars(data)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// DefaultDatabasePath returns the Bento data file under the user's home directory.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return bentoDatabase
	}
	return filepath.Join(home, bentoDatabase)
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 5
	}
	if c.Chart.Output == "" {
		c.Chart.Output = "chart.png"
	}
	if c.Chart.Width <= 0 {
		c.Chart.Width = 800
	}
	if c.Chart.Height <= 0 {
		c.Chart.Height = 600
	}
	if c.Serve.ReadTimeoutSec <= 0 {
		c.Serve.ReadTimeoutSec = 10
	}
	if c.Serve.WriteTimeoutSec <= 0 {
		c.Serve.WriteTimeoutSec = 10
	}
	if c.Serve.ShutdownSec <= 0 {
		c.Serve.ShutdownSec = 10
	}
}

// Apply copies non-empty overrides into c.
func (c *Config) Apply(o Overrides) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Database.Path, o.DatabasePath)
	set(&c.Selection.Library, o.Library)
	set(&c.Selection.X, o.X)
	set(&c.Selection.Y, o.Y)
	set(&c.Chart.Output, o.Output)
	set(&c.Serve.Addr, o.ServeAddr)
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Chart.Output == "" {
		return fmt.Errorf("chart.output is required")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", c.Chart.Width, c.Chart.Height)
	}
	for i, t := range c.Ranking.IgnorableTypes {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("ranking.ignorable_types[%d] is empty", i)
		}
	}
	if c.Serve.Addr != "" {
		if _, _, err := net.SplitHostPort(c.Serve.Addr); err != nil {
			return fmt.Errorf("serve.addr %q: %w", c.Serve.Addr, err)
		}
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
