// Package config loads kmeans command configuration.
//
// Configuration can be loaded from:
//   - Environment variables
//   - YAML configuration file
//   - Programmatic defaults
//
// Command-line flags are applied on top by the caller.
//
// Environment Variables:
//
//	KMEANS_K               - Number of clusters
//	KMEANS_SEED            - Random seed for initial centroids and reseeding
//	KMEANS_MAX_ROUNDS      - Round limit (default: 1000)
//	KMEANS_TOLERANCE       - Convergence tolerance (default: 0)
//	KMEANS_EMPTY_CLUSTER   - reseed, keep or fail (default: reseed)
//	KMEANS_DELIMITER       - Field delimiter, "tab" or one character (default: tab)
//	KMEANS_NO_TAGS         - Treat the last column as a feature (default: false)
//	KMEANS_LOG_LEVEL       - debug, info, warn or error (default: warn)
//	KMEANS_LOG_FORMAT      - text or json (default: text)
//	KMEANS_METRICS_FILE    - Write Prometheus metrics to this file
//	KMEANS_RESULT_CODEC    - json or go-json (default: go-json)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/dataset"
)

// Config holds the settings of a clustering run.
//
// Example:
//
//	// Load from file, then apply environment overrides
//	cfg, err := config.LoadFromEnvOrFile("./kmeans.yaml")
//
//	// Or use defaults
//	cfg := config.DefaultConfig()
type Config struct {
	// K is the number of clusters. Zero means "ask" in interactive mode.
	K int `yaml:"k"`

	// Centroids optionally fixes the starting centroids.
	Centroids [][]float64 `yaml:"centroids"`

	// Seed seeds the random source. Nil means a time-based seed.
	Seed *int64 `yaml:"seed"`

	MaxRounds    int     `yaml:"max_rounds"`
	Tolerance    float64 `yaml:"tolerance"`
	EmptyCluster string  `yaml:"empty_cluster"`

	Input  InputConfig  `yaml:"input"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig controls how records are read.
type InputConfig struct {
	// Delimiter is "tab" or a single character.
	Delimiter string `yaml:"delimiter"`
	// NoTags keeps the last column as a feature instead of a tag.
	NoTags bool `yaml:"no_tags"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig names optional report files.
type OutputConfig struct {
	Scatter     string `yaml:"scatter"`
	Sizes       string `yaml:"sizes"`
	MetricsFile string `yaml:"metrics_file"`
	// Result receives the encoded result.
	Result string `yaml:"result"`
	// Codec names the result encoding: "json" or "go-json" (default).
	Codec string `yaml:"codec"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxRounds:    kmeans.DefaultMaxRounds,
		EmptyCluster: kmeans.EmptyClusterReseed.String(),
		Input: InputConfig{
			Delimiter: "tab",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Codec: codec.Default.Name(),
		},
	}
}

// LoadConfig loads configuration from a YAML file. Fields missing from the
// file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables on top of the
// defaults.
func LoadFromEnv() (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnvOrFile loads the file at path (defaults when path is empty) and
// then applies environment variables, which take precedence.
func LoadFromEnvOrFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if val := os.Getenv("KMEANS_K"); val != "" {
		k, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("KMEANS_K: %w", err)
		}
		c.K = k
	}
	if val := os.Getenv("KMEANS_SEED"); val != "" {
		seed, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("KMEANS_SEED: %w", err)
		}
		c.Seed = &seed
	}
	if val := os.Getenv("KMEANS_MAX_ROUNDS"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("KMEANS_MAX_ROUNDS: %w", err)
		}
		c.MaxRounds = n
	}
	if val := os.Getenv("KMEANS_TOLERANCE"); val != "" {
		tol, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("KMEANS_TOLERANCE: %w", err)
		}
		c.Tolerance = tol
	}
	if val := os.Getenv("KMEANS_EMPTY_CLUSTER"); val != "" {
		c.EmptyCluster = val
	}
	if val := os.Getenv("KMEANS_DELIMITER"); val != "" {
		c.Input.Delimiter = val
	}
	if val := os.Getenv("KMEANS_NO_TAGS"); val != "" {
		c.Input.NoTags = parseBool(val, c.Input.NoTags)
	}
	if val := os.Getenv("KMEANS_LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("KMEANS_LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("KMEANS_METRICS_FILE"); val != "" {
		c.Output.MetricsFile = val
	}
	if val := os.Getenv("KMEANS_RESULT_CODEC"); val != "" {
		c.Output.Codec = val
	}
	return nil
}

// parseBool parses a boolean from string with a default value.
func parseBool(s string, defaultVal bool) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultVal
	}
}

// Validate checks the configuration. K may still be zero; the caller
// decides whether to prompt for it.
func (c *Config) Validate() error {
	var errs []error

	if c.K < 0 {
		errs = append(errs, kmeans.ErrInvalidK)
	}
	if c.Centroids != nil && c.K > 0 && len(c.Centroids) != c.K {
		errs = append(errs, fmt.Errorf("%w: %d centroids for k=%d", kmeans.ErrCentroidCount, len(c.Centroids), c.K))
	}
	if c.MaxRounds <= 0 {
		errs = append(errs, kmeans.ErrInvalidMaxRounds)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		errs = append(errs, kmeans.ErrInvalidTolerance)
	}
	if _, err := kmeans.ParseEmptyClusterPolicy(c.EmptyCluster); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Delimiter(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ResultCodec(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Delimiter returns the field delimiter rune.
func (c *Config) Delimiter() (rune, error) {
	switch d := c.Input.Delimiter; {
	case d == "" || strings.EqualFold(d, "tab") || d == `\t`:
		return '\t', nil
	case utf8.RuneCountInString(d) == 1:
		r, _ := utf8.DecodeRuneInString(d)
		return r, nil
	default:
		return 0, fmt.Errorf("delimiter must be a single character, got %q", d)
	}
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// ResultCodec returns the codec for result exports.
func (c *Config) ResultCodec() (codec.Codec, error) {
	cd, ok := codec.ByName(c.Output.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown result codec %q", c.Output.Codec)
	}
	return cd, nil
}

// Logger builds the logger described by the log section.
func (c *Config) Logger() (*kmeans.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(c.Log.Format, "json") {
		return kmeans.NewJSONLogger(level), nil
	}
	return kmeans.NewTextLogger(level), nil
}

// Options converts the configuration into clusterer options.
func (c *Config) Options() ([]kmeans.Option, error) {
	policy, err := kmeans.ParseEmptyClusterPolicy(c.EmptyCluster)
	if err != nil {
		return nil, err
	}

	opts := []kmeans.Option{
		kmeans.WithMaxRounds(c.MaxRounds),
		kmeans.WithTolerance(c.Tolerance),
		kmeans.WithEmptyClusterPolicy(policy),
	}
	if c.Seed != nil {
		opts = append(opts, kmeans.WithSeed(*c.Seed))
	}
	return opts, nil
}

// ReadOptions converts the input section into dataset read options.
func (c *Config) ReadOptions() ([]dataset.ReadOption, error) {
	delim, err := c.Delimiter()
	if err != nil {
		return nil, err
	}
	opts := []dataset.ReadOption{dataset.WithDelimiter(delim)}
	if c.Input.NoTags {
		opts = append(opts, dataset.WithoutTags())
	}
	return opts, nil
}

// ExampleConfigYAML is a documented configuration file.
const ExampleConfigYAML = `# kmeans configuration

# Number of clusters (0 asks interactively with --interactive)
k: 3

# Optional starting centroids, one per cluster
# centroids:
#   - [1, 1]
#   - [9, 9]
#   - [5, 0]

seed: 42
max_rounds: 1000
tolerance: 0        # 0 stops on identical centroids
empty_cluster: reseed   # reseed, keep or fail

input:
  delimiter: tab
  no_tags: false    # last column is a tag, not a feature

log:
  level: info
  format: text

output:
  scatter: clusters.html
  sizes: sizes.html
  metrics_file: kmeans.prom
  result: result.json
  codec: go-json
`
