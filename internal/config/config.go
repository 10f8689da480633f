package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the tutormatch API configuration.
type Config struct {
	HTTP        HTTPConfig        `yaml:"http"`
	Database    DatabaseConfig    `yaml:"database"`
	Recommender RecommenderConfig `yaml:"recommender"`
	Pricing     PricingConfig     `yaml:"pricing"`
	Quotas      QuotasConfig      `yaml:"quotas"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// RecommenderConfig bounds the per-request vocabulary fit and result
// paging.
type RecommenderConfig struct {
	MaxFeatures    int     `yaml:"max_features"`
	MaxDocFraction float64 `yaml:"max_doc_fraction"`
	DefaultLimit   int     `yaml:"default_limit"`
	MaxLimit       int     `yaml:"max_limit"`
	MaxBatchSize   int     `yaml:"max_batch_size"`
}

// PricingConfig holds rate suggestion settings.
type PricingConfig struct {
	MinSamples int     `yaml:"min_samples"`
	MinRate    float64 `yaml:"min_rate"`
	MaxRate    float64 `yaml:"max_rate"`
}

// QuotasConfig holds per-scope daily request caps. Zero means the
// scope is not throttled.
type QuotasConfig struct {
	RecommendPerDay int64 `yaml:"recommend_per_day"`
	SentimentPerDay int64 `yaml:"sentiment_per_day"`
	MLPerDay        int64 `yaml:"ml_per_day"`
}

// RateLimitConfig holds the per-client burst limit for the ML routes.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"` // 0 = disabled
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Recommender.MaxFeatures <= 0 {
		c.Recommender.MaxFeatures = 5000
	}
	if c.Recommender.MaxDocFraction <= 0 || c.Recommender.MaxDocFraction > 1 {
		c.Recommender.MaxDocFraction = 0.95
	}
	if c.Recommender.DefaultLimit <= 0 {
		c.Recommender.DefaultLimit = 10
	}
	if c.Recommender.MaxLimit <= 0 {
		c.Recommender.MaxLimit = 50
	}
	if c.Recommender.MaxBatchSize <= 0 {
		c.Recommender.MaxBatchSize = 100
	}
	if c.Pricing.MinSamples <= 0 {
		c.Pricing.MinSamples = 10
	}
	if c.Pricing.MinRate <= 0 {
		c.Pricing.MinRate = 10
	}
	if c.Pricing.MaxRate <= 0 {
		c.Pricing.MaxRate = 150
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Recommender.DefaultLimit > c.Recommender.MaxLimit {
		return fmt.Errorf(
			"recommender.default_limit (%d) must not exceed recommender.max_limit (%d)",
			c.Recommender.DefaultLimit, c.Recommender.MaxLimit,
		)
	}
	if c.Pricing.MinRate > c.Pricing.MaxRate {
		return fmt.Errorf(
			"pricing.min_rate (%g) must not exceed pricing.max_rate (%g)",
			c.Pricing.MinRate, c.Pricing.MaxRate,
		)
	}
	for name, v := range map[string]int64{
		"quotas.recommend_per_day": c.Quotas.RecommendPerDay,
		"quotas.sentiment_per_day": c.Quotas.SentimentPerDay,
		"quotas.ml_per_day":        c.Quotas.MLPerDay,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
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
