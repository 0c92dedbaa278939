package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/glowpage/backend/internal/domain"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Rewriter   RewriterConfig
	Comparison ComparisonConfig
	Validation ValidationConfig
	Cache      CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RewriterConfig holds settings for the optional paraphrasing adapter
type RewriterConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// ComparisonConfig holds the recommendation-engine thresholds.
// Defaults are documented in setDefaults; out-of-range values abort startup.
type ComparisonConfig struct {
	HighSimilarity       float64 `mapstructure:"high_similarity"`
	LowSimilarity        float64 `mapstructure:"low_similarity"`
	UniqueMargin         int     `mapstructure:"unique_margin"`
	ModestPremiumPercent float64 `mapstructure:"modest_premium_percent"`
}

// ValidationConfig holds the grounding-validator length heuristic
type ValidationConfig struct {
	LengthMultiplier int `mapstructure:"length_multiplier"`
	LengthFloor      int `mapstructure:"length_floor"`
}

// CacheConfig holds page-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/glowpage/")

	// Environment variable settings
	v.SetEnvPrefix("GLOWPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Rewriter defaults (disabled by default so output is reproducible)
	v.SetDefault("rewriter.enabled", false)
	v.SetDefault("rewriter.base_url", "http://localhost:11434")
	v.SetDefault("rewriter.model", "llama3:8b")
	v.SetDefault("rewriter.timeout", "30s")
	v.SetDefault("rewriter.requests_per_minute", 60)

	// Comparison thresholds
	v.SetDefault("comparison.high_similarity", 0.70)
	v.SetDefault("comparison.low_similarity", 0.35)
	v.SetDefault("comparison.unique_margin", 2)
	v.SetDefault("comparison.modest_premium_percent", 25.0)

	// Grounding validation
	v.SetDefault("validation.length_multiplier", 4)
	v.SetDefault("validation.length_floor", 600)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration. A failure here is a deployment
// mistake, not a data condition, so callers should treat it as fatal.
func validate(config *Config) error {
	c := config.Comparison
	if c.HighSimilarity < 0 || c.HighSimilarity > 1 {
		return fmt.Errorf("comparison.high_similarity must be in [0,1], got: %v", c.HighSimilarity)
	}
	if c.LowSimilarity < 0 || c.LowSimilarity > 1 {
		return fmt.Errorf("comparison.low_similarity must be in [0,1], got: %v", c.LowSimilarity)
	}
	if c.LowSimilarity >= c.HighSimilarity {
		return fmt.Errorf("comparison.low_similarity (%v) must be below high_similarity (%v)",
			c.LowSimilarity, c.HighSimilarity)
	}
	if c.UniqueMargin < 1 {
		return fmt.Errorf("comparison.unique_margin must be >= 1, got: %d", c.UniqueMargin)
	}
	if c.ModestPremiumPercent < 0 {
		return fmt.Errorf("comparison.modest_premium_percent must be >= 0, got: %v", c.ModestPremiumPercent)
	}

	if config.Validation.LengthMultiplier < 1 {
		return fmt.Errorf("validation.length_multiplier must be >= 1, got: %d", config.Validation.LengthMultiplier)
	}
	if config.Validation.LengthFloor < 0 {
		return fmt.Errorf("validation.length_floor must be >= 0, got: %d", config.Validation.LengthFloor)
	}

	if config.Rewriter.Enabled {
		if config.Rewriter.BaseURL == "" {
			return fmt.Errorf("rewriter base URL is required when the rewriter is enabled (set GLOWPAGE_REWRITER_BASE_URL)")
		}
		if config.Rewriter.Timeout <= 0 {
			return fmt.Errorf("rewriter.timeout must be positive, got: %v", config.Rewriter.Timeout)
		}
		if config.Rewriter.RequestsPerMinute < 1 {
			return fmt.Errorf("rewriter.requests_per_minute must be >= 1, got: %d", config.Rewriter.RequestsPerMinute)
		}
	}

	return nil
}
