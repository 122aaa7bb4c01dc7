package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable, e.g. DEXFEED_HTTP_ADDR.
const EnvPrefix = "DEXFEED"

type Config struct {
	HTTPAddr string
	LogLevel slog.Level

	APIBaseURL     string
	MaxID          int
	MaxAttempts    int
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
	CacheTTL       time.Duration

	BootstrapCount int
	BootstrapPause time.Duration

	UseSpeciesDescription bool
	EnableNarration       bool
	EnableShuffleEffect   bool
	SpeechCommand         string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("max_id", 898)
	v.SetDefault("max_attempts", 5)
	v.SetDefault("request_timeout", "10s")
	v.SetDefault("rate_limit_rps", 5.0)
	v.SetDefault("rate_burst", 5)
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("bootstrap_count", 6)
	v.SetDefault("bootstrap_pause", "120ms")
	v.SetDefault("use_species_description", false)
	v.SetDefault("enable_narration", true)
	v.SetDefault("enable_shuffle_effect", true)
	v.SetDefault("speech_command", "")
}

// Load reads configuration from DEXFEED_* environment variables and, when path is
// non-empty, from a config file (YAML, JSON or TOML by extension). Environment wins.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %q: %w", path, err)
		}
	}

	c := Config{
		HTTPAddr:              v.GetString("http_addr"),
		APIBaseURL:            v.GetString("api_base_url"),
		MaxID:                 v.GetInt("max_id"),
		MaxAttempts:           v.GetInt("max_attempts"),
		RequestTimeout:        v.GetDuration("request_timeout"),
		RateLimit:             v.GetFloat64("rate_limit_rps"),
		RateBurst:             v.GetInt("rate_burst"),
		CacheTTL:              v.GetDuration("cache_ttl"),
		BootstrapCount:        v.GetInt("bootstrap_count"),
		BootstrapPause:        v.GetDuration("bootstrap_pause"),
		UseSpeciesDescription: v.GetBool("use_species_description"),
		EnableNarration:       v.GetBool("enable_narration"),
		EnableShuffleEffect:   v.GetBool("enable_shuffle_effect"),
		SpeechCommand:         v.GetString("speech_command"),
	}

	level, err := parseLogLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch {
	case c.APIBaseURL == "":
		return fmt.Errorf("%s_API_BASE_URL must not be empty", EnvPrefix)
	case c.MaxID < 1:
		return fmt.Errorf("%s_MAX_ID must be at least 1, got %d", EnvPrefix, c.MaxID)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%s_MAX_ATTEMPTS must be at least 1, got %d", EnvPrefix, c.MaxAttempts)
	case c.RequestTimeout <= 0:
		return fmt.Errorf("%s_REQUEST_TIMEOUT must be positive", EnvPrefix)
	case c.RateLimit < 0:
		return fmt.Errorf("%s_RATE_LIMIT_RPS must not be negative", EnvPrefix)
	case c.BootstrapCount < 0:
		return fmt.Errorf("%s_BOOTSTRAP_COUNT must not be negative", EnvPrefix)
	}
	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid %s_LOG_LEVEL %q", EnvPrefix, s)
	}
}
