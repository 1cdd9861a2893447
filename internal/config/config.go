package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultBaseURL = "https://api.calendly.com"

// Config holds all configuration values. It is built once at startup and
// passed by value to whatever needs it.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Calendly credentials and identifiers.
	Token        string `mapstructure:"CALENDLY_TOKEN"`
	EventTypeURI string `mapstructure:"CALENDLY_EVENT_TYPE_URI"`
	OwnerURI     string `mapstructure:"CALENDLY_USER_URI"`

	BaseURL         string        `mapstructure:"CALENDLY_BASE_URL"`
	UpstreamTimeout time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`

	AllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// Load reads an optional .env file, then resolves every key from the
// environment, an optional config.yaml, or the defaults below.
func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("PORT", "5001")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CALENDLY_TOKEN", "")
	v.SetDefault("CALENDLY_EVENT_TYPE_URI", "")
	v.SetDefault("CALENDLY_USER_URI", "")
	v.SetDefault("CALENDLY_BASE_URL", DefaultBaseURL)
	v.SetDefault("UPSTREAM_TIMEOUT", "30s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UpstreamTimeout < 0 {
		return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT %s", cfg.UpstreamTimeout)
	}
	cfg.AllowedOrigins = trimAll(cfg.AllowedOrigins)
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	return cfg, nil
}

// MissingCredentials names the Calendly settings that are empty. They are
// not rejected here: the upstream answers unauthenticated calls itself.
func (c Config) MissingCredentials() []string {
	var missing []string
	if c.Token == "" {
		missing = append(missing, "CALENDLY_TOKEN")
	}
	if c.EventTypeURI == "" {
		missing = append(missing, "CALENDLY_EVENT_TYPE_URI")
	}
	if c.OwnerURI == "" {
		missing = append(missing, "CALENDLY_USER_URI")
	}
	return missing
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) ListenAddr() string {
	return "0.0.0.0:" + c.Port
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
