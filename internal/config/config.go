package config

import (
	"strings"
	"time"

	"logixy_crm/internal/rates"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LOGIXY_DB_PATH.
const EnvPrefix = "LOGIXY"

const defaultSigningKey = "logixy-dev-signing-key"

// Config holds the full application configuration.
type Config struct {
	Port      string          `yaml:"port" mapstructure:"port"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	DB        DBConfig        `yaml:"db" mapstructure:"db"`
	Auth      AuthConfig      `yaml:"auth" mapstructure:"auth"`
	Rates     RatesConfig     `yaml:"rates" mapstructure:"rates"`
	Seed      SeedConfig      `yaml:"seed" mapstructure:"seed"`
	Dashboard DashboardConfig `yaml:"dashboard" mapstructure:"dashboard"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

type DBConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `yaml:"signing_key" mapstructure:"signing_key"`
	TokenTTL   time.Duration `yaml:"token_ttl" mapstructure:"token_ttl"`
}

// RatesConfig configures the recommendation engine and the rate search limiter.
type RatesConfig struct {
	Provider       string  `yaml:"provider" mapstructure:"provider"`
	SampleDays     int     `yaml:"sample_days" mapstructure:"sample_days"`
	Window         int     `yaml:"window" mapstructure:"window"`
	HistoryDays    int     `yaml:"history_days" mapstructure:"history_days"`
	LimitPerSecond float64 `yaml:"limit_per_second" mapstructure:"limit_per_second"`
	Burst          int     `yaml:"burst" mapstructure:"burst"`
}

type SeedConfig struct {
	// OnStart loads the demo dataset when the database has no clients.
	OnStart bool `yaml:"on_start" mapstructure:"on_start"`
}

type DashboardConfig struct {
	PushInterval time.Duration `yaml:"push_interval" mapstructure:"push_interval"`
}

// ProviderConfig maps the rates section onto the engine's provider settings.
func (r RatesConfig) ProviderConfig() rates.ProviderConfig {
	return rates.ProviderConfig{
		Name:        r.Provider,
		SampleDays:  r.SampleDays,
		HistoryDays: r.HistoryDays,
	}
}

// Load reads .env (optional), then config.yml from the given directories
// (default: configs and the working directory), then LOGIXY_* environment overrides.
func Load(paths ...string) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.signing_key", defaultSigningKey)
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("rates.provider", rates.ProviderSynthetic)
	v.SetDefault("rates.sample_days", rates.DefaultSampleDays)
	v.SetDefault("rates.window", rates.DefaultWindow)
	v.SetDefault("rates.history_days", rates.DefaultHistoryDays)
	v.SetDefault("rates.limit_per_second", 5.0)
	v.SetDefault("rates.burst", 10)
	v.SetDefault("seed.on_start", true)
	v.SetDefault("dashboard.push_interval", 5*time.Second)
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return eris.New("config: auth.signing_key must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return eris.Errorf("config: auth.token_ttl must be positive, got %s", c.Auth.TokenTTL)
	}
	switch c.Rates.Provider {
	case rates.ProviderSynthetic, rates.ProviderHistory:
	default:
		return eris.Errorf("config: unknown rates.provider %q", c.Rates.Provider)
	}
	if c.Rates.SampleDays <= 0 {
		return eris.Errorf("config: rates.sample_days must be positive, got %d", c.Rates.SampleDays)
	}
	if c.Rates.Window <= 0 {
		return eris.Errorf("config: rates.window must be positive, got %d", c.Rates.Window)
	}
	if c.Rates.HistoryDays <= 0 {
		return eris.Errorf("config: rates.history_days must be positive, got %d", c.Rates.HistoryDays)
	}
	if c.Rates.LimitPerSecond <= 0 || c.Rates.Burst <= 0 {
		return eris.New("config: rates.limit_per_second and rates.burst must be positive")
	}
	if c.Dashboard.PushInterval <= 0 {
		return eris.Errorf("config: dashboard.push_interval must be positive, got %s", c.Dashboard.PushInterval)
	}
	return nil
}
