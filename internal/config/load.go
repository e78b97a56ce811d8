package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file and use the COOKIETER_
// prefix with underscores for nesting, e.g. COOKIETER_SERVER_PORT,
// COOKIETER_AUTH_JWT_SECRET.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("COOKIETER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; env vars and defaults still apply.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers default values so a bare environment only has to
// provide the database URI and the JWT secret.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 9000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"https://cookieter-a1d62.web.app",
	})
	v.SetDefault("server.request_timeout_seconds", 30)

	// Registered empty so viper knows the keys and AutomaticEnv can fill
	// them during Unmarshal; validation rejects them if still empty.
	v.SetDefault("database.uri", "")
	v.SetDefault("database.name", "Cookieter")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_days", 365)
	v.SetDefault("auth.cookie_name", "token")
}
