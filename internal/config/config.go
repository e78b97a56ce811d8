package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all HTTP-server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Environment selects cookie hardening: "production" enables
	// Secure + SameSite=None on the credential cookie, anything else
	// falls back to SameSite=Strict without Secure.
	Environment string `mapstructure:"environment" validate:"required,oneof=development production"`

	// AllowedOrigins is the fixed CORS allow-list. Cookies are only
	// accepted cross-origin from origins on this list.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`

	// RequestTimeoutSeconds bounds each request's store work. Exceeding
	// it surfaces to the client as 504 Gateway Timeout.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// DatabaseConfig contains all MongoDB-related configuration settings.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"  validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeDays is the credential lifetime. The web client keeps
	// the cookie long-term, so this defaults to a year.
	TokenLifetimeDays int `mapstructure:"token_lifetime_days" validate:"required,gt=0"`

	// CookieName is the name of the cookie carrying the signed credential.
	CookieName string `mapstructure:"cookie_name" validate:"required"`
}
