package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is the lifetime of access tokens.
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=1440"`

	// RefreshTokenLifetimeMinutes is the lifetime of refresh tokens. Must be
	// at least as long as the access token lifetime.
	RefreshTokenLifetimeMinutes int `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0,gtefield=TokenLifetimeMinutes"`

	// RotateRefreshTokens issues a new refresh token on every refresh when
	// enabled, instead of letting the client reuse the old one.
	RotateRefreshTokens bool `mapstructure:"rotate_refresh_tokens"`

	// BlacklistAfterRotation records rotated-out refresh tokens so they
	// cannot be replayed. Only meaningful when RotateRefreshTokens is set.
	BlacklistAfterRotation bool `mapstructure:"blacklist_after_rotation"`
}
