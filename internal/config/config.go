package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Auth    AuthConfig    `mapstructure:"auth"    validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error fatal"`
}

// CatalogConfig controls how the descriptor catalog is loaded.
type CatalogConfig struct {
	// PackDir optionally points at a directory of extra descriptor
	// packs merged on top of the embedded catalog.
	PackDir string `mapstructure:"pack_dir"`

	// StrictBackrefs makes backref audit violations fatal at startup.
	StrictBackrefs bool `mapstructure:"strict_backrefs"`
}

// AuthConfig contains the consumer token settings.
type AuthConfig struct {
	TokenSecret          string `mapstructure:"token_secret"           validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
