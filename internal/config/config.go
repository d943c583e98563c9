package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Export   ExportConfig   `mapstructure:"export" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// ExportConfig contains settings for the image export pipeline.
type ExportConfig struct {
	// DecodeTimeoutSeconds bounds how long a single photo decode may take
	// before the export is abandoned.
	DecodeTimeoutSeconds int `mapstructure:"decode_timeout_seconds" validate:"required,gt=0"`
}
