/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Display DisplayConfig `mapstructure:"display" validate:"required"`
}

// LogConfig controls the diagnostics logger written to stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json logfmt"`
}

// DisplayConfig holds console rendering settings
type DisplayConfig struct {
	// Color is "auto" (style only on a terminal), "always" or "never".
	Color string `mapstructure:"color" validate:"required,oneof=auto always never"`
}

// DefaultAppConfig returns the configuration used when nothing overrides it.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Log:     LogConfig{Level: "warn", Format: "text"},
		Display: DisplayConfig{Color: "auto"},
	}
}
