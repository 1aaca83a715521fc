package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// Environment selects error verbosity (development, production).
	Environment string `mapstructure:"environment" default:"development"`
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// IsValidEnvironment checks if the configured environment is valid.
func (c Config) IsValidEnvironment() bool {
	switch c.Environment {
	case EnvDevelopment, EnvProduction:
		return true
	default:
		return false
	}
}

// IsProduction reports whether error responses should hide internal detail.
func (c Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
