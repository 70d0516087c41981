package registry

// Config holds configuration for the npm registry client.
type Config struct {
	// Endpoint is the base URL of the npm registry.
	Endpoint string `mapstructure:"endpoint" default:"https://registry.npmjs.org"`
	// Package is the npm package whose versions are fetched.
	Package string `mapstructure:"package" default:"p5"`
	// TimeoutSeconds is the HTTP timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
