package server

// Config holds configuration for the local dev server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5555"`
	// Browse enables directory listings for sketch folders without an index.html.
	Browse bool `mapstructure:"browse" default:"true"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}
