package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
}

// IsSecured reports whether the API requires a key. An empty key leaves
// the report endpoints open, acceptable only on a closed network.
func (c Config) IsSecured() bool {
	return c.ApiKey != ""
}
