package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. CORSOrigins lists the origins allowed
// to call the API from a browser; an empty list disables CORS handling.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// CORSOrigins is a comma separated list of allowed origins.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}
