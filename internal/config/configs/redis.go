package configs

// Redis holds connection settings for the Redis override backend. It is
// only used when OVERRIDE_BACKEND is "redis".
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// Password is empty for unauthenticated servers.
	Password string `env:"PASSWORD"`
	// DB selects the logical database.
	DB int `env:"DB" envDefault:"0"`
	// Prefix is prepended to every override key.
	Prefix string `env:"PREFIX" envDefault:"override:"`
}
