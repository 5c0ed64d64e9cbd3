package configs

import "time"

// Worker bounds batch concurrency and how long a scheduled job may run.
type Worker struct {
	Count      int           `env:"COUNT" envDefault:"8"`
	JobTimeout time.Duration `env:"JOB_TIMEOUT" envDefault:"5m"`
}
