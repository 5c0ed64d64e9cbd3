package configs

import (
	"fmt"
	"strings"
	"time"
)

// Override backends accepted by Backend.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Override configures where manual overrides are stored and which
// timezone defines their calendar day.
type Override struct {
	// Backend is one of memory, postgres or redis. Unknown values fall
	// back to memory.
	Backend string `env:"BACKEND" envDefault:"postgres"`
	// Timezone is an IANA name. Overrides expire at the end of the day
	// they were created on in this zone.
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Tokyo"`
	// PurgeSchedule is a cron spec for deleting expired overrides. An
	// empty value disables the job.
	PurgeSchedule string `env:"PURGE_SCHEDULE" envDefault:"5 0 * * *"`
}

// StoreBackend normalises Backend.
func (c Override) StoreBackend() string {
	switch strings.ToLower(c.Backend) {
	case BackendPostgres:
		return BackendPostgres
	case BackendRedis:
		return BackendRedis
	default:
		return BackendMemory
	}
}

// Location loads the reference timezone.
func (c Override) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("override timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
