package configs

import "time"

// Redis configures the segment lease. An empty Addr disables it and passes
// are serialized within the process only.
type Redis struct {
	Addr string `env:"ADDRESS"`
	// LockTTL is how long a lease outlives a crashed holder. Live holders
	// renew it every LockTTL/3.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"10s"`
	// RetryInterval is the polling period while a lease is held elsewhere.
	RetryInterval time.Duration `env:"RETRY_INTERVAL" envDefault:"25ms"`
}

func (c Redis) Enabled() bool { return c.Addr != "" }
