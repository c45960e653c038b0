package configs

import "time"

// Payment configures the payment method validation service.
type Payment struct {
	URL     string        `env:"URL" envDefault:"http://localhost:8090"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"3s"`
}
