package configs

// Kafka configures publication of resolution events. Without brokers no
// events are published.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"auction.segment-resolved"`
}

func (c Kafka) Enabled() bool { return len(c.Brokers) > 0 }
