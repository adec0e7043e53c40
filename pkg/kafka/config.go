package kafka

import "time"

// Config holds Kafka producer parameters.
type Config struct {
	Brokers []string

	// ClientID identifies this process to the brokers.
	ClientID string

	// BatchTimeout bounds how long a partially filled batch waits before it
	// is flushed. Zero uses the producer default.
	BatchTimeout time.Duration
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	for _, b := range c.Brokers {
		if b != "" {
			return true
		}
	}
	return false
}
