package configs

// NATS configures event publishing. Events are dropped when URL is empty.
type NATS struct {
	URL string `env:"URL"`
}
