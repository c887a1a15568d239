package clarity

import "time"

// Config holds the session configuration.
type Config struct {
	// ReadTimeout bounds the read half of every transaction
	ReadTimeout time.Duration

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration. 100 ms is a conservative
// response budget for the Clarity's standard run-state records.
func defaultConfig() Config {
	return Config{
		ReadTimeout: 100 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Controller.
type Option func(*Config)

// WithTimeout sets the read timeout applied to every transaction.
//
// Example:
//
//	ctrl, err := clarity.Open(0, clarity.WithTimeout(250*time.Millisecond))
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}

// WithLogger sets a logger for session operations.
//
// Example:
//
//	ctrl, err := clarity.Open(0, clarity.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
