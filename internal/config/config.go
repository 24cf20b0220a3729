package config

import "time"

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; must be provided via flag or environment.
	DefaultDatabaseURL = ""

	// DefaultLogLevel is used when neither flag nor environment sets one.
	DefaultLogLevel = "info"

	// ShutdownTimeout bounds graceful shutdown of the server and the notifier.
	ShutdownTimeout = 10 * time.Second
)
