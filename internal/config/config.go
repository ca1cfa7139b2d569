package config

import "github.com/dagu-org/psig/internal/signal"

// Config holds the resolved settings of the psig command line tool.
type Config struct {
	// Debug enables debug level logging.
	Debug bool
	// LogFormat is "text" or "json".
	LogFormat string
	// QueueSize is the capacity of the signal delivery channel.
	QueueSize int
	Metrics   Metrics
	Watch     Watch

	// ConfigFileUsed is the absolute path of the file that was read, if any.
	ConfigFileUsed string
	// Warnings collects non-fatal problems found while loading.
	Warnings []string
}

// Metrics configures the Prometheus endpoint of the watch command.
type Metrics struct {
	// Addr is the listen address. Empty disables the endpoint.
	Addr string
}

// Watch configures the watch command.
type Watch struct {
	// StopOn lists the signals that end a watch session.
	StopOn []signal.Signal
}
