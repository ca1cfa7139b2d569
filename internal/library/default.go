package library

import "sync"

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the process-wide Library backed by the OS source.
func Default() *Library {
	defaultOnce.Do(func() {
		defaultLib = New()
	})
	return defaultLib
}

// Init initializes the process-wide Library.
func Init() bool { return Default().Init() }

// IsRunning reports whether the process-wide Library is running.
func IsRunning() bool { return Default().IsRunning() }

// Shutdown shuts the process-wide Library down.
func Shutdown() { Default().Shutdown() }
