// Package env keeps names of environment variables with special significance to
// mdkit.
package env

// Environment variables with special significance to mdkit.
const (
	// Path of the configuration file used when -config is not given.
	MDKIT_CONFIG = "MDKIT_CONFIG"
)
