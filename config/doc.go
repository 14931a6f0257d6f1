// Package config loads linqctl settings.
//
// Values come from a config.yml file, a .env file, and environment variables
// carrying the application prefix, in increasing order of precedence:
//
//	LINQCTL_LOGGING_LEVEL=debug
//	LINQCTL_TRACING_ENABLED=true
//
// # Usage
//
//	cfg, err := config.Load("linqctl", config.WithConfigFile(path))
package config
