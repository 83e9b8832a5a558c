// Package config loads the runtime configuration of the lending desk and
// sets up the OpenTelemetry providers used when observability is enabled.
//
// Configuration comes from LIBRARY_* environment variables with defaults.
// Command line flags bound with BindFlags override the environment.
package config
