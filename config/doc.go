// Package config loads and validates the service configuration from a
// YAML file and environment variables, with working defaults for every
// key. The inference section bounds the simulated processing delay and
// the confidence draw of the mock identification path.
package config
