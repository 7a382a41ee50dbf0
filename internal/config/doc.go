// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It gives the
// logger and the classroom service type-safe access to their settings while
// keeping configuration details separate from business logic.
package config
