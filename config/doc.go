// Package config loads loop configuration from TOML files and environment
// variables.
//
// Precedence, lowest to highest: built-in defaults, the TOML file, then
// PULSE_* environment variables. A missing file is not an error; the
// defaults apply.
//
// Watcher monitors the configuration file and publishes each successfully
// reloaded Config on a reactive stream, so hosts can react to configuration
// changes the same way they react to input.
package config
