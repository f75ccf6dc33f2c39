// Package config loads and validates the settings of the REST API and the
// deploy CLI.
//
// Settings come from a YAML file, optionally layered with .env files and
// overridden by environment variables, and are validated before use.
package config
