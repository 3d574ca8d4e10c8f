// Package config provides functionality for loading and managing application configuration.
//
// The REST API reads a TOML file (see InitializeRestConfig); the CLI only needs logger
// settings, which it derives from the environment. Every settings struct validates itself
// with go-playground/validator before use.
package config
