// Package config loads, validates and persists the daemon settings.
//
// Settings live in a YAML file; the scripture API key is taken from the
// environment (optionally seeded from a .env file) so it never ends up in
// the settings file on disk.
package config
