// Package config loads, normalizes, and validates glint configuration data.
//
// It supplies repository defaults, expands tilde paths, reads TOML files,
// and honours environment fallbacks such as GLINT_LOG_LEVEL. Obtain settings
// through this package so downstream code receives sanitized paths, canonical
// level names, and clear validation errors.
package config
