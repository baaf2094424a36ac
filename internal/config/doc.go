// Package config loads, normalizes, and validates livepipe configuration data.
//
// It supplies repository defaults, reads an optional TOML file, and honours
// the LIVEPIPE_QUEUE_SIZE and LIVEPIPE_RESTART_DELAY environment overrides.
// The queue size is deliberately carried as an opaque token: it is spliced
// into the worker's argument template verbatim, so a bad value surfaces as a
// worker launch failure rather than a config error.
//
// Always obtain settings through Load so downstream code receives expanded
// paths, canonical log formats, and clear validation errors.
package config
