// Package config loads the canonical scene description (hall,
// infrastructure, requirements, weights, solver settings) from the
// commented JSON-like configuration format described in spec §6, and
// loads standalone color-table overrides in YAML.
package config
