package config

import (
	_ "embed"
)

// DefaultConfigYAML is the embedded default configuration. External files
// and environment variables override it.
//
//go:embed default.yaml
var DefaultConfigYAML []byte
