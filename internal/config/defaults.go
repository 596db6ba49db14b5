package config

import (
	_ "embed"
)

//go:embed defaults/termpong.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		TickRate: 70,
		Database: DatabaseConfig{
			Path: "~/.termpong/matches.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
	}
}
