// Package config provides YAML-based configuration for the termpong
// platform. Only the platform surface is configurable: the event cadence,
// the match database and the SSH server. Physics constants live in the
// engine and are fixed at compile time.
package config

// Config is the top-level platform configuration.
type Config struct {
	// TickRate is the simulation cadence in ticks per second. Each tick
	// drives one computer-paddle step and one ball step.
	TickRate int `yaml:"tick_rate"`

	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
}

// DatabaseConfig locates the match history database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig holds SSH server settings for remote play.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
