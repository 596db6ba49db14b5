// termpong is a terminal Pong match against a scripted opponent.
//
// Usage:
//
//	termpong play             - Play a match in the current terminal
//	termpong serve            - Start SSH server for remote play
//	termpong scores           - Show match history and win/loss record
//
// Global flags:
//
//	--fps <rate>     - Tick rate (default: from config, 70)
//	--seed <value>   - RNG seed for a reproducible match (0 = random)
//	--db <path>      - Match database path (default: from config)
//	--config <path>  - Platform config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termpong/internal/config"
)

var (
	// Global flags. Zero values mean "use the config file".
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termpong",
	Short: "Pong in your terminal - first to 7 wins",
	Long: `termpong is a terminal Pong: you control the right paddle, a scripted
opponent tracks the ball on the left. First side to 7 points wins.

Available commands:
  play     - Play a match in the current terminal
  serve    - Start SSH server for remote play
  scores   - Show match history and win/loss record

Examples:
  termpong play
  termpong play --seed 42
  termpong serve --ssh :2222
  termpong scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match database (empty = use config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to platform config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig resolves the platform config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Database.Path = flagDBPath
	}
	return cfg, nil
}
