package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termpong/internal/platform/tui"
	"github.com/vovakirdan/termpong/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show match history and win/loss record",
	Long: `Display recent match results and the all-time win/loss record.

Examples:
  termpong scores
  termpong scores --plain   # print instead of the interactive view`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the match history as a plain table.
func printScores(store *storage.Store) {
	matches, err := store.RecentMatches(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	rec, err := store.PlayerRecord()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving record: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Match History  (%dW - %dL)\n", rec.Wins, rec.Losses)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termpong play' to start one!")
		return
	}

	fmt.Printf("  %-18s  %-5s  %-5s  %-8s  %s\n", "Date", "You", "CPU", "Winner", "Time")
	fmt.Printf("  %-18s  %-5s  %-5s  %-8s  %s\n", "----", "---", "---", "------", "----")

	for _, m := range matches {
		fmt.Printf("  %-18s  %-5d  %-5d  %-8s  %ds\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.UserScore, m.CPUScore, m.Winner, m.DurationSecs)
	}
}
