// Package tui provides the Bubble Tea integration for termpong. It owns
// the terminal loop, the event cadence, key mapping, rendering and the
// SSH serving surface; the game rules live in the engine package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// fallbackTickRate is used when the configured rate is not positive.
const fallbackTickRate = 70

// TickMsg drives one simulation step: the model folds the computer
// paddle move and the ball step on every tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate in ticks per
// second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = fallbackTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
