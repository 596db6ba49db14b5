package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termpong/internal/engine"
)

// Visual characters for rendering
const (
	paddleChar = '█'
	ballChar   = '●'
	netChar    = '│'
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorBall:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorPaddle:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorNet:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	ColorScore:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape
// sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// projectX maps a canvas x-coordinate to a cell column.
func projectX(x float64, screenW int) int {
	return int(x * float64(screenW) / engine.CanvasWidth)
}

// projectY maps a canvas y-coordinate to a cell row.
func projectY(y float64, screenH int) int {
	return int(y * float64(screenH) / engine.CanvasHeight)
}

// drawState paints a game state into the screen buffer.
func drawState(dst *Screen, st engine.State) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()

	// Center line (net)
	centerX := w / 2
	for y := 1; y < h-1; y += 2 {
		dst.Set(centerX, y, netChar, ColorNet)
	}

	drawPaddle(dst, st.LeftPaddle)
	drawPaddle(dst, st.RightPaddle)

	dst.Set(projectX(st.Ball.Pos.X, w), projectY(st.Ball.Pos.Y, h), ballChar, ColorBall)

	// Scores: CPU on the left half, player on the right half.
	dst.DrawText(centerX-6, 0, fmt.Sprintf("%d", st.CPUScore), ColorScore)
	dst.DrawText(centerX+5, 0, fmt.Sprintf("%d", st.UserScore), ColorScore)
	dst.DrawText(1, 0, "CPU", ColorDefault)
	dst.DrawText(w-4, 0, "YOU", ColorDefault)

	if st.GameOver {
		msg := "CPU WINS!"
		if st.UserScore > st.CPUScore {
			msg = "YOU WIN!"
		}
		subtitle := fmt.Sprintf("%d - %d  |  Press R to restart", st.UserScore, st.CPUScore)
		drawCenteredMessage(dst, msg, subtitle)
	}
}

// drawPaddle paints a paddle as a vertical bar of projected height.
func drawPaddle(dst *Screen, p engine.Paddle) {
	x := projectX(p.Pos.X, dst.Width())
	top := projectY(p.Pos.Y, dst.Height())
	cells := projectY(p.Height, dst.Height())
	if cells < 1 {
		cells = 1
	}
	for i := 0; i < cells; i++ {
		dst.Set(x, top+i, paddleChar, ColorPaddle)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := len(title) + 4
	if len(subtitle)+4 > boxW {
		boxW = len(subtitle) + 4
	}
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, ColorDefault)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, ColorScore)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, ColorDefault)
}
