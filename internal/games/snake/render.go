package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // Status line plus separator
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
)

// RequiredScreen returns the smallest screen that fits a board of the given size.
func RequiredScreen(width, height int) (w, h int) {
	return width*cellWidth + 2, height + 2 + hudHeight
}

// Render draws st into dst. The buffer is cleared first.
func Render(dst *core.Screen, st State, paused bool) {
	dst.Clear()
	renderHUD(dst, st)

	needW, needH := RequiredScreen(st.Width, st.Height)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	play := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	frame := play.Centered(needW, needH-hudHeight)
	dst.DrawBox(frame, core.ColorGray)
	board := frame.Inset(1)

	if st.HasFood {
		drawCell(dst, board, st.Food, core.ColorRed)
	}
	// Tail first so the head stays on top.
	for i := len(st.Snake) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		drawCell(dst, board, st.Snake[i], color)
	}

	switch {
	case st.Status == StatusNotStarted:
		renderOverlay(dst, "SNAKE GAME", "Press SPACE to Start", "Use Arrow Keys to Control")
	case st.Status == StatusGameOver:
		renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", st.Score), "Press SPACE to Restart")
	case st.Status == StatusBoardFull:
		renderOverlay(dst, "BOARD FULL", fmt.Sprintf("Score: %d", st.Score), "Press SPACE to Restart")
	case paused:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func drawCell(dst *core.Screen, board core.Rect, p Point, color core.Color) {
	x := board.X + p.X*cellWidth
	y := board.Y + p.Y
	for i := range cellWidth {
		dst.SetColored(x+i, y, '█', color)
	}
}

func renderHUD(dst *core.Screen, st State) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", st.Score, st.Len())
	dst.DrawText(0, 0, hud, core.ColorWhite)
	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centred box with one line of text per argument.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	box := dst.Bounds().Centered(maxLen+4, len(lines)*2+1)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorYellow
		}
		dst.DrawTextCentered(box, box.Y+1+i*2, l, color)
	}
}
