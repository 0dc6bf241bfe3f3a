package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
)

const (
	cellWidth = 3 // Glyph plus a marker column on each side
	hudHeight = 3
)

// layout positions the board below the HUD, centered horizontally.
func (g *Game) layout() {
	w := g.rules.Width
	innerW := w * cellWidth
	outerW := innerW + 2
	outerH := w + 2

	minW := core.Max(outerW, 32)
	minH := hudHeight + outerH + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH

	x := (g.screenW - outerW) / 2
	y := hudHeight
	g.board = core.NewRect(x+1, y+1, innerW, w)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws title, time, score and moves above the board.
func (g *Game) renderHUD(dst *core.Screen) {
	left := g.board.X - 1
	right := g.board.Right() + 1

	title := g.Title()
	dst.DrawTextColored(left+(right-left-len(title))/2, 0, title, core.ColorBrightWhite)

	timeStr := "Time " + formatClock(g.snap.RemainingSeconds)
	timeColor := core.ColorDefault
	if g.snap.RemainingSeconds <= 10 {
		timeColor = core.ColorBrightRed
	}
	dst.DrawTextColored(left, 1, timeStr, timeColor)

	scoreStr := fmt.Sprintf("Score %d", g.snap.Score)
	dst.DrawText(right-len(scoreStr), 1, scoreStr)

	info := fmt.Sprintf("Moves %d", g.snap.Moves)
	if g.snap.LastCascade > 1 {
		info += fmt.Sprintf("  Combo x%d", g.snap.LastCascade)
	}
	dst.DrawText(left+(right-left-len(info))/2, 2, info)
}

// renderBoard draws the framed grid of tile glyphs with cursor and
// selection markers.
func (g *Game) renderBoard(dst *core.Screen) {
	dst.DrawBox(core.NewRect(g.board.X-1, g.board.Y-1, g.board.W+2, g.board.H+2))

	w := g.snap.Width
	for i, t := range g.snap.Board {
		row, col := i/w, i%w
		x := g.board.X + col*cellWidth
		y := g.board.Y + row

		if !t.IsEmpty() {
			kind := g.cfg.Board.Palette[int(t)-1]
			dst.SetColored(x+1, y, kind.GlyphRune(), kind.ColorValue())
		}

		switch {
		case i == g.snap.Selection:
			dst.SetColored(x, y, '<', core.ColorBrightWhite)
			dst.SetColored(x+2, y, '>', core.ColorBrightWhite)
		case i == g.cursor && !g.snap.Ended():
			dst.SetColored(x, y, '[', core.ColorGray)
			dst.SetColored(x+2, y, ']', core.ColorGray)
		}
	}
}

// renderOverlays draws pause and end-of-session boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.board.Center()

	if g.snap.Ended() {
		g.drawOverlay(dst, cx, cy,
			"TIME'S UP",
			fmt.Sprintf("Score: %d", g.snap.Score),
			fmt.Sprintf("Moves: %d  Best combo: x%d", g.snap.Moves, g.snap.BestCascade),
			"Press R to restart")
		return
	}

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space/Enter/Click: Pick | P: Pause | R: Restart | Q: Quit"
}

// formatClock renders seconds as m:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
