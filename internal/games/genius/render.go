package genius

import (
	"fmt"

	"github.com/vovakirdan/tui-genius/internal/core"
)

// Visual characters for rendering
const (
	litChar   = '█'
	unlitChar = '░'
)

// tileColors are the colors tiles flash with, in board order.
var tileColors = [TileCount]core.Color{
	core.ColorBlue,
	core.ColorRed,
	core.ColorYellow,
	core.ColorPurple,
	core.ColorGreen,
	core.ColorGray,
	core.ColorOrange,
	core.ColorBlack,
	core.ColorPink,
}

// TileColor returns the color of the given tile.
func TileColor(tile int) core.Color {
	if tile < 0 || tile >= TileCount {
		return core.ColorDefault
	}
	return tileColors[tile]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderStatus(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, the level label and the feedback message.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "G E N I U S", core.ColorBrightWhite)
	dst.DrawTextCentered(1, g.Difficulty().Label())

	if g.message == "" {
		return
	}
	color := core.ColorGreen
	if g.phase == PhaseFailed {
		color = core.ColorRed
	}
	dst.DrawTextCenteredColored(2, g.message, color)
}

// renderBoard draws the nine tiles.
func (g *Game) renderBoard(dst *core.Screen) {
	active := g.Active()
	for i, r := range g.layout.tiles {
		border := core.ColorGray
		fill, fillColor := unlitChar, core.ColorLightGray
		if active[i] {
			border = tileColors[i]
			fill, fillColor = litChar, tileColors[i]
		}

		dst.DrawBox(r, border)
		dst.DrawRect(r.Inset(1), fill, fillColor)
		dst.Set(r.X+2, r.Y, rune('1'+i))
	}
}

// renderStatus draws the round counter and what the player should do.
func (g *Game) renderStatus(dst *core.Screen) {
	y := g.screenH - 1
	left := fmt.Sprintf("Round: %d  Best: %d", g.rounds, g.best)
	dst.DrawText(1, y, left)

	var right string
	switch g.phase {
	case PhaseIdle:
		right = "Press Enter to start"
	case PhasePlayback:
		right = fmt.Sprintf("Watch... %d/%d", g.playback.Position()+1, len(g.sequence))
	case PhaseInput:
		right = fmt.Sprintf("Your turn: %d/%d", len(g.input), len(g.sequence))
	case PhaseAdvance:
		right = "Round complete"
	case PhaseFailed:
		right = "Restarting..."
	}
	if g.phase != PhaseIdle {
		right = fmt.Sprintf("%s  Speed: %dms", right, g.speed.Milliseconds())
	}
	dst.DrawText(g.screenW-len(right)-1, y, right)
}

// renderOverlays draws prompts on top of the board.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx := g.layout.board.X + g.layout.board.W/2
	cy := g.layout.board.Y + g.layout.board.H/2

	switch {
	case g.confirming:
		g.drawOverlay(dst, cx, cy, "Restart game", "Do you really want to restart?", "Y: Yes   N: No")
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.phase == PhaseIdle:
		g.drawOverlay(dst, cx, cy, "Watch the tiles, then repeat them", "Press Enter to start")
	case g.phase == PhaseFailed:
		g.drawOverlay(dst, cx, cy, "WRONG!", fmt.Sprintf("Rounds completed: %d", g.rounds), "The game will restart")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "1-9/Click: Tap | Enter: Start | R: Restart | P: Pause | Q: Quit"
}
