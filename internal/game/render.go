package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// RequiredSize returns the smallest screen that fits the board, its border and the HUD.
func (g *Game) RequiredSize() (w, h int) {
	return g.cfg.Board.Width + 2, g.cfg.Board.Height + 2 + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if err := g.Err(); err != nil {
		g.renderOverlay(dst, "Invalid configuration", err.Error())
		return
	}

	snap := g.Snapshot()
	g.renderHUD(dst, snap)

	if w, h := g.RequiredSize(); dst.Width() < w || dst.Height() < h {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	area := g.boardArea(dst)
	dst.DrawBox(area, core.ColorGray)

	// Board cell (x, y) is drawn at area origin + (x, y); the border takes offset 0
	if snap.HasApple {
		dst.SetCell(area.X+snap.Apple.X, area.Y+snap.Apple.Y, '●', core.ColorBrightRed)
	}
	for i := len(snap.Body) - 1; i >= 0; i-- {
		p := snap.Body[i]
		if !p.In(snap.Board) {
			continue
		}
		if i == 0 {
			dst.SetCell(area.X+p.X, area.Y+p.Y, headRune(snap.Heading), core.ColorBrightGreen)
		} else {
			dst.SetCell(area.X+p.X, area.Y+p.Y, '█', core.ColorGreen)
		}
	}

	switch {
	case snap.Outcome == snake.BoardFull:
		g.renderOverlay(dst, "Board full!", fmt.Sprintf("Score: %d - R to restart", snap.Score))
	case snap.Outcome.IsTerminal():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("%s - R to restart", snap.Outcome.Reason()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardArea returns the bordered board rectangle centered below the HUD.
func (g *Game) boardArea(dst *core.Screen) core.Rect {
	w, h := g.cfg.Board.Width+2, g.cfg.Board.Height+2
	x := (dst.Width() - w) / 2
	y := hudHeight + (dst.Height()-hudHeight-h)/2
	return core.NewRect(x, y, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap snake.Snapshot) {
	hud := fmt.Sprintf(" Snake - Score: %d  Length: %d  Best: %d  Round: %d",
		snap.Score, snap.Len(), g.BestScore(), g.Round())
	dst.DrawText(0, 0, hud, core.ColorYellow)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

func headRune(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '▲'
	case core.DirDown:
		return '▼'
	case core.DirLeft:
		return '◀'
	default:
		return '▶'
	}
}
