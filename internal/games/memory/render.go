package memory

import (
	"fmt"
	"unicode/utf8"

	"github.com/iamraziq/glitch-memory/internal/core"
	memcore "github.com/iamraziq/glitch-memory/internal/games/memory/core"
)

const (
	cardW     = 5
	cardH     = 3
	hudHeight = 2
	footerH   = 2
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	grid := g.engine.Grid()
	if grid == nil {
		return
	}

	area, ok := g.boardRect(dst, grid)
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	pending := make(map[int]bool)
	for _, v := range g.engine.Pending() {
		pending[v.Index] = true
	}

	cursor := g.CursorIndex()
	spacing := g.cfg.Board.Spacing
	for _, c := range grid.Cards() {
		row, col := c.Index()/grid.Cols(), c.Index()%grid.Cols()
		r := core.NewRect(
			area.X+col*(cardW+spacing),
			area.Y+row*(cardH+spacing/2),
			cardW, cardH,
		)
		g.renderCard(dst, r, c, c.Index() == cursor, pending[c.Index()])
	}

	g.renderFooter(dst)

	switch g.engine.State() {
	case memcore.StatePreviewing:
		dst.DrawTextCentered(area.Y-1, "Memorize the board!", core.ColorBrightYellow)
	case memcore.StateComplete:
		g.renderOverlay(dst, "Board cleared!",
			fmt.Sprintf("Score %d in %d moves. R for a new board", g.engine.Score(), g.engine.Moves()))
	default:
		if g.paused {
			g.renderOverlay(dst, "Paused", "Press P to continue")
		}
	}
}

// boardRect centers the board below the HUD. ok is false when it does
// not fit.
func (g *Game) boardRect(dst *core.Screen, grid *memcore.Grid) (core.Rect, bool) {
	spacing := g.cfg.Board.Spacing
	w := grid.Cols()*cardW + (grid.Cols()-1)*spacing
	h := grid.Rows()*cardH + (grid.Rows()-1)*(spacing/2)

	avail := dst.Height() - hudHeight - footerH - 1
	if w > dst.Width() || h > avail {
		return core.Rect{}, false
	}

	x := (dst.Width() - w) / 2
	y := hudHeight + 1 + (avail-h)/2
	return core.NewRect(x, y, w, h), true
}

func (g *Game) renderCard(dst *core.Screen, r core.Rect, c *memcore.Card, selected, pending bool) {
	frame := core.ColorGray
	face := core.ColorWhite
	glyph := '░'

	switch {
	case c.IsMatched():
		frame, face = core.ColorGreen, core.ColorGreen
		if g.board.popped(c.Index()) {
			frame, face = core.ColorBrightGreen, core.ColorBrightGreen
		}
		glyph = g.symbol(c.ID())
	case c.IsFlipped():
		frame = core.ColorWhite
		if pending {
			frame = core.ColorYellow
		}
		glyph = g.symbol(c.ID())
	default:
		face = core.ColorGray
	}
	if selected {
		frame = core.ColorBrightMagenta
	}

	dst.DrawBox(r, frame)
	inner := r.Inset(1)
	if glyph == '░' {
		dst.FillRect(inner, glyph, face)
		return
	}
	dst.FillRect(inner, ' ', face)
	dst.SetColored(inner.X+inner.W/2, inner.Y, glyph, face)
}

// fallbackFaces covers pair ids past the configured symbols.
const fallbackFaces = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// faceTable maps pair ids to glyphs: the configured symbols first, then
// fallback letters the symbols do not already use, so no two pairs of a
// board share a face.
func faceTable(symbols []string, pairs int) []rune {
	faces := make([]rune, 0, pairs)
	used := make(map[rune]bool, pairs)
	for _, s := range symbols {
		if len(faces) == pairs {
			break
		}
		r, _ := utf8.DecodeRuneInString(s)
		if s == "" || used[r] {
			continue
		}
		faces = append(faces, r)
		used[r] = true
	}
	for _, r := range fallbackFaces {
		if len(faces) == pairs {
			break
		}
		if !used[r] {
			faces = append(faces, r)
			used[r] = true
		}
	}
	return faces
}

// symbol returns the face glyph for a pair id.
func (g *Game) symbol(id int) rune {
	if id >= 0 && id < len(g.faces) {
		return g.faces[id]
	}
	return '?'
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Pairs: %d/%d  Moves: %d",
		g.Title(), g.engine.Score(), g.engine.Matches(), g.engine.Pairs(), g.engine.Moves())
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - footerH
	if g.hud.banner != "" {
		dst.DrawTextCentered(y, g.hud.banner, core.ColorMagenta)
	}
	dst.DrawTextCentered(y+1, "arrows/hjkl move  space flip  r new board  p pause  q quit", core.ColorGray)
}

// renderOverlay draws a centered two-line box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, line2, core.ColorWhite)
}
