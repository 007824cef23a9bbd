// Package term is the tcell frontend: a renderer drawing one terminal cell per
// grid cell and the key mapping for the terminal loop.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"grid-snake/game/types"
)

const (
	headRune = 'Ö'
	bodyRune = 'O'
	foodRune = '+'
)

// Renderer draws snapshots on a tcell screen. Row 0 holds the status line and
// the framed playfield starts at row 1.
type Renderer struct {
	screen tcell.Screen
	grid   types.Grid

	borderStyle tcell.Style
	snakeStyle  tcell.Style
	foodStyle   tcell.Style
	textStyle   tcell.Style
}

func NewRenderer(screen tcell.Screen, grid types.Grid) *Renderer {
	return &Renderer{
		screen:      screen,
		grid:        grid,
		borderStyle: tcell.StyleDefault,
		snakeStyle:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
		foodStyle:   tcell.StyleDefault.Foreground(tcell.ColorRed),
		textStyle:   tcell.StyleDefault.Bold(true),
	}
}

// Transform returns the screen coordinates of a grid cell.
func (r *Renderer) Transform(c types.Cell) (int, int) {
	return 1 + c.Col, 2 + c.Row
}

// DrawFrame implements game.Renderer.
func (r *Renderer) DrawFrame(s types.Snapshot) {
	r.screen.Clear()
	r.drawBorder()

	status := fmt.Sprintf("length %d  score %d  best %d", s.Length(), s.Score, s.Best)
	r.drawText(0, 0, status, tcell.StyleDefault)

	r.drawCell(s.Food, foodRune, r.foodStyle)
	for i := len(s.Body) - 1; i >= 0; i-- {
		ch := bodyRune
		if i == 0 {
			ch = headRune
		}
		r.drawCell(s.Body[i], ch, r.snakeStyle)
	}

	if s.Phase == types.GameOver {
		midY := 2 + r.grid.Height/2
		r.drawCentered(midY-1, banner(s.Cause))
		r.drawCentered(midY+1, "esc to restart")
	}
	r.screen.Show()
}

// drawCell skips positions off the grid, such as a head that hit a wall.
func (r *Renderer) drawCell(p types.Position, ch rune, style tcell.Style) {
	c := r.grid.PixelToCell(p)
	if !r.grid.ContainsCell(c) {
		return
	}
	x, y := r.Transform(c)
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawBorder() {
	w, h := r.grid.Width, r.grid.Height
	style := r.borderStyle
	r.screen.SetContent(0, 1, '+', nil, style)
	r.screen.SetContent(1+w, 1, '+', nil, style)
	r.screen.SetContent(0, 2+h, '+', nil, style)
	r.screen.SetContent(1+w, 2+h, '+', nil, style)
	for i := 0; i < w; i++ {
		r.screen.SetContent(1+i, 1, '-', nil, style)
		r.screen.SetContent(1+i, 2+h, '-', nil, style)
	}
	for i := 0; i < h; i++ {
		r.screen.SetContent(0, 2+i, '|', nil, style)
		r.screen.SetContent(1+w, 2+i, '|', nil, style)
	}
}

func (r *Renderer) drawCentered(y int, text string) {
	x := 1 + (r.grid.Width-len(text))/2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, r.textStyle)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func banner(cause types.EndCause) string {
	if cause == types.WinCause {
		return "YOU WIN"
	}
	return "GAME OVER"
}
