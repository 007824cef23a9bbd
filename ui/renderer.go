package ui

import (
	"fmt"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"grid-snake/game/types"
)

const (
	WindowTitle = "Snake!"

	AppleImageFile    = "apple.png"
	BodyImageFile     = "body.png"
	HeadImageFile     = "head.png"
	GameOverImageFile = "game_over.png"
)

type sprites struct {
	apple    rl.Texture2D
	body     rl.Texture2D
	head     rl.Texture2D
	gameOver rl.Texture2D
}

// WindowRenderer draws snapshots into the raylib window. DrawFrame only keeps
// the snapshot; Present paints it and must run once per frame on the window
// thread.
type WindowRenderer struct {
	grid    types.Grid
	sprites sprites
	frame   types.Snapshot
	ready   bool
	title   string
}

// NewWindowRenderer loads the sprites from assetDir. The window must already
// be open. Missing sprites fall back to flat shapes.
func NewWindowRenderer(grid types.Grid, assetDir string) *WindowRenderer {
	r := &WindowRenderer{grid: grid}
	cell := int32(grid.CellSize)
	overlay := int32(min(grid.PixelWidth(), grid.PixelHeight()))

	load := func(name string, w, h int32) rl.Texture2D {
		tex, err := loadSprite(filepath.Join(assetDir, name), w, h)
		if err != nil {
			glog.Warningf("sprite %s unavailable, drawing shapes instead: %v", name, err)
		}
		return tex
	}
	r.sprites.apple = load(AppleImageFile, cell, cell)
	r.sprites.body = load(BodyImageFile, cell, cell)
	r.sprites.head = load(HeadImageFile, cell, cell)
	r.sprites.gameOver = load(GameOverImageFile, overlay, overlay)
	return r
}

func loadSprite(path string, w, h int32) (rl.Texture2D, error) {
	if _, err := os.Stat(path); err != nil {
		return rl.Texture2D{}, errors.Wrapf(err, "sprite %s", path)
	}
	img := rl.LoadImage(path)
	if img == nil || img.Width == 0 || img.Height == 0 {
		return rl.Texture2D{}, errors.Errorf("decode %s", path)
	}
	defer rl.UnloadImage(img)
	rl.ImageResize(img, w, h)
	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return rl.Texture2D{}, errors.Wrapf(errTexture, "upload %s", path)
	}
	return tex, nil
}

var errTexture = errors.New("texture upload failed")

// DrawFrame implements game.Renderer.
func (r *WindowRenderer) DrawFrame(s types.Snapshot) {
	r.frame = s
	r.ready = true

	title := fmt.Sprintf("%s  length %d  best %d", WindowTitle, s.Length(), s.Best)
	if s.Phase == types.GameOver {
		title = fmt.Sprintf("%s  %s - press Esc", WindowTitle, endText(s.Cause))
	}
	if title != r.title {
		rl.SetWindowTitle(title)
		r.title = title
	}
}

// Present paints the latest snapshot.
func (r *WindowRenderer) Present() {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)
	if !r.ready {
		return
	}
	s := r.frame
	cell := int32(r.grid.CellSize)

	r.drawSprite(r.sprites.apple, s.Food, func(x, y int32) {
		rl.DrawCircle(x+cell/2, y+cell/2, float32(cell)/2, rl.Red)
	})
	for i := len(s.Body) - 1; i >= 1; i-- {
		r.drawSprite(r.sprites.body, s.Body[i], func(x, y int32) {
			rl.DrawCircle(x+cell/2, y+cell/2, float32(cell)/2, rl.DarkGreen)
		})
	}
	if len(s.Body) > 0 {
		r.drawSprite(r.sprites.head, s.Head(), func(x, y int32) {
			rl.DrawCircle(x+cell/2, y+cell/2, float32(cell)/2, rl.Green)
		})
	}

	if s.Phase == types.GameOver {
		r.drawOverlay(s.Cause)
	}
}

func (r *WindowRenderer) drawSprite(tex rl.Texture2D, p types.Position, fallback func(x, y int32)) {
	x, y := int32(p.X), int32(p.Y)
	if tex.ID == 0 {
		fallback(x, y)
		return
	}
	rl.DrawTexture(tex, x, y, rl.White)
}

func (r *WindowRenderer) drawOverlay(cause types.EndCause) {
	width := int32(r.grid.PixelWidth())
	height := int32(r.grid.PixelHeight())
	if tex := r.sprites.gameOver; tex.ID != 0 {
		rl.DrawTexture(tex, (width-tex.Width)/2, (height-tex.Height)/2, rl.White)
		return
	}
	rl.DrawRectangle(0, 0, width, height, rl.Fade(rl.Black, 0.6))
	fontSize := height / 12
	text := endText(cause)
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (width-textWidth)/2, (height-fontSize)/2, fontSize, rl.White)
}

// Unload releases the sprite textures.
func (r *WindowRenderer) Unload() {
	for _, tex := range []rl.Texture2D{r.sprites.apple, r.sprites.body, r.sprites.head, r.sprites.gameOver} {
		if tex.ID != 0 {
			rl.UnloadTexture(tex)
		}
	}
	r.sprites = sprites{}
}

func endText(cause types.EndCause) string {
	if cause == types.WinCause {
		return "YOU WIN"
	}
	return "GAME OVER"
}
