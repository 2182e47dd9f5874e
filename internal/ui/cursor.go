//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Cursor outlines the brush footprint under the mouse while it hovers the
// simulation view.
type Cursor struct {
	gridW, gridH int
	scale        int
	visible      bool
}

// NewCursor constructs a cursor overlay for a grid of the given size.
func NewCursor(gridW, gridH, scale int) *Cursor {
	if scale <= 0 {
		scale = 1
	}
	return &Cursor{gridW: gridW, gridH: gridH, scale: scale, visible: true}
}

// Toggle shows or hides the outline.
func (c *Cursor) Toggle() { c.visible = !c.visible }

// Draw strokes a circle matching the brush size around the hovered cell.
func (c *Cursor) Draw(screen *ebiten.Image, brush int, tint color.RGBA) {
	if c == nil || !c.visible {
		return
	}
	mx, my := ebiten.CursorPosition()
	gx, gy, ok := GridCell(mx, my, c.gridW, c.gridH, c.scale)
	if !ok {
		return
	}
	cx := (float32(gx) + 0.5) * float32(c.scale)
	cy := (float32(gy) + 0.5) * float32(c.scale)
	r := BrushRadius(brush) * float32(c.scale)
	outline := color.RGBA{R: tint.R, G: tint.G, B: tint.B, A: 0xc0}
	vector.StrokeCircle(screen, cx, cy, r, 1, outline, true)
}
