//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"pixelsand/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textBright      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim         = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectionColor  = color.RGBA{R: 240, G: 240, B: 250, A: 255}
)

// Panel renders the material selector, status lines and parameter controls to
// the right of the simulation view.
type Panel struct {
	*panelState
	sim core.Sim

	panel        *ebiten.Image
	lastHeight   int
	panelOffsetX int
}

// NewPanel constructs a panel for sim offering the given materials.
func NewPanel(sim core.Sim, width int, materials []Material) *Panel {
	return &Panel{panelState: newPanelState(sim, width, materials), sim: sim}
}

// SetStatus replaces the status block. Extra lines are dropped.
func (p *Panel) SetStatus(lines ...string) {
	if p == nil {
		return
	}
	p.setStatus(lines...)
}

// Update refreshes parameter values and handles clicks. It reports whether
// the current left click landed on the panel.
func (p *Panel) Update(panelOffsetX int) bool {
	if p == nil {
		return false
	}
	p.panelOffsetX = panelOffsetX
	if provider, ok := p.sim.(parameterProvider); ok {
		p.refresh(provider.Parameters())
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	}
	return p.click(mx-panelOffsetX, my)
}

// Draw paints the panel anchored at offsetX.
func (p *Panel) Draw(screen *ebiten.Image, offsetX, scale int) {
	if p == nil || p.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := p.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if p.panel == nil || p.lastHeight != height {
		p.panel = ebiten.NewImage(p.width, height)
		p.lastHeight = height
	}
	p.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	text.Draw(p.panel, p.title, face, panelPadding, panelPadding+headerBaseline-6, textBright)
	p.drawSwatches()
	for i, line := range p.status {
		text.Draw(p.panel, line, face, panelPadding, p.statusTop()+i*statusLeading, textDim)
	}
	p.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawSwatches() {
	for i, r := range p.swatches {
		m := p.materials[i]
		vector.DrawFilledRect(p.panel, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), m.Color, false)
		if i == p.selected {
			vector.StrokeRect(p.panel, float32(r.Min.X)-2, float32(r.Min.Y)-2, float32(r.Dx())+4, float32(r.Dy())+4, 2, selectionColor, false)
		}
	}
	if m, ok := p.Selected(); ok && len(p.swatches) > 0 {
		last := p.swatches[len(p.swatches)-1]
		text.Draw(p.panel, m.Name, basicfont.Face7x13, panelPadding, last.Max.Y+sectionGap, textBright)
	}
}

func (p *Panel) drawControls() {
	face := basicfont.Face7x13
	for i := range p.controls {
		state := &p.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(p.panel, state.control.Label, face, panelPadding, labelY, textBright)

		valueColor := textBright
		if !state.hasValue {
			valueColor = textDim
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(p.panel, state.value, face, valueX, labelY, valueColor)

		p.drawButton(state.minusRect, "-", p.canAdjust(state, -1))
		p.drawButton(state.plusRect, "+", p.canAdjust(state, 1))
	}
}

func (p *Panel) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(p.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, fg)
}
