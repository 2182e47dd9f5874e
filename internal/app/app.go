//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"pixelsand/internal/render"
	"pixelsand/internal/sims/sandbox"
	"pixelsand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = [...]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a sandbox world to the ebiten.Game interface.
type Game struct {
	world   *sandbox.World
	painter *render.GridPainter
	panel   *ui.Panel
	cursor  *ui.Cursor
	palette []color.RGBA

	scale      int
	panelWidth int
	brush      int
	paused     bool
	tickOnce   bool
	seed       int64
}

// New constructs a Game for the provided world.
func New(world *sandbox.World, scale, panelWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := world.Size()
	var materials []ui.Material
	for _, m := range world.Registry().Placeable() {
		materials = append(materials, ui.Material{Value: uint8(m.ID), Name: m.Name, Color: m.Color})
	}
	panel := ui.NewPanel(world, panelWidth, materials)
	for i, m := range materials {
		if sandbox.ID(m.Value) == sandbox.Sand {
			panel.Select(i)
		}
	}
	return &Game{
		world:      world,
		painter:    render.NewGridPainter(size.W, size.H),
		panel:      panel,
		cursor:     ui.NewCursor(size.W, size.H, scale),
		palette:    world.Palette(),
		scale:      scale,
		panelWidth: panelWidth,
		brush:      sandbox.DefaultBrush,
		seed:       seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()

	size := g.world.Size()
	onPanel := g.panel.Update(size.W * g.scale)
	if !onPanel {
		g.handleMouse()
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	g.panel.SetStatus(g.status()...)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.cursor.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush = sandbox.ClampBrush(g.brush + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush = sandbox.ClampBrush(g.brush - 1)
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.panel.Select(i)
		}
	}
}

// handleMouse paints the selected material with the left button and erases
// with the right while the cursor is over the grid.
func (g *Game) handleMouse() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	size := g.world.Size()
	mx, my := ebiten.CursorPosition()
	x, y, ok := ui.GridCell(mx, my, size.W, size.H, g.scale)
	if !ok {
		return
	}
	if right {
		g.world.Erase(x, y, g.brush)
		return
	}
	if m, ok := g.panel.Selected(); ok {
		g.world.Paint(x, y, g.brush, m.Value)
	}
}

func (g *Game) status() []string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s  frame %d", state, g.world.Frame()),
		fmt.Sprintf("brush %d", g.brush),
		fmt.Sprintf("burning %d", g.world.BurningCells()),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.palette, g.scale)
	tint := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if m, ok := g.panel.Selected(); ok {
		tint = m.Color
	}
	g.cursor.Draw(screen, g.brush, tint)
	g.panel.Draw(screen, g.world.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.panelWidth, s.H * g.scale
}
