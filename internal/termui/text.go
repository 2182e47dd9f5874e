package termui

import (
	"bytes"
	"image/color"

	"github.com/logrusorgru/aurora"

	"pixelsand/internal/sims/sandbox"
)

var glyphs = map[sandbox.ID]string{
	sandbox.Wall:  "#",
	sandbox.Sand:  ":",
	sandbox.Water: "~",
	sandbox.Oil:   "o",
	sandbox.Fire:  "^",
}

const (
	filledGlyph = "█"
	emptyGlyph  = " "
	cropNotice  = "The field is larger than the viewing area"
)

// cubeLevels are the channel intensities of the xterm 6x6x6 color cube.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// ansi256 returns the xterm-256 color cube index closest to c.
func ansi256(c color.RGBA) uint8 {
	return uint8(16 + 36*nearestLevel(c.R) + 6*nearestLevel(c.G) + nearestLevel(c.B))
}

func nearestLevel(v uint8) int {
	best, bestDist := 0, 256
	for i, level := range cubeLevels {
		d := int(v) - level
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// TextRenderer turns the world's render feed into terminal text.
type TextRenderer struct {
	au     aurora.Aurora
	colors bool
}

// NewTextRenderer returns a renderer. With colors enabled every material is
// drawn as a solid block in its palette color; otherwise each material gets
// its own ASCII glyph.
func NewTextRenderer(colors bool) *TextRenderer {
	return &TextRenderer{au: aurora.NewAurora(colors), colors: colors}
}

// Colors reports whether the renderer emits ANSI escapes.
func (r *TextRenderer) Colors() bool { return r.colors }

func (r *TextRenderer) glyph(p sandbox.Pixel) string {
	if r.Colors() {
		return r.au.Index(ansi256(p.Color), filledGlyph).String()
	}
	if g, ok := glyphs[p.ID]; ok {
		return g
	}
	return "?"
}

// Render draws at most maxW columns and maxH rows of the world, top-left
// aligned. Non-positive limits mean unlimited. When the grid does not fit,
// the last row is replaced with a notice.
func (r *TextRenderer) Render(w *sandbox.World, maxW, maxH int) string {
	size := w.Size()
	cols, rows := size.W, size.H
	if maxW > 0 && cols > maxW {
		cols = maxW
	}
	crop := maxH > 0 && rows > maxH
	if crop {
		rows = maxH
	}
	crop = crop || cols < size.W

	lines := make([][]string, rows)
	for y := range lines {
		lines[y] = make([]string, cols)
		for x := range lines[y] {
			lines[y][x] = emptyGlyph
		}
	}
	for p := range w.RenderFeed() {
		if p.Y >= rows {
			break
		}
		if p.X < cols {
			lines[p.Y][p.X] = r.glyph(p)
		}
	}

	var b bytes.Buffer
	for y, line := range lines {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == rows-1 {
			b.WriteString(r.au.Red(cropNotice).BgBlack().String())
			break
		}
		for _, g := range line {
			b.WriteString(g)
		}
	}
	return b.String()
}

// Swatch renders a short colored sample of a material for legends.
func (r *TextRenderer) Swatch(m sandbox.Material) string {
	if r.Colors() {
		return r.au.Index(ansi256(m.Color), filledGlyph+filledGlyph).String() + " " + m.Name
	}
	g, ok := glyphs[m.ID]
	if !ok {
		g = "?"
	}
	return g + " " + m.Name
}
