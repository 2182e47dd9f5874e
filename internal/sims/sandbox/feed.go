package sandbox

import (
	"image/color"
	"iter"
)

// Pixel is one non-empty cell of the render feed.
type Pixel struct {
	X, Y  int
	ID    ID
	Color color.RGBA
}

// RenderFeed yields every non-Empty cell of the current buffer in row-major
// order. Cells holding unregistered ids are skipped. The sequence reads the
// grid lazily, so it must not be consumed while a step is running; ranging
// over it again starts from the top.
func (w *World) RenderFeed() iter.Seq[Pixel] {
	return func(yield func(Pixel) bool) {
		cells := w.cur.Cells()
		for y := 0; y < w.h; y++ {
			row := y * w.w
			for x := 0; x < w.w; x++ {
				id := ID(cells[row+x])
				if id == Empty {
					continue
				}
				m, ok := w.reg.Get(id)
				if !ok {
					continue
				}
				if !yield(Pixel{X: x, Y: y, ID: id, Color: m.Color}) {
					return
				}
			}
		}
	}
}

// Palette maps every registered id to its render color, for blitting Cells
// directly. Gaps in the id space are transparent.
func (w *World) Palette() []color.RGBA {
	all := w.reg.All()
	if len(all) == 0 {
		return nil
	}
	palette := make([]color.RGBA, int(all[len(all)-1].ID)+1)
	for _, m := range all {
		palette[m.ID] = m.Color
	}
	return palette
}

// Census counts cells per material id in the current buffer.
func (w *World) Census() map[ID]int {
	counts := make(map[ID]int)
	for _, v := range w.cur.Cells() {
		counts[ID(v)]++
	}
	return counts
}
