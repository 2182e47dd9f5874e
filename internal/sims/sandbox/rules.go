package sandbox

import "pixelsand/internal/core"

// updatePowder drops a grain straight down into anything lighter, otherwise
// slides it into a lighter diagonal-below cell.
func updatePowder(w *World, rng core.Rand, x, y int) {
	self, ok := w.Material(x, y)
	if !ok {
		return
	}
	if w.lighter(x, y+1, self.Density) {
		w.Swap(x, y, x, y+1)
		return
	}
	w.slideDown(rng, x, y, self.Density)
}

// updateLiquid falls like powder and then spreads sideways. A cell with the
// same liquid directly above stays put laterally so a column cannot shear
// out from under the cell resting on it.
func updateLiquid(w *World, rng core.Rand, x, y int) {
	self, ok := w.Material(x, y)
	if !ok {
		return
	}
	if w.lighter(x, y+1, self.Density) {
		w.Swap(x, y, x, y+1)
		return
	}
	if w.slideDown(rng, x, y, self.Density) {
		return
	}
	if above, ok := w.At(x, y-1); ok && above == self.ID {
		return
	}
	dx := pickSide(rng, w.lighter(x-1, y, self.Density), w.lighter(x+1, y, self.Density))
	if dx != 0 {
		w.Swap(x, y, x+dx, y)
	}
}

// slideDown attempts a diagonal-below swap and reports whether either
// diagonal was passable, whether or not the swap went through.
func (w *World) slideDown(rng core.Rand, x, y, density int) bool {
	dx := pickSide(rng, w.lighter(x-1, y+1, density), w.lighter(x+1, y+1, density))
	if dx == 0 {
		return false
	}
	w.Swap(x, y, x+dx, y+1)
	return true
}

// lighter reports whether (x, y) holds a known material strictly lighter than
// density.
func (w *World) lighter(x, y, density int) bool {
	m, ok := w.Material(x, y)
	return ok && m.Density < density
}

// isEmpty reports whether (x, y) is in bounds and Empty.
func (w *World) isEmpty(x, y int) bool {
	id, ok := w.At(x, y)
	return ok && id == Empty
}

// pickSide returns -1 or +1 for the qualifying side, a fresh coin flip when
// both qualify, and 0 when neither does.
func pickSide(rng core.Rand, left, right bool) int {
	switch {
	case left && right:
		if rng.Bool() {
			return 1
		}
		return -1
	case left:
		return -1
	case right:
		return 1
	}
	return 0
}
