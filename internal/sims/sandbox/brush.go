package sandbox

// Brush size bounds used by the interactive front ends.
const (
	MinBrush     = 1
	MaxBrush     = 10
	DefaultBrush = 3
)

// ClampBrush limits size to [MinBrush, MaxBrush].
func ClampBrush(size int) int {
	if size < MinBrush {
		return MinBrush
	}
	if size > MaxBrush {
		return MaxBrush
	}
	return size
}

// Paint stamps a roughly circular brush of the given size centered on (cx, cy)
// into the current buffer and returns how many cells were written. Cells
// outside the grid are skipped. Unregistered values are refused.
func (w *World) Paint(cx, cy, size int, value uint8) int {
	id := ID(value)
	if _, ok := w.reg.Get(id); !ok {
		return 0
	}
	half := ClampBrush(size) / 2
	limit := half*half + half
	written := 0
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			if dx*dx+dy*dy > limit {
				continue
			}
			if w.SetImmediate(cx+dx, cy+dy, id) {
				written++
			}
		}
	}
	return written
}

// Erase paints Empty with the given brush size.
func (w *World) Erase(cx, cy, size int) int {
	return w.Paint(cx, cy, size, uint8(Empty))
}

// FillRect writes id into every in-bounds cell of the rectangle spanning
// [x0, x1] × [y0, y1].
func (w *World) FillRect(x0, y0, x1, y1 int, id ID) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			w.SetImmediate(x, y, id)
		}
	}
}
