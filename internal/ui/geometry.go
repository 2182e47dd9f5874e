package ui

import "math"

// GridCell maps a screen position to the grid cell under it. ok is false when
// the position lies outside the grid view.
func GridCell(px, py, gridW, gridH, scale int) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= gridW || y >= gridH {
		return 0, 0, false
	}
	return x, y, true
}

// BrushRadius returns the radius, in cells, of the disc a brush of the given
// size paints: cells within half*half+half squared distance of the center,
// where half is size/2.
func BrushRadius(size int) float32 {
	half := float64(max(size, 1) / 2)
	return float32(math.Sqrt(half*half+half) + 0.5)
}
