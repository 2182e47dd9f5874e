package sandbox

import "pixelsand/internal/core"

var neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// updateFire burns down the cell's lifetime, ignites flammable neighbors and
// rises into empty space.
func updateFire(w *World, rng core.Rand, x, y int) {
	i := w.cur.Index(x, y)
	life, ok := w.fire[i]
	if !ok {
		life = rng.IntRange(w.cfg.Params.FireLifetimeMin, w.cfg.Params.FireLifetimeMax)
	}
	life--
	if life <= 0 {
		w.dropLifetime(i)
		w.OverwriteNext(x, y, Empty)
		return
	}
	w.fire[i] = life

	for _, d := range neighbors8 {
		nx, ny := x+d[0], y+d[1]
		m, ok := w.Material(nx, ny)
		if !ok || !m.Flammable {
			continue
		}
		if rng.Float64() < w.cfg.Params.IgniteChance {
			w.OverwriteNext(nx, ny, Fire)
		}
	}

	if w.isEmpty(x, y-1) {
		w.Swap(x, y, x, y-1)
		return
	}
	if dx := pickSide(rng, w.isEmpty(x-1, y-1), w.isEmpty(x+1, y-1)); dx != 0 {
		w.Swap(x, y, x+dx, y-1)
	}
}

// FireLifetime returns the remaining ticks of the fire at (x, y).
func (w *World) FireLifetime(x, y int) (int, bool) {
	if !w.cur.In(x, y) {
		return 0, false
	}
	life, ok := w.fire[w.cur.Index(x, y)]
	return life, ok
}

// BurningCells reports how many cells carry a fire lifetime.
func (w *World) BurningCells() int { return len(w.fire) }

func (w *World) dropLifetime(i int) {
	delete(w.fire, i)
}

// swapLifetimes exchanges the lifetime entries of two cells whose values were
// swapped.
func (w *World) swapLifetimes(i, j int) {
	li, okI := w.fire[i]
	lj, okJ := w.fire[j]
	delete(w.fire, i)
	delete(w.fire, j)
	if okI {
		w.fire[j] = li
	}
	if okJ {
		w.fire[i] = lj
	}
}

// moveLifetime carries i's entry to j and discards whatever j held.
func (w *World) moveLifetime(i, j int) {
	delete(w.fire, j)
	if life, ok := w.fire[i]; ok {
		delete(w.fire, i)
		w.fire[j] = life
	}
}

// sweepLifetimes drops entries whose cell is no longer Fire after the buffer
// swap, e.g. when a reaction replaced the burning cell.
func (w *World) sweepLifetimes() {
	cells := w.cur.Cells()
	for i := range w.fire {
		if ID(cells[i]) != Fire {
			delete(w.fire, i)
		}
	}
}
