package sandbox

import (
	"pixelsand/internal/core"
)

// primitive names the write operation reported to an observer.
type primitive uint8

const (
	opSwap primitive = iota
	opMove
	opOverwrite
)

// World owns the current/next buffers, the resolved mask and all per-cell
// auxiliary state of a falling-sand simulation.
type World struct {
	cfg Config
	reg *Registry

	w, h int

	cur      *core.ByteGrid
	nxt      *core.ByteGrid
	resolved []bool
	fire     map[int]int
	frame    uint64

	passes [len(passOrder)][256]bool

	rng core.Rand

	// observe is called before every successful primitive write with the
	// linear indices involved (j is -1 for single-cell writes).
	observe func(op primitive, i, j int)
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox using the built-in materials and an RNG
// seeded from cfg.Seed.
func NewWithConfig(cfg Config) *World {
	return NewWorld(cfg, DefaultRegistry(), nil)
}

// NewWorld assembles a world from an explicit registry and random source. A
// nil rng selects a core.RNG seeded with cfg.Seed.
func NewWorld(cfg Config, reg *Registry, rng core.Rand) *World {
	cfg.normalize()
	if reg == nil {
		reg = DefaultRegistry()
	}
	if rng == nil {
		rng = core.NewRNG(cfg.Seed)
	}
	total := cfg.Width * cfg.Height
	return &World{
		cfg:      cfg,
		reg:      reg,
		w:        cfg.Width,
		h:        cfg.Height,
		cur:      core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:      core.NewByteGrid(cfg.Width, cfg.Height),
		resolved: make([]bool, total),
		fire:     make(map[int]int),
		rng:      rng,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current buffer. Values are material ids.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// Registry returns the material registry the world dispatches through.
func (w *World) Registry() *Registry { return w.reg }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Frame reports how many steps have run since the last Reset.
func (w *World) Frame() uint64 { return w.frame }

// Reset clears the grid, reseeds the random source and lays out the
// configured scene. A zero seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	if s, ok := w.rng.(interface{ Seed(int64) }); ok {
		s.Seed(effective)
	}
	w.Clear()
	w.frame = 0
	if build, ok := scenes[w.cfg.Scene]; ok {
		build(w)
	}
}

// Clear empties both buffers and drops all auxiliary cell state.
func (w *World) Clear() {
	w.cur.Clear()
	w.nxt.Clear()
	clear(w.resolved)
	clear(w.fire)
}

// At returns the material id in the current buffer. Out-of-bounds
// coordinates report false.
func (w *World) At(x, y int) (ID, bool) {
	v, ok := w.cur.At(x, y)
	return ID(v), ok
}

// Material returns the material in the current buffer at (x, y). It reports
// false for out-of-bounds coordinates and unregistered ids.
func (w *World) Material(x, y int) (Material, bool) {
	id, ok := w.At(x, y)
	if !ok {
		return Material{}, false
	}
	return w.reg.Get(id)
}

// SetImmediate writes id straight into the current buffer. It is meant for
// edits between steps and ignores the resolved mask.
func (w *World) SetImmediate(x, y int, id ID) bool {
	if !w.cur.Set(x, y, uint8(id)) {
		return false
	}
	delete(w.fire, w.cur.Index(x, y))
	return true
}

// Swap exchanges two cells into the next buffer. It fails when either cell is
// out of bounds or already resolved this step.
func (w *World) Swap(x1, y1, x2, y2 int) bool {
	i, j, ok := w.claimable(x1, y1, x2, y2)
	if !ok {
		return false
	}
	if w.observe != nil {
		w.observe(opSwap, i, j)
	}
	cur, next := w.cur.Cells(), w.nxt.Cells()
	next[i], next[j] = cur[j], cur[i]
	w.resolved[i] = true
	w.resolved[j] = true
	w.swapLifetimes(i, j)
	return true
}

// Move relocates the source cell into the destination's next slot and leaves
// Empty behind. Preconditions match Swap.
func (w *World) Move(x1, y1, x2, y2 int) bool {
	i, j, ok := w.claimable(x1, y1, x2, y2)
	if !ok {
		return false
	}
	if w.observe != nil {
		w.observe(opMove, i, j)
	}
	cur, next := w.cur.Cells(), w.nxt.Cells()
	next[j] = cur[i]
	next[i] = uint8(Empty)
	w.resolved[i] = true
	w.resolved[j] = true
	w.moveLifetime(i, j)
	return true
}

// OverwriteNext sets the next slot of (x, y) to id, for reactions that create
// or destroy material. Preconditions match Swap.
func (w *World) OverwriteNext(x, y int, id ID) bool {
	if !w.cur.In(x, y) {
		return false
	}
	i := w.cur.Index(x, y)
	if w.resolved[i] {
		return false
	}
	if w.observe != nil {
		w.observe(opOverwrite, i, -1)
	}
	w.nxt.Cells()[i] = uint8(id)
	w.resolved[i] = true
	if id != Fire {
		w.dropLifetime(i)
	}
	return true
}

// Resolved reports whether (x, y) already has its next state for this step.
// Out-of-bounds coordinates count as resolved.
func (w *World) Resolved(x, y int) bool {
	if !w.cur.In(x, y) {
		return true
	}
	return w.resolved[w.cur.Index(x, y)]
}

func (w *World) claimable(x1, y1, x2, y2 int) (int, int, bool) {
	if !w.cur.In(x1, y1) || !w.cur.In(x2, y2) {
		return 0, 0, false
	}
	i, j := w.cur.Index(x1, y1), w.cur.Index(x2, y2)
	if i == j || w.resolved[i] || w.resolved[j] {
		return 0, 0, false
	}
	return i, j, true
}

// Step advances the simulation by one tick using the world's random source.
func (w *World) Step() {
	w.StepWith(w.rng)
}

// StepWith advances the simulation by one tick drawing randomness from rng.
func (w *World) StepWith(rng core.Rand) {
	w.begin()
	w.buildPasses()
	for p := range w.passes {
		w.runPass(&w.passes[p], rng)
	}
	w.commit()
}

// begin seeds the next buffer with the current state so untouched cells keep
// their value, and forgets last step's resolutions.
func (w *World) begin() {
	w.nxt.CopyFrom(w.cur)
	clear(w.resolved)
}

// commit publishes the next buffer and advances the frame counter.
func (w *World) commit() {
	w.cur, w.nxt = w.nxt, w.cur
	w.sweepLifetimes()
	w.frame++
}

// buildPasses derives each pass's target set from the registered classes so
// materials registered after construction still get visited.
func (w *World) buildPasses() {
	for p := range w.passes {
		clear(w.passes[p][:])
	}
	for _, m := range w.reg.All() {
		for p, class := range passOrder {
			if m.Class == class {
				w.passes[p][m.ID] = true
			}
		}
	}
}

// runPass visits rows bottom to top so a falling cell is seen in the row it
// occupies before anything below it. Column direction flips every frame.
func (w *World) runPass(targets *[256]bool, rng core.Rand) {
	cells := w.cur.Cells()
	leftToRight := w.frame%2 == 0
	for y := w.h - 1; y >= 0; y-- {
		row := y * w.w
		for k := 0; k < w.w; k++ {
			x := k
			if !leftToRight {
				x = w.w - 1 - k
			}
			i := row + x
			if w.resolved[i] || !targets[cells[i]] {
				continue
			}
			m, ok := w.reg.Get(ID(cells[i]))
			if !ok {
				continue
			}
			m.Update(w, rng, x, y)
		}
	}
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
