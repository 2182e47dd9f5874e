package sandbox

import (
	"slices"
	"testing"

	"pixelsand/internal/core"
)

// fixedRand answers every draw with the same values.
type fixedRand struct {
	b bool
	f float64
	n int
}

func (r fixedRand) Bool() bool       { return r.b }
func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntRange(lo, hi int) int {
	if r.n < lo {
		return lo
	}
	if r.n > hi {
		return hi
	}
	return r.n
}

func newTestWorld(w, h int, seed int64) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = seed
	return NewWithConfig(cfg)
}

func mustAt(t *testing.T, w *World, x, y int) ID {
	t.Helper()
	id, ok := w.At(x, y)
	if !ok {
		t.Fatalf("(%d,%d) out of bounds", x, y)
	}
	return id
}

func TestOutOfBoundsIsSilent(t *testing.T) {
	w := New(4, 3)
	coords := [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}}
	for _, c := range coords {
		if _, ok := w.At(c[0], c[1]); ok {
			t.Fatalf("At(%d,%d) should report out of bounds", c[0], c[1])
		}
		if _, ok := w.Material(c[0], c[1]); ok {
			t.Fatalf("Material(%d,%d) should report out of bounds", c[0], c[1])
		}
		if w.SetImmediate(c[0], c[1], Sand) {
			t.Fatalf("SetImmediate(%d,%d) should fail", c[0], c[1])
		}
	}

	w.begin()
	if w.Swap(0, 0, -1, 0) {
		t.Fatal("Swap with out-of-bounds destination should fail")
	}
	if w.Move(4, 0, 3, 0) {
		t.Fatal("Move from out-of-bounds source should fail")
	}
	if w.OverwriteNext(0, 3, Fire) {
		t.Fatal("OverwriteNext out of bounds should fail")
	}
	if w.Resolved(0, 0) {
		t.Fatal("failed primitives must not resolve in-bounds cells")
	}
	w.commit()
}

func TestPrimitivesRefuseResolvedCells(t *testing.T) {
	w := New(3, 3)
	w.SetImmediate(0, 0, Sand)
	w.SetImmediate(1, 0, Water)

	w.begin()
	if !w.Swap(0, 0, 1, 0) {
		t.Fatal("first swap should succeed")
	}
	if !w.Resolved(0, 0) || !w.Resolved(1, 0) {
		t.Fatal("swap must resolve both cells")
	}
	if w.Swap(1, 0, 2, 0) {
		t.Fatal("swap involving a resolved cell should fail")
	}
	if w.Move(0, 0, 0, 1) {
		t.Fatal("move from a resolved cell should fail")
	}
	if w.OverwriteNext(1, 0, Fire) {
		t.Fatal("overwrite of a resolved cell should fail")
	}
	if w.Swap(2, 2, 2, 2) {
		t.Fatal("swapping a cell with itself should fail")
	}
	w.commit()

	if got := mustAt(t, w, 0, 0); got != Water {
		t.Fatalf("(0,0) = %d, want water", got)
	}
	if got := mustAt(t, w, 1, 0); got != Sand {
		t.Fatalf("(1,0) = %d, want sand", got)
	}
	if got := mustAt(t, w, 2, 0); got != Empty {
		t.Fatalf("(2,0) = %d, want empty", got)
	}
}

func TestMoveLeavesEmptyBehind(t *testing.T) {
	w := New(3, 1)
	w.SetImmediate(0, 0, Oil)
	w.SetImmediate(2, 0, Wall)

	w.begin()
	if !w.Move(0, 0, 2, 0) {
		t.Fatal("move should succeed")
	}
	w.commit()

	want := []uint8{uint8(Empty), uint8(Empty), uint8(Oil)}
	if !slices.Equal(w.Cells(), want) {
		t.Fatalf("cells = %v, want %v", w.Cells(), want)
	}
}

func TestReadsSeeCurrentBufferDuringStep(t *testing.T) {
	w := New(2, 1)
	w.SetImmediate(0, 0, Sand)

	w.begin()
	w.Swap(0, 0, 1, 0)
	if got := mustAt(t, w, 0, 0); got != Sand {
		t.Fatalf("reads during a step must see the current buffer, got %d", got)
	}
	w.commit()
	if got := mustAt(t, w, 1, 0); got != Sand {
		t.Fatalf("commit should publish the swap, got %d", got)
	}
}

func TestUntouchedCellsKeepTheirValue(t *testing.T) {
	w := New(5, 5)
	w.FillRect(0, 4, 4, 4, Wall)
	w.SetImmediate(2, 3, Sand)
	before := slices.Clone(w.Cells())
	w.Step()
	if !slices.Equal(before, w.Cells()) {
		t.Fatalf("resting sand should not change the grid: %v -> %v", before, w.Cells())
	}
}

func TestScanOrderAlternatesColumnDirection(t *testing.T) {
	const probe ID = 9
	var visits [][2]int
	record := func(_ *World, _ core.Rand, x, y int) { visits = append(visits, [2]int{x, y}) }
	reg := DefaultRegistry()
	reg.Register(Material{ID: probe, Name: "Probe", Density: 1, Class: ClassPowder, Rule: record})

	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 3, 2
	w := NewWorld(cfg, reg, fixedRand{})
	w.FillRect(0, 0, 2, 1, probe)

	w.Step()
	even := slices.Clone(visits)
	visits = visits[:0]
	w.Step()
	odd := slices.Clone(visits)

	wantEven := [][2]int{{0, 1}, {1, 1}, {2, 1}, {0, 0}, {1, 0}, {2, 0}}
	wantOdd := [][2]int{{2, 1}, {1, 1}, {0, 1}, {2, 0}, {1, 0}, {0, 0}}
	if !slices.Equal(even, wantEven) {
		t.Fatalf("even frame visits = %v, want %v", even, wantEven)
	}
	if !slices.Equal(odd, wantOdd) {
		t.Fatalf("odd frame visits = %v, want %v", odd, wantOdd)
	}
	if w.Frame() != 2 {
		t.Fatalf("frame = %d, want 2", w.Frame())
	}
}

func TestSandSinksThroughWaterBeforeWaterMoves(t *testing.T) {
	w := New(1, 3)
	w.SetImmediate(0, 0, Sand)
	w.SetImmediate(0, 1, Water)

	w.StepWith(fixedRand{})

	want := []uint8{uint8(Water), uint8(Sand), uint8(Empty)}
	if !slices.Equal(w.Cells(), want) {
		t.Fatalf("cells = %v, want %v", w.Cells(), want)
	}
}

func TestUnknownMaterialIsSkipped(t *testing.T) {
	w := New(1, 3)
	w.SetImmediate(0, 1, ID(42))
	w.SetImmediate(0, 0, Sand)

	if _, ok := w.Material(0, 1); ok {
		t.Fatal("unregistered id should not resolve to a material")
	}
	w.Step()
	if got := mustAt(t, w, 0, 1); got != ID(42) {
		t.Fatalf("unknown cell should be left alone, got %d", got)
	}
	if got := mustAt(t, w, 0, 0); got != Sand {
		t.Fatalf("sand must not sink into an unknown cell, got %d", got)
	}
	for p := range w.RenderFeed() {
		if p.ID == ID(42) {
			t.Fatal("render feed should skip unregistered ids")
		}
	}
}

func TestStepNeverWritesACellTwice(t *testing.T) {
	w := newTestWorld(40, 30, 5)
	soup := core.NewRNG(11)
	ids := []ID{Empty, Empty, Empty, Wall, Sand, Sand, Water, Water, Oil, Fire}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			w.SetImmediate(x, y, ids[soup.IntRange(0, len(ids)-1)])
		}
	}

	writes := make([]int, 40*30)
	w.observe = func(_ primitive, i, j int) {
		writes[i]++
		if j >= 0 {
			writes[j]++
		}
	}
	for step := 0; step < 200; step++ {
		clear(writes)
		w.Step()
		for i, n := range writes {
			if n > 1 {
				t.Fatalf("step %d wrote cell %d %d times", step, i, n)
			}
		}
	}
}

func TestMovesOnlyDisplaceLighterMaterial(t *testing.T) {
	w := newTestWorld(32, 24, 21)
	soup := core.NewRNG(3)
	ids := []ID{Empty, Empty, Sand, Water, Oil, Fire, Wall}
	for y := 0; y < 24; y++ {
		for x := 0; x < 32; x++ {
			w.SetImmediate(x, y, ids[soup.IntRange(0, len(ids)-1)])
		}
	}

	reg := w.Registry()
	density := func(v uint8) int {
		m, _ := reg.Get(ID(v))
		return m.Density
	}
	w.observe = func(op primitive, i, j int) {
		if op != opSwap {
			return
		}
		cells := w.cur.Cells()
		mover, target := cells[i], cells[j]
		switch ID(mover) {
		case Sand, Water, Oil:
			if density(target) >= density(mover) {
				t.Fatalf("material %d displaced %d with density %d >= %d", mover, target, density(target), density(mover))
			}
		case Fire:
			if ID(target) != Empty {
				t.Fatalf("fire rose into %d, want empty", target)
			}
		}
	}
	for step := 0; step < 150; step++ {
		w.Step()
	}
}

func TestClearDropsEverything(t *testing.T) {
	w := New(5, 5)
	w.SetImmediate(2, 4, Fire)
	w.SetImmediate(0, 0, Sand)
	w.Step()
	if w.BurningCells() != 1 {
		t.Fatalf("burning cells = %d, want 1", w.BurningCells())
	}

	w.Clear()

	if w.BurningCells() != 0 {
		t.Fatalf("Clear left %d fire lifetimes", w.BurningCells())
	}
	for i, v := range w.Cells() {
		if v != uint8(Empty) {
			t.Fatalf("cell %d = %d after Clear", i, v)
		}
	}
	for i, r := range w.resolved {
		if r {
			t.Fatalf("resolved mask %d still set after Clear", i)
		}
	}
}

func TestSeparateWorldsDoNotShareFireState(t *testing.T) {
	a := New(3, 3)
	b := New(3, 3)
	a.SetImmediate(1, 2, Fire)
	a.Step()
	if a.BurningCells() != 1 {
		t.Fatalf("world a burning cells = %d, want 1", a.BurningCells())
	}
	if b.BurningCells() != 0 {
		t.Fatalf("world b picked up %d lifetimes from world a", b.BurningCells())
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 30
	cfg.Scene = SceneOilFire
	w := NewWithConfig(cfg)

	run := func(seed int64) []uint8 {
		w.Reset(seed)
		for i := 0; i < 60; i++ {
			w.Step()
		}
		return slices.Clone(w.Cells())
	}

	first := run(7)
	second := run(7)
	if !slices.Equal(first, second) {
		t.Fatal("Reset with the same seed should replay identically")
	}
	if w.Frame() != 60 {
		t.Fatalf("frame = %d, want 60 after reset and 60 steps", w.Frame())
	}

	configured := run(0)
	again := run(cfg.Seed)
	if !slices.Equal(configured, again) {
		t.Fatal("Reset(0) should fall back to the configured seed")
	}
}

func TestRenderFeedRowMajorAndRestartable(t *testing.T) {
	w := New(3, 2)
	w.SetImmediate(2, 0, Sand)
	w.SetImmediate(0, 1, Wall)
	w.SetImmediate(1, 1, Water)

	collect := func() []Pixel {
		var out []Pixel
		for p := range w.RenderFeed() {
			out = append(out, p)
		}
		return out
	}

	got := collect()
	if len(got) != 3 {
		t.Fatalf("feed yielded %d pixels, want 3", len(got))
	}
	wantXY := [][2]int{{2, 0}, {0, 1}, {1, 1}}
	for i, p := range got {
		if p.X != wantXY[i][0] || p.Y != wantXY[i][1] {
			t.Fatalf("pixel %d at (%d,%d), want %v", i, p.X, p.Y, wantXY[i])
		}
		m, _ := w.Registry().Get(p.ID)
		if p.Color != m.Color {
			t.Fatalf("pixel %d color %v, want %v", i, p.Color, m.Color)
		}
	}
	if again := collect(); !slices.Equal(got, again) {
		t.Fatal("feed should restart from the top on every range")
	}

	n := 0
	for range w.RenderFeed() {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("early break yielded %d pixels", n)
	}
}

func TestPaletteCoversRegisteredMaterials(t *testing.T) {
	w := New(2, 2)
	palette := w.Palette()
	for _, m := range w.Registry().All() {
		if int(m.ID) >= len(palette) || palette[m.ID] != m.Color {
			t.Fatalf("palette missing %s", m.Name)
		}
	}
}

func TestSimRegistration(t *testing.T) {
	factory, ok := core.Sims()["sandbox"]
	if !ok {
		t.Fatal("sandbox should register itself")
	}
	sim := factory(map[string]string{"w": "12", "h": "8"})
	if size := sim.Size(); size.W != 12 || size.H != 8 {
		t.Fatalf("size = %+v, want 12x8", size)
	}
	if _, ok := sim.(core.Editor); !ok {
		t.Fatal("sandbox should accept edits")
	}
	if _, ok := sim.(core.PaletteProvider); !ok {
		t.Fatal("sandbox should provide a palette")
	}
}
