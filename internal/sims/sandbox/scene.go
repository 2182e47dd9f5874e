package sandbox

import (
	"fmt"
	"sort"
)

// Scene names accepted by Config.Scene.
const (
	SceneEmpty     = "empty"
	SceneBasin     = "basin"
	SceneHourglass = "hourglass"
	SceneOilFire   = "oilfire"
)

var scenes = map[string]func(w *World){
	SceneEmpty:     func(*World) {},
	SceneBasin:     drawBasin,
	SceneHourglass: drawHourglass,
	SceneOilFire:   drawOilFire,
}

// SceneNames lists the available starting layouts.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadScene clears the world and draws the named layout.
func (w *World) LoadScene(name string) error {
	build, ok := scenes[name]
	if !ok {
		return fmt.Errorf("unknown scene %q", name)
	}
	w.Clear()
	build(w)
	return nil
}

// drawBasin builds a walled basin with every column but the rightmost filled
// with water.
func drawBasin(w *World) {
	left, right := w.w/4, w.w-1-w.w/4
	top, floor := w.h/2, w.h-1
	w.FillRect(left, floor, right, floor, Wall)
	w.FillRect(left, top, left, floor, Wall)
	w.FillRect(right, top, right, floor, Wall)
	surface := floor - (floor-top)/2
	w.FillRect(left+1, surface, right-2, floor-1, Water)
}

// drawHourglass piles sand above a V-shaped wall funnel.
func drawHourglass(w *World) {
	mid, neck := w.w/2, w.h/2
	arm := w.w / 4
	w.FillRect(mid-w.w/8, 1, mid+w.w/8, 1+w.h/6, Sand)
	for k := 0; k <= arm; k++ {
		w.SetImmediate(mid-2-k, neck-k, Wall)
		w.SetImmediate(mid+2+k, neck-k, Wall)
	}
}

// drawOilFire floats a slick of oil on a water tank with a spark set into
// the top of the slick.
func drawOilFire(w *World) {
	floor := w.h - 1
	w.FillRect(0, floor, w.w-1, floor, Wall)
	w.FillRect(0, 0, 0, floor, Wall)
	w.FillRect(w.w-1, 0, w.w-1, floor, Wall)
	water := max(1, w.h/8)
	oil := max(1, w.h/10)
	w.FillRect(1, floor-water, w.w-2, floor-1, Water)
	w.FillRect(1, floor-water-oil, w.w-2, floor-water-1, Oil)
	w.SetImmediate(w.w/2, floor-water-oil, Fire)
}
