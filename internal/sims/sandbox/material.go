package sandbox

import (
	"image/color"
	"math"

	"pixelsand/internal/core"
)

// ID identifies a material. It is the value stored in every grid cell.
type ID uint8

const (
	Empty ID = iota
	Wall
	Sand
	Water
	Oil
	Fire
)

// DensityImmovable is the density of materials nothing can displace.
const DensityImmovable = math.MaxInt32

// Class decides which update pass a material belongs to.
type Class uint8

const (
	// ClassStatic materials are never visited by a pass.
	ClassStatic Class = iota
	// ClassCombustion materials resolve first so burning and extinguishing
	// happen before anything else moves.
	ClassCombustion
	// ClassPowder materials resolve before liquids so they sink through them.
	ClassPowder
	// ClassLiquid materials resolve last.
	ClassLiquid
)

// passOrder lists the classes visited by Step, in order.
var passOrder = [...]Class{ClassCombustion, ClassPowder, ClassLiquid}

// Rule advances the material occupying (x, y) by one tick. Rules only read the
// current buffer through w and only write through w's primitives.
type Rule func(w *World, rng core.Rand, x, y int)

// Material is an immutable behavior definition for one cell type.
type Material struct {
	ID        ID
	Name      string
	Color     color.RGBA
	Density   int
	Flammable bool
	Class     Class
	Rule      Rule
}

// Update runs the material's rule if it has one.
func (m Material) Update(w *World, rng core.Rand, x, y int) {
	if m.Rule != nil {
		m.Rule(w, rng, x, y)
	}
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// Catalog returns the six built-in materials in id order.
func Catalog() []Material {
	return []Material{
		{ID: Empty, Name: "Empty", Color: rgb(0x1a1a2e), Density: 0, Class: ClassStatic},
		{ID: Wall, Name: "Wall", Color: rgb(0x4a4a5c), Density: DensityImmovable, Class: ClassStatic},
		{ID: Sand, Name: "Sand", Color: rgb(0xe6c86e), Density: 150, Class: ClassPowder, Rule: updatePowder},
		{ID: Water, Name: "Water", Color: rgb(0x4a90d9), Density: 100, Class: ClassLiquid, Rule: updateLiquid},
		{ID: Oil, Name: "Oil", Color: rgb(0x3d2914), Density: 50, Flammable: true, Class: ClassLiquid, Rule: updateLiquid},
		{ID: Fire, Name: "Fire", Color: rgb(0xff6b00), Density: -10, Class: ClassCombustion, Rule: updateFire},
	}
}
