package render

import (
	"image"
	"image/color"
)

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// the palette does not cover become transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		base := i * 4
		var col color.RGBA
		if int(c) < len(palette) {
			col = palette[c]
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Frame renders a w×h grid of cells into a new RGBA image, one pixel per cell
// scaled up by scale. It returns nil when cells does not match the dimensions.
func Frame(w, h int, cells []uint8, palette []color.RGBA, scale int) *image.RGBA {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil
	}
	if scale < 1 {
		scale = 1
	}
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	fillPaletteRGBA(base.Pix, cells, palette)
	if scale == 1 {
		return base
	}
	out := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		src := base.Pix[(y/scale)*base.Stride:]
		dst := out.Pix[y*out.Stride:]
		for x := 0; x < w*scale; x++ {
			copy(dst[x*4:x*4+4], src[(x/scale)*4:(x/scale)*4+4])
		}
	}
	return out
}
