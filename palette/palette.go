// Package palette provides color palettes matched in the perceptually
// uniform Oklab space, with RIFF PAL import/export.
package palette

import (
	"image/color"
	"math"

	"okpal/okcolor"
)

// Lab is a palette of Oklab entries. Nearest-color matching runs on the
// perceptual distance, not on RGB distance.
type Lab []okcolor.Lab

var _ color.Model = Lab{}

// FromColors builds a palette from any standard palette.
func FromColors(pal color.Palette) Lab {
	p := make(Lab, 0, len(pal))
	for _, col := range pal {
		p = append(p, okcolor.LabModel.Convert(col).(okcolor.Lab))
	}
	return p
}

// Index returns the position of the entry perceptually closest to c, or -1
// for an empty palette.
func (p Lab) Index(c okcolor.Lab) int {
	best, bestDist := -1, float32(math.MaxFloat32)
	for i, v := range p {
		if d := c.DistanceSquared(v); d < bestDist {
			if d == 0 {
				return i
			}
			best, bestDist = i, d
		}
	}
	return best
}

// Convert implements color.Model: any color maps to its perceptually
// nearest palette entry. An empty palette yields black.
func (p Lab) Convert(c color.Color) color.Color {
	if len(p) == 0 {
		return okcolor.Lab{}
	}
	return p[p.Index(okcolor.LabModel.Convert(c).(okcolor.Lab))]
}

// Colors renders the palette as a standard 8-bit palette.
func (p Lab) Colors() color.Palette {
	pal := make(color.Palette, len(p))
	for i, v := range p {
		pal[i] = v.SRGB8()
	}
	return pal
}
