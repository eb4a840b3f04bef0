// Package adjust shifts image lightness, chroma and hue in Oklch, where
// equal numeric steps read as equal perceived steps.
package adjust

import (
	"image"
	"image/color"

	"okpal/okcolor"
)

// Op is a per-pixel recolor: lightness is shifted by DL, chroma scaled by
// CFactor and hue rotated by DH degrees. The zero value with CFactor 1 is
// the identity.
type Op struct {
	DL      float32
	CFactor float32
	DH      float32
}

// Apply recolors a single color. Alpha passes through untouched; results
// that leave the sRGB gamut saturate per channel.
func (op Op) Apply(c okcolor.SRGBA) okcolor.SRGBA {
	lch := c.LCh()
	adjusted := okcolor.NewLCh(lch.L+op.DL, lch.C*op.CFactor, lch.H+op.DH)
	return adjusted.SRGB().WithAlpha(c.A)
}

// Image recolors a whole image into a fresh NRGBA64.
func (op Op) Image(img image.Image) *image.NRGBA64 {
	sr := img.Bounds()
	dest := image.NewNRGBA64(image.Rect(0, 0, sr.Dx(), sr.Dy()))

	for y := 0; y < sr.Dy(); y++ {
		for x := 0; x < sr.Dx(); x++ {
			src := okcolor.SRGBAModel.Convert(img.At(sr.Min.X+x, sr.Min.Y+y)).(okcolor.SRGBA)
			r, g, b, a := op.Apply(src).Channels()
			dest.SetNRGBA64(x, y, color.NRGBA64{
				R: uint16(r * 0xFFFF),
				G: uint16(g * 0xFFFF),
				B: uint16(b * 0xFFFF),
				A: uint16(a * 0xFFFF),
			})
		}
	}
	return dest
}
