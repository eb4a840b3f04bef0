package okcolor

import "image/color"

// SRGB8 is a gamma-encoded sRGB color with 8-bit channels.
//
// Better suited for storage and final graphics buffers.
type SRGB8 struct {
	R, G, B uint8
}

// NewSRGB8 builds an SRGB8. The 8-bit domain is exact, nothing to clamp.
func NewSRGB8(r, g, b uint8) SRGB8 {
	return SRGB8{r, g, b}
}

// SRGB8FromArray builds an SRGB8 from raw channels.
func SRGB8FromArray(c [3]uint8) SRGB8 {
	return SRGB8{c[0], c[1], c[2]}
}

func (c SRGB8) Array() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Channels returns the individual channel values.
func (c SRGB8) Channels() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// WithAlpha adds an alpha channel.
func (c SRGB8) WithAlpha(a uint8) SRGBA8 {
	return SRGBA8{c.R, c.G, c.B, a}
}

func (c SRGB8) SRGB8() SRGB8   { return c }
func (c SRGB8) SRGBA8() SRGBA8 { return c.WithAlpha(0xFF) }

func (c SRGB8) SRGB() SRGB {
	return SRGB{ToUnit(c.R), ToUnit(c.G), ToUnit(c.B)}
}

func (c SRGB8) SRGBA() SRGBA { return c.SRGB().WithAlpha(1) }

func (c SRGB8) LinearRGB() LinearRGB   { return c.SRGB().LinearRGB() }
func (c SRGB8) LinearRGBA() LinearRGBA { return c.SRGB().LinearRGB().WithAlpha(1) }

func (c SRGB8) Lab() Lab { return c.SRGB().LinearRGB().Lab() }
func (c SRGB8) LCh() LCh { return c.Lab().LCh() }

// RGBA implements image/color.Color with full opacity.
func (c SRGB8) RGBA() (uint32, uint32, uint32, uint32) {
	return c.SRGBA().RGBA()
}

// SRGBA8 is a gamma-encoded sRGB color with a linear alpha channel, 8-bit
// each. Alpha is not premultiplied.
type SRGBA8 struct {
	R, G, B, A uint8
}

// NewSRGBA8 builds an SRGBA8. The 8-bit domain is exact, nothing to clamp.
func NewSRGBA8(r, g, b, a uint8) SRGBA8 {
	return SRGBA8{r, g, b, a}
}

// SRGBA8FromArray builds an SRGBA8 from raw channels.
func SRGBA8FromArray(c [4]uint8) SRGBA8 {
	return SRGBA8{c[0], c[1], c[2], c[3]}
}

func (c SRGBA8) Array() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// Channels returns the individual channel values.
func (c SRGBA8) Channels() (r, g, b, a uint8) {
	return c.R, c.G, c.B, c.A
}

func (c SRGBA8) SRGB8() SRGB8   { return SRGB8{c.R, c.G, c.B} }
func (c SRGBA8) SRGBA8() SRGBA8 { return c }

func (c SRGBA8) SRGB() SRGB { return c.SRGB8().SRGB() }

func (c SRGBA8) SRGBA() SRGBA {
	return c.SRGB8().SRGB().WithAlpha(ToUnit(c.A))
}

func (c SRGBA8) LinearRGB() LinearRGB { return c.SRGB().LinearRGB() }

func (c SRGBA8) LinearRGBA() LinearRGBA {
	return c.SRGB().LinearRGB().WithAlpha(ToUnit(c.A))
}

func (c SRGBA8) Lab() Lab { return c.SRGB().LinearRGB().Lab() }
func (c SRGBA8) LCh() LCh { return c.Lab().LCh() }

// RGBA implements image/color.Color.
func (c SRGBA8) RGBA() (uint32, uint32, uint32, uint32) {
	return c.SRGBA().RGBA()
}

// SRGB is a gamma-encoded sRGB color with float32 channels in [0, 1].
type SRGB struct {
	R, G, B float32
}

// NewSRGB builds an SRGB, saturating each channel into [0, 1].
func NewSRGB(r, g, b float32) SRGB {
	return SRGB{clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)}
}

// SRGBFromArray builds an SRGB from raw channels, unclamped.
func SRGBFromArray(c [3]float32) SRGB {
	return SRGB{c[0], c[1], c[2]}
}

func (c SRGB) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Channels returns the individual channel values.
func (c SRGB) Channels() (r, g, b float32) {
	return c.R, c.G, c.B
}

// WithAlpha adds an alpha channel.
func (c SRGB) WithAlpha(a float32) SRGBA {
	return SRGBA{c.R, c.G, c.B, clamp(a, 0, 1)}
}

func (c SRGB) SRGB8() SRGB8 {
	return SRGB8{FromUnit(c.R), FromUnit(c.G), FromUnit(c.B)}
}

func (c SRGB) SRGBA8() SRGBA8 { return c.SRGB8().WithAlpha(0xFF) }

func (c SRGB) SRGB() SRGB   { return c }
func (c SRGB) SRGBA() SRGBA { return c.WithAlpha(1) }

func (c SRGB) LinearRGB() LinearRGB {
	return LinearRGB{Linearize(c.R), Linearize(c.G), Linearize(c.B)}
}

func (c SRGB) LinearRGBA() LinearRGBA { return c.LinearRGB().WithAlpha(1) }

func (c SRGB) Lab() Lab { return c.LinearRGB().Lab() }
func (c SRGB) LCh() LCh { return c.Lab().LCh() }

// RGBA implements image/color.Color with full opacity.
func (c SRGB) RGBA() (uint32, uint32, uint32, uint32) {
	return c.SRGBA().RGBA()
}

// SRGBA is a gamma-encoded sRGB color with a linear alpha channel, float32
// in [0, 1]. Alpha is not premultiplied; gamma never touches it.
type SRGBA struct {
	R, G, B, A float32
}

// NewSRGBA builds an SRGBA, saturating each channel into [0, 1].
func NewSRGBA(r, g, b, a float32) SRGBA {
	return SRGBA{clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1), clamp(a, 0, 1)}
}

// SRGBAFromArray builds an SRGBA from raw channels, unclamped.
func SRGBAFromArray(c [4]float32) SRGBA {
	return SRGBA{c[0], c[1], c[2], c[3]}
}

func (c SRGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Channels returns the individual channel values.
func (c SRGBA) Channels() (r, g, b, a float32) {
	return c.R, c.G, c.B, c.A
}

func (c SRGBA) SRGB8() SRGB8 { return c.SRGB().SRGB8() }

func (c SRGBA) SRGBA8() SRGBA8 {
	return c.SRGB().SRGB8().WithAlpha(FromUnit(c.A))
}

func (c SRGBA) SRGB() SRGB   { return SRGB{c.R, c.G, c.B} }
func (c SRGBA) SRGBA() SRGBA { return c }

func (c SRGBA) LinearRGB() LinearRGB { return c.SRGB().LinearRGB() }

func (c SRGBA) LinearRGBA() LinearRGBA {
	return c.SRGB().LinearRGB().WithAlpha(c.A)
}

func (c SRGBA) Lab() Lab { return c.SRGB().LinearRGB().Lab() }
func (c SRGBA) LCh() LCh { return c.Lab().LCh() }

// RGBA implements image/color.Color, premultiplying alpha as the stdlib
// contract requires. The package's own types never store premultiplied
// channels; this is the outbound adapter surface only.
func (c SRGBA) RGBA() (uint32, uint32, uint32, uint32) {
	a := clamp(c.A, 0, 1)
	return uint32(clamp(c.R, 0, 1) * a * 0xFFFF),
		uint32(clamp(c.G, 0, 1) * a * 0xFFFF),
		uint32(clamp(c.B, 0, 1) * a * 0xFFFF),
		uint32(a * 0xFFFF)
}

var (
	// SRGB8Model converts any image/color.Color to SRGB8.
	SRGB8Model = color.ModelFunc(srgb8Convert)
	// SRGBA8Model converts any image/color.Color to SRGBA8.
	SRGBA8Model = color.ModelFunc(srgba8Convert)
	// SRGBModel converts any image/color.Color to SRGB.
	SRGBModel = color.ModelFunc(srgbConvert)
	// SRGBAModel converts any image/color.Color to SRGBA.
	SRGBAModel = color.ModelFunc(srgbaConvert)
)

func srgb8Convert(c color.Color) color.Color {
	if sc, ok := c.(SRGB8); ok {
		return sc
	}
	return srgbaConvert(c).(SRGBA).SRGB8()
}

func srgba8Convert(c color.Color) color.Color {
	if sc, ok := c.(SRGBA8); ok {
		return sc
	}
	return srgbaConvert(c).(SRGBA).SRGBA8()
}

func srgbConvert(c color.Color) color.Color {
	if sc, ok := c.(SRGB); ok {
		return sc
	}
	return srgbaConvert(c).(SRGBA).SRGB()
}

// srgbaConvert is the single entry point from foreign color types: it goes
// through NRGBA64 so alpha arrives un-premultiplied.
func srgbaConvert(c color.Color) color.Color {
	if cc, ok := c.(Color); ok {
		return cc.SRGBA()
	}
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return SRGBA{
		R: float32(nc.R) / 0xFFFF,
		G: float32(nc.G) / 0xFFFF,
		B: float32(nc.B) / 0xFFFF,
		A: float32(nc.A) / 0xFFFF,
	}
}
