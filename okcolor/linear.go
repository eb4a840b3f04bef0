package okcolor

import (
	"image/color"
	"math"
)

// Linearize removes the sRGB gamma encoding from a channel, mapping a
// gamma-encoded value in [0, 1] to linear light in [0, 1]. Out-of-range
// input is saturated first so the result always stays in domain.
func Linearize(c float32) float32 {
	x := float64(clamp(c, 0, 1))
	if x >= 0.04045 {
		return float32(math.Pow((x+0.055)/1.055, Gamma))
	}
	return float32(x / 12.92)
}

// Nonlinearize applies the sRGB gamma encoding to a linear-light channel,
// the inverse of Linearize. Out-of-range input is saturated first.
// Nonlinearize(Linearize(c)) reproduces c within Eps, not bit-exactly.
func Nonlinearize(c float32) float32 {
	x := float64(clamp(c, 0, 1))
	if x >= 0.0031308 {
		return float32(1.055*math.Pow(x, 1/Gamma) - 0.055)
	}
	return float32(x * 12.92)
}

// LinearRGB is a linear-light sRGB color with float32 channels in [0, 1].
//
// Better suited for physical lighting math than the gamma-encoded types.
type LinearRGB struct {
	R, G, B float32
}

// NewLinearRGB builds a LinearRGB, saturating each channel into [0, 1].
func NewLinearRGB(r, g, b float32) LinearRGB {
	return LinearRGB{clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1)}
}

// LinearRGBFromArray builds a LinearRGB from raw channels, unclamped.
func LinearRGBFromArray(c [3]float32) LinearRGB {
	return LinearRGB{c[0], c[1], c[2]}
}

func (c LinearRGB) Array() [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

// Channels returns the individual channel values.
func (c LinearRGB) Channels() (r, g, b float32) {
	return c.R, c.G, c.B
}

// WithAlpha adds an alpha channel.
func (c LinearRGB) WithAlpha(a float32) LinearRGBA {
	return LinearRGBA{c.R, c.G, c.B, clamp(a, 0, 1)}
}

func (c LinearRGB) SRGB8() SRGB8   { return c.SRGB().SRGB8() }
func (c LinearRGB) SRGBA8() SRGBA8 { return c.SRGB().SRGB8().WithAlpha(0xFF) }

func (c LinearRGB) SRGB() SRGB {
	return SRGB{Nonlinearize(c.R), Nonlinearize(c.G), Nonlinearize(c.B)}
}

func (c LinearRGB) SRGBA() SRGBA { return c.SRGB().WithAlpha(1) }

func (c LinearRGB) LinearRGB() LinearRGB   { return c }
func (c LinearRGB) LinearRGBA() LinearRGBA { return c.WithAlpha(1) }

func (c LinearRGB) Lab() Lab { return linearToLab(c) }
func (c LinearRGB) LCh() LCh { return linearToLab(c).LCh() }

// RGBA implements image/color.Color with full opacity.
func (c LinearRGB) RGBA() (uint32, uint32, uint32, uint32) {
	return c.SRGBA().RGBA()
}

// LinearRGBA is a linear-light sRGB color with a linear alpha channel,
// float32 in [0, 1]. Alpha is not premultiplied.
type LinearRGBA struct {
	R, G, B, A float32
}

// NewLinearRGBA builds a LinearRGBA, saturating each channel into [0, 1].
func NewLinearRGBA(r, g, b, a float32) LinearRGBA {
	return LinearRGBA{clamp(r, 0, 1), clamp(g, 0, 1), clamp(b, 0, 1), clamp(a, 0, 1)}
}

// LinearRGBAFromArray builds a LinearRGBA from raw channels, unclamped.
func LinearRGBAFromArray(c [4]float32) LinearRGBA {
	return LinearRGBA{c[0], c[1], c[2], c[3]}
}

func (c LinearRGBA) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Channels returns the individual channel values.
func (c LinearRGBA) Channels() (r, g, b, a float32) {
	return c.R, c.G, c.B, c.A
}

func (c LinearRGBA) SRGB8() SRGB8 { return c.SRGB().SRGB8() }

func (c LinearRGBA) SRGBA8() SRGBA8 {
	return c.SRGB().SRGB8().WithAlpha(FromUnit(c.A))
}

func (c LinearRGBA) SRGB() SRGB { return c.LinearRGB().SRGB() }

func (c LinearRGBA) SRGBA() SRGBA {
	return c.LinearRGB().SRGB().WithAlpha(c.A)
}

func (c LinearRGBA) LinearRGB() LinearRGB   { return LinearRGB{c.R, c.G, c.B} }
func (c LinearRGBA) LinearRGBA() LinearRGBA { return c }

func (c LinearRGBA) Lab() Lab { return linearToLab(c.LinearRGB()) }
func (c LinearRGBA) LCh() LCh { return c.Lab().LCh() }

// RGBA implements image/color.Color.
func (c LinearRGBA) RGBA() (uint32, uint32, uint32, uint32) {
	return c.SRGBA().RGBA()
}

var (
	// LinearRGBModel converts any image/color.Color to LinearRGB.
	LinearRGBModel = color.ModelFunc(linearRGBConvert)
	// LinearRGBAModel converts any image/color.Color to LinearRGBA.
	LinearRGBAModel = color.ModelFunc(linearRGBAConvert)
)

func linearRGBConvert(c color.Color) color.Color {
	if lc, ok := c.(LinearRGB); ok {
		return lc
	}
	return srgbaConvert(c).(SRGBA).LinearRGB()
}

func linearRGBAConvert(c color.Color) color.Color {
	if lc, ok := c.(LinearRGBA); ok {
		return lc
	}
	return srgbaConvert(c).(SRGBA).LinearRGBA()
}
