// based on:
// https://bottosson.github.io/posts/oklab/
// https://www.w3.org/TR/css-color-4/#ok-lab

package okcolor

import (
	"image/color"
	"math"
)

// Lab is an Oklab color with float32 components.
//
// L is the perceived lightness in [0, 1]; A runs from greenish cyan to
// purplish red and B from sky blue to mustard yellow, both nominally in
// [-0.5, 0.5]. D65 whitepoint. Best suited for perceptual manipulation.
type Lab struct {
	L, A, B float32
}

// NewLab builds a Lab, clamping L to be non-negative and A, B into their
// nominal [-0.5, 0.5] range.
func NewLab(l, a, b float32) Lab {
	return Lab{max(l, 0), clamp(a, -0.5, 0.5), clamp(b, -0.5, 0.5)}
}

// LabFromArray builds a Lab from raw components, unclamped.
func LabFromArray(c [3]float32) Lab {
	return Lab{c[0], c[1], c[2]}
}

func (c Lab) Array() [3]float32 {
	return [3]float32{c.L, c.A, c.B}
}

// Channels returns the individual components.
func (c Lab) Channels() (l, a, b float32) {
	return c.L, c.A, c.B
}

// DistanceSquared is the squared perceptual distance to another Lab color.
func (c Lab) DistanceSquared(o Lab) float32 {
	dl, da, db := c.L-o.L, c.A-o.A, c.B-o.B
	return dl*dl + da*da + db*db
}

func (c Lab) SRGB8() SRGB8   { return labToLinear(c).SRGB().SRGB8() }
func (c Lab) SRGBA8() SRGBA8 { return c.SRGB8().WithAlpha(0xFF) }

func (c Lab) SRGB() SRGB   { return labToLinear(c).SRGB() }
func (c Lab) SRGBA() SRGBA { return c.SRGB().WithAlpha(1) }

func (c Lab) LinearRGB() LinearRGB   { return labToLinear(c) }
func (c Lab) LinearRGBA() LinearRGBA { return labToLinear(c).WithAlpha(1) }

func (c Lab) Lab() Lab { return c }

// LCh converts to the polar form. A zero-chroma (achromatic) color gets hue
// exactly 0, never NaN.
func (c Lab) LCh() LCh {
	chroma := float32(math.Hypot(float64(c.A), float64(c.B)))
	if chroma == 0 {
		return LCh{L: c.L}
	}
	hue := float32(math.Atan2(float64(c.B), float64(c.A)) * 180 / math.Pi)
	if hue < 0 {
		hue += 360
	}
	return LCh{L: c.L, C: chroma, H: hue}
}

// RGBA implements image/color.Color with full opacity.
func (c Lab) RGBA() (uint32, uint32, uint32, uint32) {
	return c.SRGBA().RGBA()
}

// LCh is an Oklch color, the polar reparameterization of Lab.
//
// L is the perceived lightness in [0, 1], C the chroma (non-negative,
// nominally up to 0.5) and H the hue angle in degrees in [0, 360): 0° points
// along the positive A axis, 90° along the positive B axis.
type LCh struct {
	L, C, H float32
}

// NewLCh builds an LCh, clamping L into [0, 1], C to be non-negative and
// wrapping H into [0, 360).
func NewLCh(l, c, h float32) LCh {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	return LCh{clamp(l, 0, 1), max(c, 0), h}
}

// LChFromArray builds an LCh from raw components, unclamped.
func LChFromArray(c [3]float32) LCh {
	return LCh{c[0], c[1], c[2]}
}

func (c LCh) Array() [3]float32 {
	return [3]float32{c.L, c.C, c.H}
}

// Channels returns the individual components.
func (c LCh) Channels() (l, chroma, h float32) {
	return c.L, c.C, c.H
}

func (c LCh) SRGB8() SRGB8   { return c.Lab().SRGB8() }
func (c LCh) SRGBA8() SRGBA8 { return c.Lab().SRGB8().WithAlpha(0xFF) }

func (c LCh) SRGB() SRGB   { return c.Lab().SRGB() }
func (c LCh) SRGBA() SRGBA { return c.Lab().SRGB().WithAlpha(1) }

func (c LCh) LinearRGB() LinearRGB   { return labToLinear(c.Lab()) }
func (c LCh) LinearRGBA() LinearRGBA { return labToLinear(c.Lab()).WithAlpha(1) }

func (c LCh) Lab() Lab {
	rad := float64(c.H) * math.Pi / 180
	return Lab{
		L: c.L,
		A: c.C * float32(math.Cos(rad)),
		B: c.C * float32(math.Sin(rad)),
	}
}

func (c LCh) LCh() LCh { return c }

// RGBA implements image/color.Color with full opacity.
func (c LCh) RGBA() (uint32, uint32, uint32, uint32) {
	return c.SRGBA().RGBA()
}

// linearToLab applies the first Oklab matrix, a cube root per component and
// the second matrix.
func linearToLab(c LinearRGB) Lab {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Lab{
		L: float32(0.2104542553*l + 0.7936177850*m - 0.0040720468*s),
		A: float32(1.9779984951*l - 2.4285922050*m + 0.4505937099*s),
		B: float32(0.0259040371*l + 0.7827717662*m - 0.8086757660*s),
	}
}

// labToLinear is the algebraic inverse of linearToLab. Colors outside the
// sRGB gamut saturate per channel; perceptual gamut mapping is out of scope
// here.
func labToLinear(c Lab) LinearRGB {
	l := float64(c.L) + 0.3963377774*float64(c.A) + 0.2158037573*float64(c.B)
	m := float64(c.L) - 0.1055613458*float64(c.A) - 0.0638541728*float64(c.B)
	s := float64(c.L) - 0.0894841775*float64(c.A) - 1.2914855480*float64(c.B)
	l, m, s = l*l*l, m*m*m, s*s*s

	return LinearRGB{
		R: clamp(float32(4.0767416621*l-3.3077115913*m+0.2309699292*s), 0, 1),
		G: clamp(float32(-1.2684380046*l+2.6097574011*m-0.3413193965*s), 0, 1),
		B: clamp(float32(-0.0041960863*l-0.7034186147*m+1.7076147010*s), 0, 1),
	}
}

var (
	// LabModel converts any image/color.Color to Lab.
	LabModel = color.ModelFunc(labConvert)
	// LChModel converts any image/color.Color to LCh.
	LChModel = color.ModelFunc(lchConvert)
)

func labConvert(c color.Color) color.Color {
	if lc, ok := c.(Lab); ok {
		return lc
	}
	return srgbaConvert(c).(SRGBA).Lab()
}

func lchConvert(c color.Color) color.Color {
	if lc, ok := c.(LCh); ok {
		return lc
	}
	return srgbaConvert(c).(SRGBA).LCh()
}
