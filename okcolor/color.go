package okcolor

import "image/color"

// Color is the capability contract shared by every representation in this
// package: a total, never-failing conversion to each of the eight supported
// encodings, plus the standard library color.Color surface.
//
// Conversions that have to add an alpha channel use full opacity; the
// concrete types additionally offer WithAlpha variants taking an explicit
// value. Conversions that have to drop alpha simply discard it; channels are
// never premultiplied except inside the stdlib RGBA() adapter.
type Color interface {
	color.Color

	SRGB8() SRGB8
	SRGBA8() SRGBA8
	SRGB() SRGB
	SRGBA() SRGBA
	LinearRGB() LinearRGB
	LinearRGBA() LinearRGBA
	Lab() Lab
	LCh() LCh
}

var (
	_ Color = SRGB8{}
	_ Color = SRGBA8{}
	_ Color = SRGB{}
	_ Color = SRGBA{}
	_ Color = LinearRGB{}
	_ Color = LinearRGBA{}
	_ Color = Lab{}
	_ Color = LCh{}
)
