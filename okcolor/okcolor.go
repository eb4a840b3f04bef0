// Package okcolor converts color values between gamma-encoded sRGB,
// linear-light sRGB and the perceptually uniform Oklab/Oklch spaces.
//
// All representations are plain value types and every conversion is a pure
// function: no allocation, no locks, no package state beyond numeric
// constants. Out-of-range inputs saturate to their channel domain instead of
// producing errors.
//
// based on:
// https://bottosson.github.io/posts/oklab/
// https://bottosson.github.io/posts/colorwrong/#what-can-we-do%3F
package okcolor

import "cmp"

// Gamma is the sRGB transfer curve exponent.
const Gamma = 2.4

// Eps is the tolerance used when comparing float32 channels that went
// through a conversion. Round-trips are stable to within this value, not
// bit-exact.
const Eps = 1e-5

// clamp saturates v into [lo, hi]. Any comparison involving a NaN is false,
// so a NaN v passes through unclamped.
func clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
