package okcolor

import "math"

// ToUnit maps an 8-bit channel onto the normalized [0, 1] float domain.
func ToUnit(b uint8) float32 {
	return float32(b) / 255
}

// FromUnit quantizes a normalized float channel to 8 bits, saturating
// out-of-range input first. FromUnit(ToUnit(b)) == b for every byte; the
// opposite direction is lossy.
func FromUnit(f float32) uint8 {
	return uint8(math.Round(float64(clamp(f, 0, 1)) * 255))
}
