package okcolor

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := clamp(3, 2, 5); got != 3 {
		t.Errorf("clamp(3,2,5) = %d", got)
	}
	if got := clamp(1, 2, 5); got != 2 {
		t.Errorf("clamp(1,2,5) = %d", got)
	}
	if got := clamp(7, 2, 5); got != 5 {
		t.Errorf("clamp(7,2,5) = %d", got)
	}
	if got := clamp(3.0, 2.0, 5.0); got != 3.0 {
		t.Errorf("clamp(3.0,2.0,5.0) = %f", got)
	}
	if got := clamp("b", "a", "c"); got != "b" {
		t.Errorf("clamp(b,a,c) = %s", got)
	}
}

func TestClampBounds(t *testing.T) {
	for v := -2.0; v <= 3.0; v += 0.125 {
		got := clamp(v, -0.5, 1.5)
		if got < -0.5 || got > 1.5 {
			t.Errorf("clamp(%f,-0.5,1.5) = %f out of bounds", v, got)
		}
	}
}

func TestClampNaN(t *testing.T) {
	// NaN is never clamped, it propagates.
	if got := clamp(math.NaN(), 0.0, 1.0); !math.IsNaN(got) {
		t.Errorf("clamp(NaN,0,1) = %f, want NaN", got)
	}
}

func TestUnitRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		if got := FromUnit(ToUnit(uint8(b))); got != uint8(b) {
			t.Errorf("FromUnit(ToUnit(%d)) = %d", b, got)
		}
	}
}

func TestFromUnitSaturates(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2.5, 255},
	}
	for _, c := range cases {
		if got := FromUnit(c.in); got != c.want {
			t.Errorf("FromUnit(%f) = %d, want %d", c.in, got, c.want)
		}
	}
}
