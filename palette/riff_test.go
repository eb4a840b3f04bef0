package palette

import (
	"bytes"
	"testing"

	"okpal/okcolor"
)

func TestRIFFRoundTrip(t *testing.T) {
	pal := Lab{
		okcolor.SRGB8{R: 255, G: 0, B: 0}.Lab(),
		okcolor.SRGB8{R: 0, G: 255, B: 0}.Lab(),
		okcolor.SRGB8{R: 0, G: 0, B: 255}.Lab(),
		okcolor.SRGB8{R: 10, G: 20, B: 30}.Lab(),
	}

	var buf bytes.Buffer
	if err := WriteTo(&buf, []Lab{pal}); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	pals, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(pals) != 1 || len(pals[0]) != len(pal) {
		t.Fatalf("got %d palettes", len(pals))
	}

	for i, want := range pal {
		got := pals[0][i].(okcolor.SRGB8)
		if got != want.SRGB8() {
			t.Errorf("entry %d = %+v, want %+v", i, got, want.SRGB8())
		}
	}
}

func TestRIFFRejectsGarbage(t *testing.T) {
	if _, err := ReadFrom(bytes.NewReader([]byte("not a riff file"))); err == nil {
		t.Error("garbage input did not fail")
	}

	// A valid RIFF form of the wrong type must be rejected too.
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	buf.Write([]byte{4, 0, 0, 0})
	buf.WriteString("WAVE")
	if _, err := ReadFrom(&buf); err == nil {
		t.Error("non-PAL form did not fail")
	}
}

func TestRIFFMultiplePalettes(t *testing.T) {
	a := Grays(4)
	b := Wheel(6, 0.7, 0.12)

	var buf bytes.Buffer
	if err := WriteTo(&buf, []Lab{a, b}); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	pals, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(pals) != 2 {
		t.Fatalf("got %d palettes, want 2", len(pals))
	}
	if len(pals[0]) != 4 || len(pals[1]) != 6 {
		t.Errorf("palette sizes = %d, %d", len(pals[0]), len(pals[1]))
	}
}
