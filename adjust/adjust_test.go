package adjust

import (
	"image"
	"image/color"
	"testing"

	"okpal/okcolor"
)

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestApplyIdentity(t *testing.T) {
	id := Op{CFactor: 1}
	colors := []okcolor.SRGBA{
		{R: 1, G: 0, B: 0, A: 1},
		{R: 0.25, G: 0.5, B: 0.75, A: 0.5},
		{R: 0.5, G: 0.5, B: 0.5, A: 1},
		{R: 0, G: 0, B: 0, A: 0},
	}
	for _, c := range colors {
		got := id.Apply(c)
		for i, ch := range got.Array() {
			if absDiff(ch, c.Array()[i]) > okcolor.Eps {
				t.Errorf("identity changed %+v to %+v", c, got)
				break
			}
		}
	}
}

func TestApplyDrainsChroma(t *testing.T) {
	op := Op{CFactor: 0}
	got := op.Apply(okcolor.SRGBA{R: 1, G: 0, B: 0, A: 1})
	lch := got.LCh()
	if lch.C > okcolor.Eps {
		t.Errorf("chroma after drain = %f", lch.C)
	}
	if absDiff(got.R, got.G) > okcolor.Eps || absDiff(got.G, got.B) > okcolor.Eps {
		t.Errorf("drained color is not gray: %+v", got)
	}
}

func TestApplyRotatesHue(t *testing.T) {
	op := Op{CFactor: 1, DH: 90}
	src := okcolor.NewLCh(0.7, 0.1, 30).SRGB().WithAlpha(1)
	got := op.Apply(src).LCh()
	if absDiff(got.H, 120) > 0.01 {
		t.Errorf("hue after +90 rotation = %f, want 120", got.H)
	}
}

func TestApplyKeepsAlpha(t *testing.T) {
	op := Op{DL: 0.2, CFactor: 0.5, DH: 45}
	got := op.Apply(okcolor.SRGBA{R: 0.3, G: 0.6, B: 0.9, A: 0.25})
	if got.A != 0.25 {
		t.Errorf("alpha = %f, want 0.25", got.A)
	}
}

func TestApplyLightnessSaturates(t *testing.T) {
	op := Op{DL: 1, CFactor: 1}
	got := op.Apply(okcolor.SRGBA{R: 0.8, G: 0.8, B: 0.8, A: 1})
	for _, ch := range []float32{got.R, got.G, got.B} {
		if absDiff(ch, 1) > okcolor.Eps {
			t.Errorf("overdriven lightness gave %+v, want white", got)
			break
		}
	}
}

func TestImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 4, 5))
	src.SetNRGBA(2, 3, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(3, 3, color.NRGBA{G: 255, A: 255})
	src.SetNRGBA(2, 4, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(3, 4, color.NRGBA{R: 128, G: 128, B: 128, A: 64})

	got := Op{CFactor: 1}.Image(src)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v", got.Bounds())
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := okcolor.SRGBAModel.Convert(src.At(2+x, 3+y)).(okcolor.SRGBA)
			back := okcolor.SRGBAModel.Convert(got.NRGBA64At(x, y)).(okcolor.SRGBA)
			for i, ch := range back.Array() {
				if absDiff(ch, want.Array()[i]) > 1.0/255 {
					t.Errorf("pixel (%d,%d) = %+v, want %+v", x, y, back, want)
					break
				}
			}
		}
	}
}
