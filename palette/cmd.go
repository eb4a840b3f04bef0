package palette

import (
	"fmt"
	"image"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/image/draw"

	"okpal/imageio"
	"okpal/okcolor"
)

type CLICmd struct {
	Gen GenCmd `cmd:"" help:"Generate a palette and save it as a RIFF PAL file"`
	Map MapCmd `cmd:"" help:"Remap an image to a palette by perceptual distance"`
}

type GenCmd struct {
	Name   string `arg:"" help:"Builtin ramp name (bw, gray16, gray256, wheel12, wheel24) or PAL file to copy"`
	Out    string `arg:"" help:"Destination PAL file"`
	Colors int    `help:"Resample the ramp to this many entries" default:"0"`
}

func (c *GenCmd) Validate(kctx *kong.Context) error {
	if c.Colors < 0 {
		return fmt.Errorf("invalid color count: %d", c.Colors)
	}
	if _, err := Load(c.Name); err != nil {
		return err
	}
	return nil
}

func (c *GenCmd) Run() error {
	pal, err := Load(c.Name)
	if err != nil {
		return err
	}
	if len(pal) == 0 {
		return fmt.Errorf("palette %q has no colors", c.Name)
	}

	if c.Colors > 0 && c.Colors != len(pal) {
		pal = resample(pal, c.Colors)
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.Out, err)
	}
	defer out.Close()

	if err := WriteTo(out, []Lab{pal}); err != nil {
		return fmt.Errorf("could not save palette %q: %w", c.Out, err)
	}

	slog.Info("palette written", "file", c.Out, "colors", len(pal))
	return nil
}

// resample picks n entries spread evenly across the source palette.
func resample(p Lab, n int) Lab {
	res := make(Lab, n)
	for i := 0; i < n; i++ {
		res[i] = p[i*len(p)/n]
	}
	return res
}

type MapCmd struct {
	In      string `arg:"" help:"Source image"`
	Out     string `arg:"" help:"Destination image"`
	Palette string `help:"Palette name or PAL file" default:"gray16"`
	Dither  bool   `help:"Apply Floyd-Steinberg dithering" default:"false"`
}

func (c *MapCmd) Validate(kctx *kong.Context) error {
	if _, err := Load(c.Palette); err != nil {
		return err
	}
	return nil
}

func (c *MapCmd) Run() error {
	pal, err := Load(c.Palette)
	if err != nil {
		return err
	}
	if len(pal) == 0 {
		return fmt.Errorf("palette %q has no colors", c.Palette)
	}
	if len(pal) > 256 {
		return fmt.Errorf("palette %q has %d colors, paletted images allow at most 256", c.Palette, len(pal))
	}

	img, _, err := imageio.Load(c.In)
	if err != nil {
		return err
	}

	slog.Info("remapping", "file", c.In, "palette", c.Palette, "colors", len(pal))

	return imageio.Save(remap(img, pal, c.Dither), c.Out)
}

func remap(img image.Image, pal Lab, dither bool) image.Image {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())
	dest := image.NewPaletted(dr, pal.Colors())

	if dither {
		draw.FloydSteinberg.Draw(dest, dr, img, sr.Min)
		return dest
	}

	// Without dithering every pixel maps independently, so the perceptual
	// nearest match applies directly.
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			src := okcolor.LabModel.Convert(img.At(sr.Min.X+x, sr.Min.Y+y)).(okcolor.Lab)
			dest.SetColorIndex(x, y, uint8(pal.Index(src)))
		}
	}
	return dest
}
