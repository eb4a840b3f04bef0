package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"okpal/adjust"
	"okpal/palette"
)

var cli struct {
	Convert ConvertCmd     `cmd:"" help:"Print a color value in every supported representation"`
	Adjust  adjust.CLICmd  `cmd:"" help:"Recolor images by shifting lightness, chroma and hue in Oklch"`
	Palette palette.CLICmd `cmd:"" help:"Generate perceptual palettes or remap images to them"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("okpal"),
		kong.Description("Exact color conversions between gamma sRGB, linear sRGB, Oklab and Oklch."))

	if err := kctx.Run(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
