package adjust

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"

	"okpal/imageio"
	"okpal/parallel"
)

type CLICmd struct {
	Scan      string  `help:"Source folder to scan" default:"."`
	Dest      string  `help:"Destination folder for processed pictures. Relative to scan dir if not absolute." default:"adjusted"`
	Lightness float32 `help:"Lightness shift, -1..1" default:"0"`
	Chroma    float32 `help:"Chroma factor, 0 drains all color" default:"1"`
	Hue       float32 `help:"Hue rotation in degrees" default:"0"`
	Format    string  `help:"Output format. 'same' keeps the source format where an encoder exists, falling back to png." enum:"same,gif,jpeg,png,bmp,tiff" default:"same"`
	Workers   int     `help:"Worker count, 0 means one per CPU" default:"0"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	switch {
	case c.Lightness < -1 || c.Lightness > 1:
		return fmt.Errorf("invalid lightness shift: %f", c.Lightness)
	case c.Chroma < 0:
		return fmt.Errorf("invalid chroma factor: %f", c.Chroma)
	}
	return nil
}

func (c *CLICmd) Run() error {
	if err := os.MkdirAll(c.Dest, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	op := Op{DL: c.Lightness, CFactor: c.Chroma, DH: c.Hue}
	pool := parallel.Start(c.Workers)

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		fileName := file.Name()
		pool.Do(func() {
			if err := c.processFile(op, fileName); err != nil {
				errCount.Add(1)
				slog.Error("could not process image", "file", fileName, "error", err)
				return
			}
			processedCount.Add(1)
		})
	}
	pool.Wait()

	processed, errors := processedCount.Load(), errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) processFile(op Op, fileName string) error {
	img, format, err := imageio.Load(filepath.Join(c.Scan, fileName))
	if err != nil {
		return err
	}

	outFormat := c.Format
	if outFormat == "same" {
		switch format {
		case "gif", "jpeg", "png", "bmp", "tiff":
			outFormat = format
		default:
			outFormat = "png"
		}
	}

	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	dest := filepath.Join(c.Dest, fmt.Sprintf("%s.%s", base, outFormat))

	slog.Info("adjusting", "file", fileName, "to", dest,
		"lightness", op.DL, "chroma", op.CFactor, "hue", op.DH)

	return imageio.Save(op.Image(img), dest)
}
