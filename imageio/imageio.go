// Package imageio loads and saves images in the formats the CLI supports.
package imageio

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Load decodes an image file, reporting the detected format.
func Load(name string) (image.Image, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image %q: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Error("could not close image", "file", name, "error", cerr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image %q: %w", name, err)
	}
	return img, format, nil
}

// Save encodes img into dest, picking the format from the file extension.
// The file is written next to dest first and renamed into place so a failed
// encode never leaves a partial image behind.
func Save(img image.Image, dest string) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(dest)), ".")
	if format == "jpg" {
		format = "jpeg"
	}

	out, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest))
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", dest, err)
	}
	canRename := false
	defer func() {
		if cerr := out.Sync(); cerr != nil && err == nil {
			err = fmt.Errorf("could not flush destination %q: %w", dest, cerr)
		}
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close destination %q: %w", dest, cerr)
		}
		if !canRename {
			if cerr := os.Remove(out.Name()); cerr != nil {
				slog.Error("could not remove temporary file", "name", out.Name(), "error", cerr)
			}
			return
		}
		if cerr := os.Rename(out.Name(), dest); cerr != nil && err == nil {
			err = fmt.Errorf("could not rename destination %q: %w", dest, cerr)
		}
	}()

	switch format {
	case "gif":
		err = gif.Encode(out, img, nil)
	case "jpeg":
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: 100})
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		err = enc.Encode(out, img)
	case "bmp":
		err = bmp.Encode(out, img)
	case "tiff":
		err = tiff.Encode(out, img, nil)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
	if err != nil {
		return fmt.Errorf("could not encode %s destination %q: %w", format, dest, err)
	}

	canRename = true
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
