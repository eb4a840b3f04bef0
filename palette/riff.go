package palette

import (
	"encoding/binary"
	"fmt"
	"image/color"
	"io"

	"golang.org/x/image/riff"

	"okpal/okcolor"
)

// Microsoft RIFF PAL: a "PAL " form whose data chunks carry a LOGPALETTE.
// That is a version word 0x0300, an entry count, then 4 bytes (red, green,
// blue, flags) per color.

const palVersion = 0x0300

var (
	palType  = riff.FourCC{'P', 'A', 'L', ' '}
	dataType = riff.FourCC{'d', 'a', 't', 'a'}
)

// ReadFrom decodes every palette chunk of a RIFF PAL stream. Chunks other
// than LOGPALETTE data are skipped.
func ReadFrom(r io.Reader) ([]color.Palette, error) {
	formType, rd, err := riff.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("could not open RIFF stream: %w", err)
	}
	if formType != palType {
		return nil, fmt.Errorf("unsupported RIFF content type: %s", string(formType[:]))
	}

	var pals []color.Palette
	for {
		id, _, data, err := rd.Next()
		if err == io.EOF {
			return pals, nil
		}
		if err != nil {
			return pals, fmt.Errorf("could not read chunk #%d: %w", len(pals), err)
		}
		if id != dataType {
			continue
		}

		pal, err := readLogPalette(data)
		if err != nil {
			return pals, fmt.Errorf("bad palette chunk #%d: %w", len(pals), err)
		}
		pals = append(pals, pal)
	}
}

func readLogPalette(r io.Reader) (color.Palette, error) {
	var hdr struct {
		Version, Count uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("could not read LOGPALETTE header: %w", err)
	}
	if hdr.Version != palVersion {
		return nil, fmt.Errorf("unsupported palette version: %#04x", hdr.Version)
	}

	pal := make(color.Palette, hdr.Count)
	entry := make([]byte, 4)
	for i := range pal {
		if _, err := io.ReadFull(r, entry); err != nil {
			return nil, fmt.Errorf("could not read color %d/%d: %w", i, hdr.Count, err)
		}
		pal[i] = okcolor.SRGB8{R: entry[0], G: entry[1], B: entry[2]}
	}
	return pal, nil
}

// WriteTo encodes the palettes as one RIFF PAL document, a data chunk per
// palette. Alpha is not representable in the format and is dropped.
func WriteTo(w io.Writer, pals []Lab) error {
	docSize := 4
	for _, p := range pals {
		docSize += 8 + logPaletteSize(len(p))
	}

	if _, err := w.Write([]byte("RIFF")); err != nil {
		return fmt.Errorf("could not write RIFF magic: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(docSize)); err != nil {
		return fmt.Errorf("could not write document size: %w", err)
	}
	if _, err := w.Write(palType[:]); err != nil {
		return fmt.Errorf("could not write content type: %w", err)
	}

	for i, p := range pals {
		if err := writeLogPalette(w, p); err != nil {
			return fmt.Errorf("could not write chunk %d: %w", i, err)
		}
	}
	return nil
}

func logPaletteSize(colors int) int {
	return 2 + 2 + colors*4
}

func writeLogPalette(w io.Writer, p Lab) error {
	if _, err := w.Write(dataType[:]); err != nil {
		return fmt.Errorf("could not write chunk type: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(logPaletteSize(len(p)))); err != nil {
		return fmt.Errorf("could not write chunk size: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(palVersion)); err != nil {
		return fmt.Errorf("could not write palette version: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint16(len(p))); err != nil {
		return fmt.Errorf("could not write number of colors: %w", err)
	}

	for i, lc := range p {
		c := lc.SRGB8()
		if _, err := w.Write([]byte{c.R, c.G, c.B, 0x00}); err != nil {
			return fmt.Errorf("could not write color %d/%d: %w", i, len(p), err)
		}
	}
	return nil
}
