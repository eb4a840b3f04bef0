package main

import (
	"fmt"
	"strconv"
	"strings"

	"okpal/okcolor"
)

type ConvertCmd struct {
	Value string `arg:"" help:"Color to convert: #RGB/#RGBA/#RRGGBB/#RRGGBBAA hex, or space:channels with space one of srgb, linear, lab, lch (e.g. lab:0.63,0.22,0.13)"`
}

func (c *ConvertCmd) Run() error {
	col, err := parseColor(c.Value)
	if err != nil {
		return err
	}
	printColor(col)
	return nil
}

func parseColor(s string) (okcolor.Color, error) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	space, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("invalid color %q, want #hex or space:channels", s)
	}

	parts := strings.Split(rest, ",")
	ch := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid channel %q: %w", p, err)
		}
		ch[i] = float32(v)
	}

	switch n := len(ch); space {
	case "srgb":
		switch n {
		case 3:
			return okcolor.NewSRGB(ch[0], ch[1], ch[2]), nil
		case 4:
			return okcolor.NewSRGBA(ch[0], ch[1], ch[2], ch[3]), nil
		}
	case "linear":
		switch n {
		case 3:
			return okcolor.NewLinearRGB(ch[0], ch[1], ch[2]), nil
		case 4:
			return okcolor.NewLinearRGBA(ch[0], ch[1], ch[2], ch[3]), nil
		}
	case "lab":
		if n == 3 {
			return okcolor.NewLab(ch[0], ch[1], ch[2]), nil
		}
	case "lch":
		if n == 3 {
			return okcolor.NewLCh(ch[0], ch[1], ch[2]), nil
		}
	default:
		return nil, fmt.Errorf("unsupported color space %q", space)
	}
	return nil, fmt.Errorf("wrong channel count %d for %q", len(ch), space)
}

func parseHex(s string) (okcolor.Color, error) {
	var c okcolor.SRGBA8
	c.A = 0xFF

	var err error
	var n int
	switch len(s) {
	case 4:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 5:
		n, err = fmt.Sscanf(s, "#%1x%1x%1x%1x", &c.R, &c.G, &c.B, &c.A)
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7:
		n, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		n, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return nil, fmt.Errorf("invalid hex color %q, want #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read color %q: %w", s, err)
	} else if n < 3 {
		return nil, fmt.Errorf("insufficient color fields in %q: %d", s, n)
	}

	return c, nil
}

func printColor(c okcolor.Color) {
	c8 := c.SRGBA8()
	srgb := c.SRGB()
	srgba := c.SRGBA()
	lin := c.LinearRGB()
	lab := c.Lab()
	lch := c.LCh()

	fmt.Printf("hex      #%02X%02X%02X%02X\n", c8.R, c8.G, c8.B, c8.A)
	fmt.Printf("srgb8    %3d %3d %3d\n", c8.R, c8.G, c8.B)
	fmt.Printf("srgba8   %3d %3d %3d %3d\n", c8.R, c8.G, c8.B, c8.A)
	fmt.Printf("srgb     %.4f %.4f %.4f\n", srgb.R, srgb.G, srgb.B)
	fmt.Printf("srgba    %.4f %.4f %.4f %.4f\n", srgba.R, srgba.G, srgba.B, srgba.A)
	fmt.Printf("linear   %.4f %.4f %.4f\n", lin.R, lin.G, lin.B)
	fmt.Printf("lab      %.4f %.4f %.4f\n", lab.L, lab.A, lab.B)
	fmt.Printf("lch      %.4f %.4f %.2f\n", lch.L, lch.C, lch.H)
}
