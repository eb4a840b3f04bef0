package palette

import (
	"fmt"
	"os"
	"strings"

	"okpal/okcolor"
)

// Builtin ramps, all generated through Oklch so the steps are perceptually
// even rather than numerically even.
var builtins = map[string]func() Lab{
	"bw":      func() Lab { return Grays(2) },
	"gray16":  func() Lab { return Grays(16) },
	"gray256": func() Lab { return Grays(256) },
	"wheel12": func() Lab { return Wheel(12, 0.7, 0.12) },
	"wheel24": func() Lab { return Wheel(24, 0.7, 0.12) },
}

// Names lists the builtin ramp names.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	return names
}

// Grays is an achromatic ramp of n lightness steps from black to white.
func Grays(n int) Lab {
	p := make(Lab, n)
	for i := 0; i < n; i++ {
		p[i] = okcolor.NewLCh(float32(i)/float32(n-1), 0, 0).Lab()
	}
	return p
}

// Wheel is a hue wheel of n steps at fixed lightness and chroma.
func Wheel(n int, lightness, chroma float32) Lab {
	p := make(Lab, n)
	for i := 0; i < n; i++ {
		p[i] = okcolor.NewLCh(lightness, chroma, float32(i)*360/float32(n)).Lab()
	}
	return p
}

// Load resolves name as a builtin ramp first, then as a RIFF PAL file path.
func Load(name string) (Lab, error) {
	if gen, ok := builtins[strings.ToLower(name)]; ok {
		return gen(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unknown palette %q (builtins: %s): %w",
			name, strings.Join(Names(), ", "), err)
	}
	defer f.Close()

	pals, err := ReadFrom(f)
	if err != nil {
		return nil, fmt.Errorf("could not load palette file %q: %w", name, err)
	}

	var p Lab
	for _, pal := range pals {
		p = append(p, FromColors(pal)...)
	}
	return p, nil
}
