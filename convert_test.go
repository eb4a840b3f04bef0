package main

import (
	"testing"

	"okpal/okcolor"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want okcolor.SRGBA8
	}{
		{"#000", okcolor.SRGBA8{A: 0xFF}},
		{"#f00", okcolor.SRGBA8{R: 0xFF, A: 0xFF}},
		{"#1a2", okcolor.SRGBA8{R: 0x11, G: 0xAA, B: 0x22, A: 0xFF}},
		{"#1a2b", okcolor.SRGBA8{R: 0x11, G: 0xAA, B: 0x22, A: 0xBB}},
		{"#102030", okcolor.SRGBA8{R: 0x10, G: 0x20, B: 0x30, A: 0xFF}},
		{"#10203040", okcolor.SRGBA8{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{"#FFFFFF", okcolor.SRGBA8{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
	}
	for _, tc := range cases {
		got, err := parseHex(tc.in)
		if err != nil {
			t.Errorf("parseHex(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseHex(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseHexRejects(t *testing.T) {
	for _, in := range []string{"#", "#1", "#12", "#12345", "#1234567", "#zzz", "#gg0011", "#123456789"} {
		if _, err := parseHex(in); err == nil {
			t.Errorf("parseHex(%q) did not fail", in)
		}
	}
}

func TestParseColorSpaces(t *testing.T) {
	cases := []struct {
		in   string
		want okcolor.Color
	}{
		{"srgb:0.5,0.25,1", okcolor.SRGB{R: 0.5, G: 0.25, B: 1}},
		{"srgb:0.5, 0.25, 1, 0.5", okcolor.SRGBA{R: 0.5, G: 0.25, B: 1, A: 0.5}},
		{"linear:0,0.5,1", okcolor.LinearRGB{G: 0.5, B: 1}},
		{"linear:0,0.5,1,1", okcolor.LinearRGBA{G: 0.5, B: 1, A: 1}},
		{"lab:0.63,0.22,0.12", okcolor.Lab{L: 0.63, A: 0.22, B: 0.12}},
		{"lch:0.7,0.1,30", okcolor.LCh{L: 0.7, C: 0.1, H: 30}},
		{"srgb:2,-1,0.5", okcolor.SRGB{R: 1, G: 0, B: 0.5}},
		{"lch:0.5,0.1,390", okcolor.LCh{L: 0.5, C: 0.1, H: 30}},
	}
	for _, tc := range cases {
		got, err := parseColor(tc.in)
		if err != nil {
			t.Errorf("parseColor(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseColor(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseColorHexForm(t *testing.T) {
	got, err := parseColor("#ff0000")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	if got.(okcolor.SRGBA8) != (okcolor.SRGBA8{R: 0xFF, A: 0xFF}) {
		t.Errorf("parseColor(#ff0000) = %+v", got)
	}
}

func TestParseColorRejects(t *testing.T) {
	bad := []string{
		"",
		"red",
		"hsl:0.5,0.5,0.5",
		"srgb:0.5,0.5",
		"srgb:0.1,0.2,0.3,0.4,0.5",
		"lab:0.5,0.5",
		"lch:a,b,c",
	}
	for _, in := range bad {
		if _, err := parseColor(in); err == nil {
			t.Errorf("parseColor(%q) did not fail", in)
		}
	}
}
