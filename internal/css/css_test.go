// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package css

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"#1f77b4", color.NRGBA{0x1f, 0x77, 0xb4, 0xff}, true},
		{"#1f77b480", color.NRGBA{0x1f, 0x77, 0xb4, 0x80}, true},
		{"#8888", color.NRGBA{0x88, 0x88, 0x88, 0x88}, true},
		{"rgb(31, 119, 180)", color.NRGBA{31, 119, 180, 0xff}, true},
		{"rgba(255,0,0,0.5)", color.NRGBA{255, 0, 0, 128}, true},
		{"rgba(0,0,0,0)", color.NRGBA{0, 0, 0, 0}, true},
		{"steelblue", color.NRGBA{0x46, 0x82, 0xb4, 0xff}, true},
		{"  White ", color.NRGBA{0xff, 0xff, 0xff, 0xff}, true},
		{"transparent", color.NRGBA{0, 0, 0, 0}, true},
		{"", color.NRGBA{}, false},
		{"#12345", color.NRGBA{}, false},
		{"#zzz", color.NRGBA{}, false},
		{"rgb(1,2)", color.NRGBA{}, false},
		{"rgb(a,b,c)", color.NRGBA{}, false},
		{"none", color.NRGBA{}, false},
		{"$color", color.NRGBA{}, false},
	}
	for _, test := range tests {
		got, ok := Parse(test.in)
		if ok != test.ok || got != test.want {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", test.in, got, ok, test.want, test.ok)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{color.NRGBA{0x1f, 0x77, 0xb4, 0xff}, "#1f77b4"},
		{color.NRGBA{0x88, 0x88, 0x88, 0xff}, "#888"},
		{color.NRGBA{0, 0, 0, 0xff}, "#000"},
		{color.NRGBA{0, 0, 0, 0}, "rgba(0,0,0,0)"},
		{color.RGBA{0x80, 0, 0, 0x80}, "rgba(255,0,0,0.502)"},
	}
	for _, test := range tests {
		if got := Format(test.in); got != test.want {
			t.Errorf("Format(%v) = %q; want %q", test.in, got, test.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"#1f77b4", "#888", "#fff"} {
		c, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(%q) failed", s)
		}
		if got := Format(c); got != s {
			t.Errorf("Format(Parse(%q)) = %q", s, got)
		}
	}
}
