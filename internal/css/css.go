// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Package css parses and formats CSS color values.
//
// It understands the subset of CSS color syntax that appears in chart
// themes and mark styles: hex forms (#rgb, #rgba, #rrggbb, #rrggbbaa),
// the rgb()/rgba() functional forms, and a handful of named colors.
package css

import (
	"fmt"
	"strconv"
	"strings"

	"image/color"
)

// names covers the color keywords that appear in practice in themes.
// It is deliberately not the full CSS named-color table.
var names = map[string]color.NRGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
	"steelblue":   {0x46, 0x82, 0xb4, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// Parse interprets s as a CSS color value. The boolean result reports
// whether s was understood. Colors are returned in non-premultiplied
// form.
func Parse(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color.NRGBA{}, false
	case s[0] == '#':
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[4:len(s)-1], false)
	}
	c, ok := names[s]
	return c, ok
}

func parseHex(s string) (color.NRGBA, bool) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return color.NRGBA{}, false
	}
	nib := func(shift uint) uint8 {
		n := uint8(v>>shift) & 0xf
		return n<<4 | n
	}
	switch len(s) {
	case 3:
		return color.NRGBA{nib(8), nib(4), nib(0), 0xff}, true
	case 4:
		return color.NRGBA{nib(12), nib(8), nib(4), nib(0)}, true
	case 6:
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
	case 8:
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
	}
	return color.NRGBA{}, false
}

func parseRGB(args string, hasAlpha bool) (color.NRGBA, bool) {
	parts := strings.Split(args, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.NRGBA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return color.NRGBA{}, false
		}
		ch[i] = clamp8(f)
	}
	a := uint8(0xff)
	if hasAlpha {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, false
		}
		a = clamp8(f * 255)
	}
	return color.NRGBA{ch[0], ch[1], ch[2], a}, true
}

func clamp8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f + 0.5)
}

// Format renders c as a CSS value that Parse understands. Opaque colors
// use the short #rgb form when possible and #rrggbb otherwise.
// Translucent colors use rgba().
func Format(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "rgba(0,0,0,0)"
	}
	if a != 0xffff {
		// Undo alpha pre-multiplication.
		r = r * 0xffff / a
		g = g * 0xffff / a
		b = b * 0xffff / a
	}
	r, g, b = r>>8, g>>8, b>>8
	if a != 0xffff {
		af := strconv.FormatFloat(float64(a)/0xffff, 'g', 3, 64)
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, af)
	}
	if r>>4 == r&0xf && g>>4 == g&0xf && b>>4 == b&0xf {
		return fmt.Sprintf("#%x%x%x", r>>4, g>>4, b>>4)
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
