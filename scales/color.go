// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package scales

import (
	"image/color"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-gg/table"
)

// Gradient maps a continuous numeric domain onto a color palette.
type Gradient struct {
	lin *Linear

	// Palette maps [0, 1] to colors.
	Palette palette.Continuous
}

// NewGradient returns a gradient over p with an unset domain. A nil
// palette means Blues.
func NewGradient(p palette.Continuous) *Gradient {
	if p == nil {
		p = Blues()
	}
	return &Gradient{lin: NewLinear(0, 1), Palette: p}
}

// SetDomain fixes the data domain, overriding training.
func (g *Gradient) SetDomain(min, max float64) *Gradient {
	g.lin.SetDomain(min, max)
	return g
}

// Train expands the domain to cover the finite values of col, which
// must be a numeric slice.
func (g *Gradient) Train(col table.Slice) *Gradient {
	g.lin.Train(col)
	return g
}

// Apply maps v to a palette color. Non-finite and non-numeric values
// map to transparent, so both backends paint nothing for them.
func (g *Gradient) Apply(v interface{}) color.Color {
	x := g.lin.Apply(v)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return color.Transparent
	}
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	return g.Palette.Map(x)
}

// Ordinal assigns each distinct domain value a color from a cycle.
type Ordinal struct {
	index  map[interface{}]int
	colors []color.Color
}

// NewOrdinal builds an ordinal color scale over the distinct values
// of col, in sorted order. An empty colors slice means Category10.
func NewOrdinal(col table.Slice, colors []color.Color) *Ordinal {
	if len(colors) == 0 {
		colors = Category10()
	}
	ordered := slice.NubAppend(col)
	slice.Sort(ordered)
	ov := reflect.ValueOf(ordered)
	index := make(map[interface{}]int, ov.Len())
	for i := 0; i < ov.Len(); i++ {
		index[ov.Index(i).Interface()] = i
	}
	return &Ordinal{index: index, colors: colors}
}

// Apply returns the color of v's domain slot, cycling the palette
// when the domain is larger. Unknown values get a mid gray.
func (s *Ordinal) Apply(v interface{}) color.Color {
	i, ok := s.index[v]
	if !ok {
		return color.Gray{Y: 0x80}
	}
	return s.colors[i%len(s.colors)]
}

// Category10 returns the standard ten-color categorical palette.
func Category10() []color.Color {
	return []color.Color{
		color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
		color.RGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
		color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
		color.RGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
		color.RGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
	}
}

// Blues returns a sequential light-to-dark blue palette.
func Blues() palette.Continuous {
	return palette.RGBGradient{Colors: []color.RGBA{
		{R: 0xde, G: 0xeb, B: 0xf7, A: 0xff},
		{R: 0x9e, G: 0xca, B: 0xe1, A: 0xff},
		{R: 0x31, G: 0x82, B: 0xbd, A: 0xff},
	}}
}
