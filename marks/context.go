// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"image/color"
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/apple/embedding-atlas/internal/css"
)

// Warning is the logger used to report conditions that don't prevent
// rendering, such as an unrecognized interpolation name.
var Warning = log.New(os.Stderr, "[marks] ", log.Lshortfile)

// An Axis identifies a positional channel.
type Axis int

const (
	XAxis Axis = iota
	YAxis
)

func (a Axis) String() string {
	if a == XAxis {
		return "x"
	}
	return "y"
}

// A PositionScale maps data values to pixel offsets along one axis.
type PositionScale interface {
	// Apply maps a data value to a pixel position.
	Apply(v interface{}) float64
	// ApplyBand maps a data value to the pixel interval it occupies.
	// Scales without an intrinsic band width return a zero-width
	// interval.
	ApplyBand(v interface{}) (lo, hi float64)
}

// A ColorScale maps data values to colors.
type ColorScale interface {
	Apply(v interface{}) color.Color
}

// A SizeScale maps data values to mark areas in square pixels.
type SizeScale interface {
	Apply(v interface{}) float64
}

// Scales bundles the plot extent and the per-channel scales shared by
// the layers of one chart. Any scale may be nil; resolution falls
// back to channel defaults.
type Scales struct {
	PlotWidth, PlotHeight float64

	X, Y  PositionScale
	Color ColorScale
	Size  SizeScale
}

func (s *Scales) position(a Axis) PositionScale {
	if a == XAxis {
		return s.X
	}
	return s.Y
}

func (s *Scales) extent(a Axis) float64 {
	if a == XAxis {
		return s.PlotWidth
	}
	return s.PlotHeight
}

// A Theme maps token names to CSS color values. Mark colors written
// as "$name" are looked up here by name.
type Theme map[string]string

// DefaultTheme returns the stock theme. Every theme must define at
// least "markColor", the paint used when a layer has no color
// encoding.
func DefaultTheme() Theme {
	return Theme{
		"markColor":  "#1f77b4",
		"ruleColor":  "#888",
		"gridColor":  "#ddd",
		"labelColor": "#444",
		"background": "#fff",
	}
}

// markColor returns the theme's default mark color.
func (t Theme) markColor() color.Color {
	if s, ok := t["markColor"]; ok {
		if c, ok := css.Parse(s); ok {
			return c
		}
	}
	return color.Black
}

// A Context carries everything layer resolution needs besides the
// layer itself. It is read-only to the renderer.
type Context struct {
	Scales *Scales
	Theme  Theme
}

// env binds a context to one layer's table for the duration of a
// render pass.
type env struct {
	tab *table.Table
	sc  *Scales
	th  Theme
}

func newEnv(ctx *Context, l *Layer) *env {
	e := &env{tab: l.Data}
	if e.tab == nil {
		e.tab = new(table.Table)
	}
	if ctx != nil {
		e.sc, e.th = ctx.Scales, ctx.Theme
	}
	if e.sc == nil {
		e.sc = new(Scales)
	}
	if e.th == nil {
		e.th = DefaultTheme()
	}
	return e
}
