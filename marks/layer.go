// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/apple/embedding-atlas/canvas"
)

// A Primitive identifies the kind of visual mark a layer produces.
type Primitive int

const (
	Rect Primitive = iota
	Point
	Rule
	Line
	Area
)

var primitiveNames = [...]string{"rect", "point", "rule", "line", "area"}

func (p Primitive) String() string {
	if p < 0 || int(p) >= len(primitiveNames) {
		return fmt.Sprintf("Primitive(%d)", int(p))
	}
	return primitiveNames[p]
}

// Orientation selects the independent axis of a line or area mark.
type Orientation int

const (
	// Vertical marks run along x; y carries the dependent value.
	Vertical Orientation = iota
	// Horizontal marks run along y.
	Horizontal
)

// MarkStyle is the declarative paint description of a layer.
//
// FillColor and StrokeColor accept a CSS color literal, "$encoding"
// to read the layer's color channel per row, or "$name" to look up a
// theme token. An empty string means no paint.
//
// The zero MarkStyle paints nothing: opacities are absolute values,
// not deltas from a default. Start from DefaultMarkStyle and override.
type MarkStyle struct {
	FillColor     string
	StrokeColor   string
	StrokeWidth   float64
	StrokeCap     canvas.LineCap
	StrokeJoin    canvas.LineJoin
	FillOpacity   float64
	StrokeOpacity float64
	Opacity       float64

	// PaintOrder is forwarded to the backend. The canvas backend
	// honors "stroke fill"; anything else paints fill first.
	PaintOrder string
}

// DefaultMarkStyle returns a style with full opacities and a one
// pixel stroke; callers set the paints they need.
func DefaultMarkStyle() MarkStyle {
	return MarkStyle{
		StrokeWidth:   1,
		StrokeCap:     canvas.ButtCap,
		StrokeJoin:    canvas.MiterJoin,
		FillOpacity:   1,
		StrokeOpacity: 1,
		Opacity:       1,
	}
}

// A Layer pairs a data table with instructions for turning its rows
// into marks. The renderer treats layers as read-only.
type Layer struct {
	Primitive Primitive
	Data      *table.Table
	Style     MarkStyle

	// XDim and YDim adjust the banded extents of rect marks.
	XDim, YDim *Dimension

	// PointSize is the point area in square pixels used when the
	// layer has no size channel. Zero means 100.
	PointSize float64

	// Interpolate names the curve for line and area marks: "linear",
	// "basis", "natural", "step", "step-before", "step-after",
	// "catmull-rom", "cardinal", or "monotone". Empty means linear.
	Interpolate string

	// Orientation orients line and area interpolation.
	Orientation Orientation
}
