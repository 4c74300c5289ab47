// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"fmt"
	"image/color"
	"math"

	"github.com/apple/embedding-atlas/canvas"
	"github.com/apple/embedding-atlas/internal/css"
)

// linearScale is a position scale for tests: Apply(v) = m*v + b, with
// an intrinsic band of width w.
type linearScale struct {
	m, b, w float64
}

func (s linearScale) Apply(v interface{}) float64 {
	f, ok := toFloat(v)
	if !ok {
		return math.NaN()
	}
	return s.m*f + s.b
}

func (s linearScale) ApplyBand(v interface{}) (float64, float64) {
	p := s.Apply(v)
	return p, p + s.w
}

func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// rampScale is a color scale for tests that stores the value in the
// red channel.
type rampScale struct{}

func (rampScale) Apply(v interface{}) color.Color {
	f, _ := toFloat(v)
	return color.NRGBA{R: uint8(f), A: 0xff}
}

// areaScale is a size scale for tests: Apply(v) = k*v.
type areaScale struct {
	k float64
}

func (s areaScale) Apply(v interface{}) float64 {
	f, ok := toFloat(v)
	if !ok {
		return math.NaN()
	}
	return s.k * f
}

// recorder implements canvas.Canvas by logging one string per call.
type recorder struct {
	ops []string
}

var _ canvas.Canvas = (*recorder)(nil)

func (r *recorder) op(format string, args ...interface{}) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) Clear()                             { r.op("clear") }
func (r *recorder) SetTransform(scale, tx, ty float64) { r.op("transform %g %g %g", scale, tx, ty) }
func (r *recorder) SetFillColor(c color.Color)         { r.op("fillcolor %s", css.Format(c)) }
func (r *recorder) SetStrokeColor(c color.Color)       { r.op("strokecolor %s", css.Format(c)) }
func (r *recorder) SetLineWidth(w float64)             { r.op("linewidth %g", w) }
func (r *recorder) SetLineCap(c canvas.LineCap)        { r.op("linecap %s", string(c)) }
func (r *recorder) SetLineJoin(j canvas.LineJoin)      { r.op("linejoin %s", string(j)) }
func (r *recorder) SetGlobalAlpha(a float64)           { r.op("alpha %g", a) }
func (r *recorder) BeginPath()                         { r.op("begin") }
func (r *recorder) MoveTo(x, y float64)                { r.op("M %g %g", x, y) }
func (r *recorder) LineTo(x, y float64)                { r.op("L %g %g", x, y) }
func (r *recorder) CubicTo(x1, y1, x2, y2, x, y float64) {
	r.op("C %g %g %g %g %g %g", x1, y1, x2, y2, x, y)
}
func (r *recorder) ClosePath()                  { r.op("Z") }
func (r *recorder) Rect(x, y, w, h float64)     { r.op("rect %g %g %g %g", x, y, w, h) }
func (r *recorder) Circle(x, y, rad float64)    { r.op("circle %g %g %g", x, y, rad) }
func (r *recorder) Fill()                       { r.op("fill") }
func (r *recorder) Stroke()                     { r.op("stroke") }

// opIndex returns the position of the first op equal to s, or -1.
func opIndex(ops []string, s string) int {
	for i, o := range ops {
		if o == s {
			return i
		}
	}
	return -1
}

// countOps returns how many ops equal s.
func countOps(ops []string, s string) int {
	n := 0
	for _, o := range ops {
		if o == s {
			n++
		}
	}
	return n
}
