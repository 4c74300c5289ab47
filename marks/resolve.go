// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"image/color"
	"math"
)

// An Interval is a banded extent along one axis. It keeps the
// direction the scale produced; V1 is not necessarily the smaller
// bound.
type Interval struct {
	V1, V2 float64
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// resolvePoint resolves the point position channel along a. A column
// plus a scale maps per row; otherwise every row sits at the center
// of the plot extent, so undecorated marks stay visible.
func (e *env) resolvePoint(a Axis) Mapped[float64] {
	col := e.tab.Column(a.String())
	if s := e.sc.position(a); col != nil && s != nil {
		return MapColumn(col, nil, func(v interface{}) float64 { return s.Apply(v) })
	}
	return Constant(e.tab.Len(), e.sc.extent(a)/2)
}

// resolveBand resolves the banded extent along a. In order of
// preference: a single column mapped through the scale's band, a pair
// of endpoint columns ("x1"/"x2" or "y1"/"y2") mapped independently,
// or the full plot extent. d reshapes resolved intervals; the full
// extent fallback is not reshaped.
func (e *env) resolveBand(a Axis, d *Dimension) Mapped[Interval] {
	if s := e.sc.position(a); s != nil {
		if col := e.tab.Column(a.String()); col != nil {
			return MapColumn(col, nil, func(v interface{}) Interval {
				v1, v2 := s.ApplyBand(v)
				v1, v2 = d.modify(v1, v2)
				return Interval{v1, v2}
			})
		}
		col1 := e.tab.Column(a.String() + "1")
		col2 := e.tab.Column(a.String() + "2")
		if col1 != nil && col2 != nil {
			get1, n := sliceGetter(col1)
			get2, _ := sliceGetter(col2)
			return Mapped[Interval]{Len: n, At: func(i int) Interval {
				v1, v2 := d.modify(s.Apply(get1(i)), s.Apply(get2(i)))
				return Interval{v1, v2}
			}}
		}
	}
	return Constant(e.tab.Len(), Interval{0, e.sc.extent(a)})
}

// resolveColor resolves the color channel, falling back to the
// theme's mark color.
func (e *env) resolveColor() Mapped[color.Color] {
	col := e.tab.Column("color")
	if s := e.sc.Color; col != nil && s != nil {
		return MapColumn(col, nil, func(v interface{}) color.Color { return s.Apply(v) })
	}
	return Constant(e.tab.Len(), e.th.markColor())
}

// resolveSize resolves the size channel, falling back to the constant
// def. A zero def means 100 square pixels.
func (e *env) resolveSize(def float64) Mapped[float64] {
	col := e.tab.Column("size")
	if s := e.sc.Size; col != nil && s != nil {
		return MapColumn(col, nil, func(v interface{}) float64 { return s.Apply(v) })
	}
	if def == 0 {
		def = 100
	}
	return Constant(e.tab.Len(), def)
}
