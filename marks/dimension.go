// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import "math"

// A Dimension reshapes a banded interval, typically to put visual
// space between adjacent rect marks. A nil *Dimension leaves the
// interval unchanged.
type Dimension struct {
	kind  int
	width float64
	gap   float64
	clamp float64
	ratio float64
}

const (
	dimFixed = iota
	dimGap
	dimRatio
)

// FixedWidth centers the interval on its midpoint with width w,
// regardless of the interval's own extent or direction.
func FixedWidth(w float64) *Dimension {
	return &Dimension{kind: dimFixed, width: w}
}

// Gap shrinks the interval from both ends by half of gap, but never
// by more than clampToRatio times half the interval's extent. The
// interval's direction is preserved.
func Gap(gap, clampToRatio float64) *Dimension {
	return &Dimension{kind: dimGap, gap: gap, clamp: clampToRatio}
}

// Ratio shrinks the interval symmetrically to the given fraction of
// its extent, preserving direction.
func Ratio(r float64) *Dimension {
	return &Dimension{kind: dimRatio, ratio: r}
}

// modify transforms the raw interval [v1, v2]. The interval's order
// is not normalized first; direction survives the transform.
func (d *Dimension) modify(v1, v2 float64) (float64, float64) {
	if d == nil {
		return v1, v2
	}
	switch d.kind {
	case dimFixed:
		m := (v1 + v2) / 2
		return m - d.width/2, m + d.width/2
	case dimGap:
		dv := math.Min(d.gap/2, d.clamp*math.Abs(v1-v2)/2)
		if v1 < v2 {
			return v1 + dv, v2 - dv
		}
		return v1 - dv, v2 + dv
	case dimRatio:
		s := (1 - d.ratio) / 2
		return v1 + (v2-v1)*s, v2 + (v1-v2)*s
	}
	return v1, v2
}
