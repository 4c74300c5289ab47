// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import "sort"

// point is a resolved position in pixel coordinates.
type point struct {
	x, y float64
}

// linePath resolves one line series and feeds it through the layer's
// curve into sink. Rows with a non-finite coordinate are dropped; the
// rest are ordered by x before interpolation.
func (e *env) linePath(l *Layer, idx []int, sink PathSink) {
	xs := e.resolvePoint(XAxis)
	ys := e.resolvePoint(YAxis)
	pts := make([]point, 0, len(idx))
	for _, i := range idx {
		x, y := xs.At(i), ys.At(i)
		if isFinite(x) && isFinite(y) {
			pts = append(pts, point{x, y})
		}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].x < pts[j].x })
	curveFor(l.Interpolate, l.Orientation)(sink, pts, false)
}

// bandRow pairs a position along the independent axis with the band
// interval it spans on the other axis.
type bandRow struct {
	t, v1, v2 float64
}

// areaPath resolves one area series into sink as a closed region: out
// along one band boundary through the curve, then back along the
// other. Vertical areas run along x with a y band; horizontal areas
// swap the roles.
func (e *env) areaPath(l *Layer, idx []int, sink PathSink) {
	horiz := l.Orientation == Horizontal
	var ts Mapped[float64]
	var band Mapped[Interval]
	if horiz {
		ts = e.resolvePoint(YAxis)
		band = e.resolveBand(XAxis, nil)
	} else {
		ts = e.resolvePoint(XAxis)
		band = e.resolveBand(YAxis, nil)
	}

	rows := make([]bandRow, 0, len(idx))
	for _, i := range idx {
		t, b := ts.At(i), band.At(i)
		if isFinite(t) && isFinite(b.V1) && isFinite(b.V2) {
			rows = append(rows, bandRow{t, b.V1, b.V2})
		}
	}
	if len(rows) == 0 {
		return
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].t < rows[j].t })

	lo := make([]point, len(rows))
	hi := make([]point, len(rows))
	for i, r := range rows {
		if horiz {
			lo[i] = point{r.v1, r.t}
			hi[i] = point{r.v2, r.t}
		} else {
			lo[i] = point{r.t, r.v1}
			hi[i] = point{r.t, r.v2}
		}
	}
	for i, j := 0, len(hi)-1; i < j; i, j = i+1, j-1 {
		hi[i], hi[j] = hi[j], hi[i]
	}

	curve := curveFor(l.Interpolate, l.Orientation)
	curve(sink, lo, false)
	curve(sink, hi, true)
	sink.ClosePath()
}
