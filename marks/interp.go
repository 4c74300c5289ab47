// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import "math"

// A PathSink receives path-building commands. The retained backend's
// path node and the immediate-mode canvas both satisfy it.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	ClosePath()
}

// A curveFunc emits pts into sink. When cont is set, the first point
// joins the current subpath instead of starting a new one.
type curveFunc func(sink PathSink, pts []point, cont bool)

// curveFor maps a declarative interpolation name to its curve.
// Monotone interpolation preserves monotonicity along the mark's
// independent axis, so it depends on orientation. An unrecognized
// name logs a warning and falls back to linear.
func curveFor(name string, o Orientation) curveFunc {
	switch name {
	case "", "linear":
		return curveLinear
	case "basis":
		return curveBasis
	case "natural":
		return curveNatural
	case "step":
		return curveStep
	case "step-before":
		return curveStepBefore
	case "step-after":
		return curveStepAfter
	case "catmull-rom":
		return curveCatmullRom
	case "cardinal":
		return curveCardinal
	case "monotone":
		if o == Horizontal {
			return curveMonotoneY
		}
		return curveMonotoneX
	}
	Warning.Printf("unknown interpolation %q; using linear", name)
	return curveLinear
}

func start(sink PathSink, p point, cont bool) {
	if cont {
		sink.LineTo(p.x, p.y)
	} else {
		sink.MoveTo(p.x, p.y)
	}
}

func curveLinear(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	for _, p := range pts[1:] {
		sink.LineTo(p.x, p.y)
	}
}

// curveStep switches value at the midpoint between adjacent points.
func curveStep(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		mx := (a.x + b.x) / 2
		sink.LineTo(mx, a.y)
		sink.LineTo(mx, b.y)
		sink.LineTo(b.x, b.y)
	}
}

// curveStepBefore switches value at the earlier point.
func curveStepBefore(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		sink.LineTo(a.x, b.y)
		sink.LineTo(b.x, b.y)
	}
}

// curveStepAfter switches value at the later point.
func curveStepAfter(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		sink.LineTo(b.x, a.y)
		sink.LineTo(b.x, b.y)
	}
}

// curveBasis draws a cubic B-spline. The spline passes through the
// first and last points and approximates the interior ones.
func curveBasis(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	switch len(pts) {
	case 1:
		return
	case 2:
		sink.LineTo(pts[1].x, pts[1].y)
		return
	}
	p0, p1 := pts[0], pts[1]
	sink.LineTo((5*p0.x+p1.x)/6, (5*p0.y+p1.y)/6)
	for _, p := range pts[2:] {
		basisSeg(sink, p0, p1, p)
		p0, p1 = p1, p
	}
	basisSeg(sink, p0, p1, p1)
	sink.LineTo(p1.x, p1.y)
}

func basisSeg(sink PathSink, p0, p1, p2 point) {
	sink.CubicTo(
		(2*p0.x+p1.x)/3, (2*p0.y+p1.y)/3,
		(p0.x+2*p1.x)/3, (p0.y+2*p1.y)/3,
		(p0.x+4*p1.x+p2.x)/6, (p0.y+4*p1.y+p2.y)/6)
}

// curveNatural draws a natural cubic spline through every point.
func curveNatural(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	switch len(pts) {
	case 1:
		return
	case 2:
		sink.LineTo(pts[1].x, pts[1].y)
		return
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.x, p.y
	}
	c1x, c2x := naturalControls(xs)
	c1y, c2y := naturalControls(ys)
	for i := 0; i+1 < len(pts); i++ {
		sink.CubicTo(c1x[i], c1y[i], c2x[i], c2y[i], pts[i+1].x, pts[i+1].y)
	}
}

// naturalControls solves the tridiagonal system for the Bézier
// control points of a natural cubic spline along one coordinate.
func naturalControls(x []float64) (c1, c2 []float64) {
	n := len(x) - 1
	a := make([]float64, n)
	b := make([]float64, n)
	r := make([]float64, n)
	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}

// curveCardinal draws a cardinal spline with tension 0. Endpoint
// tangents use the endpoints themselves as virtual neighbors.
var curveCardinal = makeCardinal(0)

func makeCardinal(tension float64) curveFunc {
	k := (1 - tension) / 6
	return func(sink PathSink, pts []point, cont bool) {
		if len(pts) == 0 {
			return
		}
		start(sink, pts[0], cont)
		switch len(pts) {
		case 1:
			return
		case 2:
			sink.LineTo(pts[1].x, pts[1].y)
			return
		}
		for i := 0; i+1 < len(pts); i++ {
			p0 := pts[max(i-1, 0)]
			p1 := pts[i]
			p2 := pts[i+1]
			p3 := pts[min(i+2, len(pts)-1)]
			sink.CubicTo(
				p1.x+k*(p2.x-p0.x), p1.y+k*(p2.y-p0.y),
				p2.x-k*(p3.x-p1.x), p2.y-k*(p3.y-p1.y),
				p2.x, p2.y)
		}
	}
}

// curveCatmullRom draws a centripetal Catmull-Rom spline, which
// follows the points closely without the self-intersections a uniform
// parameterization can produce on uneven spacing.
func curveCatmullRom(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	switch len(pts) {
	case 1:
		return
	case 2:
		sink.LineTo(pts[1].x, pts[1].y)
		return
	}
	const alpha = 0.5
	for i := 0; i+1 < len(pts); i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]
		t01 := math.Pow(math.Hypot(p1.x-p0.x, p1.y-p0.y), alpha)
		t12 := math.Pow(math.Hypot(p2.x-p1.x, p2.y-p1.y), alpha)
		t23 := math.Pow(math.Hypot(p3.x-p2.x, p3.y-p2.y), alpha)
		if t12 == 0 {
			sink.LineTo(p2.x, p2.y)
			continue
		}
		m1x, m1y := p2.x-p1.x, p2.y-p1.y
		if t01 > 0 {
			m1x = t12 * ((p1.x-p0.x)/t01 - (p2.x-p0.x)/(t01+t12) + (p2.x-p1.x)/t12)
			m1y = t12 * ((p1.y-p0.y)/t01 - (p2.y-p0.y)/(t01+t12) + (p2.y-p1.y)/t12)
		}
		m2x, m2y := p2.x-p1.x, p2.y-p1.y
		if t23 > 0 {
			m2x = t12 * ((p3.x-p2.x)/t23 - (p3.x-p1.x)/(t12+t23) + (p2.x-p1.x)/t12)
			m2y = t12 * ((p3.y-p2.y)/t23 - (p3.y-p1.y)/(t12+t23) + (p2.y-p1.y)/t12)
		}
		sink.CubicTo(
			p1.x+m1x/3, p1.y+m1y/3,
			p2.x-m2x/3, p2.y-m2y/3,
			p2.x, p2.y)
	}
}

// curveMonotoneX draws a cubic that preserves monotonicity in y
// wherever the input is monotone, using Fritsch-Carlson tangents.
func curveMonotoneX(sink PathSink, pts []point, cont bool) {
	if len(pts) == 0 {
		return
	}
	start(sink, pts[0], cont)
	switch len(pts) {
	case 1:
		return
	case 2:
		sink.LineTo(pts[1].x, pts[1].y)
		return
	}
	n := len(pts)
	m := make([]float64, n)
	for i := 1; i < n-1; i++ {
		m[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	m[0] = slope2(pts[0], pts[1], m[1])
	m[n-1] = slope2(pts[n-2], pts[n-1], m[n-2])
	for i := 0; i+1 < n; i++ {
		dx := (pts[i+1].x - pts[i].x) / 3
		sink.CubicTo(
			pts[i].x+dx, pts[i].y+dx*m[i],
			pts[i+1].x-dx, pts[i+1].y-dx*m[i+1],
			pts[i+1].x, pts[i+1].y)
	}
}

// curveMonotoneY is curveMonotoneX with the axes swapped.
func curveMonotoneY(sink PathSink, pts []point, cont bool) {
	sw := make([]point, len(pts))
	for i, p := range pts {
		sw[i] = point{p.y, p.x}
	}
	curveMonotoneX(swapSink{sink}, sw, cont)
}

type swapSink struct {
	s PathSink
}

func (w swapSink) MoveTo(x, y float64) { w.s.MoveTo(y, x) }
func (w swapSink) LineTo(x, y float64) { w.s.LineTo(y, x) }
func (w swapSink) CubicTo(x1, y1, x2, y2, x, y float64) {
	w.s.CubicTo(y1, x1, y2, x2, y, x)
}
func (w swapSink) ClosePath() { w.s.ClosePath() }

// slope3 is the three-point slope estimate at p1, clamped so the
// interpolant cannot overshoot between samples.
func slope3(p0, p1, p2 point) float64 {
	h0 := p1.x - p0.x
	h1 := p2.x - p1.x
	d0, d1 := h0, h1
	if d0 == 0 && h1 < 0 {
		d0 = math.Copysign(0, -1)
	}
	if d1 == 0 && h0 < 0 {
		d1 = math.Copysign(0, -1)
	}
	s0 := (p1.y - p0.y) / d0
	s1 := (p2.y - p1.y) / d1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	m := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 0
	}
	return m
}

// slope2 is the one-sided endpoint slope estimate given the adjacent
// interior tangent t.
func slope2(p0, p1 point, t float64) float64 {
	h := p1.x - p0.x
	if h != 0 {
		return (3*(p1.y-p0.y)/h - t) / 2
	}
	return t
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
