// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package canvas

import "math"

// strokeOutline converts the subpaths of a stroked path into closed
// polygons whose union covers the stroked region. width is the device
// stroke width.
//
// The stroke is assembled piecewise: one quad per segment, plus join
// and cap pieces. Every polygon is emitted with the same orientation
// so overlaps between pieces accumulate winding instead of canceling.
func strokeOutline(subs []subpath, width float64, lcap LineCap, join LineJoin) []subpath {
	half := width / 2
	var out []subpath
	emit := func(pts []point) {
		out = appendPoly(out, pts)
	}

	for _, sub := range subs {
		pts := dedupe(sub.pts, sub.closed)
		if len(pts) < 2 {
			continue
		}
		nseg := len(pts) - 1
		if sub.closed {
			nseg = len(pts)
		}
		dirs := make([]point, nseg)
		for i := range dirs {
			a, b := pts[i], pts[(i+1)%len(pts)]
			d, _ := unit(a, b)
			dirs[i] = d
		}

		for i := 0; i < nseg; i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			nx, ny := dirs[i].y*half, -dirs[i].x*half
			emit([]point{
				{a.x + nx, a.y + ny},
				{b.x + nx, b.y + ny},
				{b.x - nx, b.y - ny},
				{a.x - nx, a.y - ny},
			})
		}

		if sub.closed {
			for i := 0; i < nseg; i++ {
				joinAt(emit, pts[i], dirs[(i+nseg-1)%nseg], dirs[i], half, join)
			}
		} else {
			for i := 1; i < len(pts)-1; i++ {
				joinAt(emit, pts[i], dirs[i-1], dirs[i], half, join)
			}
			d0 := dirs[0]
			capAt(emit, pts[0], point{-d0.x, -d0.y}, half, lcap)
			capAt(emit, pts[len(pts)-1], dirs[nseg-1], half, lcap)
		}
	}
	return out
}

// joinAt emits the piece that fills the outer wedge where two stroke
// segments meet at v. d0 and d1 are the unit directions of the
// incoming and outgoing segments.
func joinAt(emit func([]point), v, d0, d1 point, half float64, join LineJoin) {
	cross := d0.x*d1.y - d0.y*d1.x
	if join == RoundJoin {
		dot := d0.x*d1.x + d0.y*d1.y
		if math.Abs(cross) < 1e-12 && dot > 0 {
			return
		}
		emit(circlePoly(v, half))
		return
	}
	if math.Abs(cross) < 1e-12 {
		return
	}
	// The outer side of the corner is where the offset edges diverge.
	s := 1.0
	if cross < 0 {
		s = -1
	}
	n0 := point{d0.y * s * half, -d0.x * s * half}
	n1 := point{d1.y * s * half, -d1.x * s * half}
	p0 := point{v.x + n0.x, v.y + n0.y}
	p1 := point{v.x + n1.x, v.y + n1.y}
	if join != BevelJoin {
		bx, by := n0.x+n1.x, n0.y+n1.y
		if bl := math.Hypot(bx, by); bl > 1e-12 {
			cosHalf := bl / (2 * half)
			// Miter limit 10, matching the canvas default.
			if cosHalf*10 >= 1 {
				ml := half / cosHalf
				mp := point{v.x + bx/bl*ml, v.y + by/bl*ml}
				emit([]point{v, p0, mp, p1})
				return
			}
		}
	}
	emit([]point{v, p0, p1})
}

// capAt emits the end-cap piece at p for a stroke heading in unit
// direction d past the path end.
func capAt(emit func([]point), p, d point, half float64, lcap LineCap) {
	switch lcap {
	case RoundCap:
		emit(circlePoly(p, half))
	case SquareCap:
		nx, ny := d.y*half, -d.x*half
		e := point{p.x + d.x*half, p.y + d.y*half}
		emit([]point{
			{p.x + nx, p.y + ny},
			{e.x + nx, e.y + ny},
			{e.x - nx, e.y - ny},
			{p.x - nx, p.y - ny},
		})
	}
}

func circlePoly(c point, r float64) []point {
	const n = 32
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = point{c.x + r*math.Cos(a), c.y + r*math.Sin(a)}
	}
	return pts
}

// appendPoly appends pts as a closed polygon, flipped if needed so all
// emitted polygons share one orientation.
func appendPoly(out []subpath, pts []point) []subpath {
	if len(pts) < 3 {
		return out
	}
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return append(out, subpath{pts: pts, closed: true})
}

func signedArea(pts []point) float64 {
	sum := 0.0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.x*q.y - q.x*p.y
	}
	return sum / 2
}

// dedupe drops consecutive duplicate points, plus a duplicated final
// point on closed subpaths.
func dedupe(pts []point, closed bool) []point {
	const eps = 1e-9
	if len(pts) == 0 {
		return pts
	}
	out := make([]point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if math.Abs(p.x-last.x) > eps || math.Abs(p.y-last.y) > eps {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 {
		a, b := out[0], out[len(out)-1]
		if math.Abs(a.x-b.x) <= eps && math.Abs(a.y-b.y) <= eps {
			out = out[:len(out)-1]
		}
	}
	return out
}

func unit(a, b point) (point, bool) {
	dx, dy := b.x-a.x, b.y-a.y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return point{}, false
	}
	return point{dx / l, dy / l}, true
}
