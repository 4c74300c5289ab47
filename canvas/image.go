// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Image is a software-rasterized Canvas backed by an RGBA pixel
// buffer. It is not safe for concurrent use.
type Image struct {
	rgba *image.RGBA

	scale, tx, ty float64
	fill, stroke  color.Color
	lineWidth     float64
	lineCap       LineCap
	lineJoin      LineJoin
	alpha         float64

	// Current path, flattened to polylines in device coordinates.
	subs  []subpath
	first point
	cur   point
	open  bool

	ras *vector.Rasterizer
}

type subpath struct {
	pts    []point
	closed bool
}

type point struct {
	x, y float64
}

var _ Canvas = (*Image)(nil)

// NewImage returns a canvas with a transparent width-by-height pixel
// surface.
func NewImage(width, height int) *Image {
	return &Image{
		rgba:      image.NewRGBA(image.Rect(0, 0, width, height)),
		scale:     1,
		fill:      color.Black,
		stroke:    color.Black,
		lineWidth: 1,
		lineCap:   ButtCap,
		lineJoin:  MiterJoin,
		alpha:     1,
		ras:       vector.NewRasterizer(width, height),
	}
}

// RGBA returns the backing pixel buffer.
func (m *Image) RGBA() *image.RGBA {
	return m.rgba
}

func (m *Image) Clear() {
	pix := m.rgba.Pix
	for i := range pix {
		pix[i] = 0
	}
}

func (m *Image) SetTransform(scale, tx, ty float64) {
	m.scale, m.tx, m.ty = scale, tx, ty
}

func (m *Image) SetFillColor(c color.Color)   { m.fill = c }
func (m *Image) SetStrokeColor(c color.Color) { m.stroke = c }
func (m *Image) SetLineWidth(w float64)       { m.lineWidth = w }
func (m *Image) SetLineCap(c LineCap)         { m.lineCap = c }
func (m *Image) SetLineJoin(j LineJoin)       { m.lineJoin = j }

func (m *Image) SetGlobalAlpha(a float64) {
	m.alpha = math.Min(math.Max(a, 0), 1)
}

func (m *Image) dev(x, y float64) point {
	return point{m.scale * (x + m.tx), m.scale * (y + m.ty)}
}

func (m *Image) BeginPath() {
	m.subs = m.subs[:0]
	m.open = false
}

func (m *Image) MoveTo(x, y float64) {
	p := m.dev(x, y)
	m.subs = append(m.subs, subpath{pts: []point{p}})
	m.first, m.cur = p, p
	m.open = true
}

func (m *Image) LineTo(x, y float64) {
	if !m.open {
		m.MoveTo(x, y)
		return
	}
	p := m.dev(x, y)
	m.lineToDev(p)
}

func (m *Image) lineToDev(p point) {
	sub := &m.subs[len(m.subs)-1]
	if sub.closed {
		// A verb after ClosePath starts a new subpath at the
		// closed subpath's origin.
		m.subs = append(m.subs, subpath{pts: []point{m.first}})
		sub = &m.subs[len(m.subs)-1]
	}
	sub.pts = append(sub.pts, p)
	m.cur = p
}

func (m *Image) CubicTo(x1, y1, x2, y2, x, y float64) {
	if !m.open {
		m.MoveTo(x, y)
		return
	}
	p1, p2, p3 := m.dev(x1, y1), m.dev(x2, y2), m.dev(x, y)
	flattenCubic(m, m.cur, p1, p2, p3, 0)
}

func (m *Image) ClosePath() {
	if !m.open || len(m.subs) == 0 {
		return
	}
	m.subs[len(m.subs)-1].closed = true
	m.cur = m.first
}

func (m *Image) Rect(x, y, w, h float64) {
	m.MoveTo(x, y)
	m.LineTo(x+w, y)
	m.LineTo(x+w, y+h)
	m.LineTo(x, y+h)
	m.ClosePath()
}

// kappa is the control-point ratio approximating a quarter circle with
// one cubic Bézier segment.
const kappa = 0.5522847498307933

func (m *Image) Circle(cx, cy, r float64) {
	k := kappa * r
	m.MoveTo(cx+r, cy)
	m.CubicTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	m.CubicTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	m.CubicTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	m.CubicTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	m.ClosePath()
}

func (m *Image) Fill() {
	m.paint(m.subs, m.fill)
}

func (m *Image) Stroke() {
	w := m.lineWidth * m.scale
	if w <= 0 {
		return
	}
	outline := strokeOutline(m.subs, w, m.lineCap, m.lineJoin)
	m.paint(outline, m.stroke)
}

// paint rasterizes subs with the given paint color, modulated by the
// global alpha, and composites the result over the pixel buffer.
func (m *Image) paint(subs []subpath, c color.Color) {
	src, ok := m.paintColor(c)
	if !ok || len(subs) == 0 {
		return
	}
	b := m.rgba.Bounds()
	z := m.ras
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	any := false
	for _, sub := range subs {
		if len(sub.pts) < 2 {
			continue
		}
		z.MoveTo(float32(sub.pts[0].x), float32(sub.pts[0].y))
		for _, p := range sub.pts[1:] {
			z.LineTo(float32(p.x), float32(p.y))
		}
		z.ClosePath()
		any = true
	}
	if !any {
		return
	}
	z.Draw(m.rgba, b, image.NewUniform(src), image.Point{})
}

// paintColor applies the global alpha to c. The boolean result is
// false when the effective paint is fully transparent.
func (m *Image) paintColor(c color.Color) (color.Color, bool) {
	if c == nil || m.alpha <= 0 {
		return nil, false
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return nil, false
	}
	if m.alpha >= 1 {
		return c, true
	}
	// Colors are alpha-premultiplied, so scale every component.
	return color.RGBA64{
		R: uint16(float64(r) * m.alpha),
		G: uint16(float64(g) * m.alpha),
		B: uint16(float64(b) * m.alpha),
		A: uint16(float64(a) * m.alpha),
	}, true
}

// flattenCubic appends a polyline approximation of the cubic Bézier
// (p0, p1, p2, p3) to the current subpath, excluding p0.
func flattenCubic(m *Image, p0, p1, p2, p3 point, depth int) {
	if depth >= 12 || cubicFlat(p0, p1, p2, p3) {
		m.lineToDev(p3)
		return
	}
	// Subdivide at t=1/2.
	ab := mid(p0, p1)
	bc := mid(p1, p2)
	cd := mid(p2, p3)
	abc := mid(ab, bc)
	bcd := mid(bc, cd)
	abcd := mid(abc, bcd)
	flattenCubic(m, p0, ab, abc, abcd, depth+1)
	flattenCubic(m, abcd, bcd, cd, p3, depth+1)
}

func mid(a, b point) point {
	return point{(a.x + b.x) / 2, (a.y + b.y) / 2}
}

// cubicFlat reports whether the control points lie within a small
// tolerance of the chord.
func cubicFlat(p0, p1, p2, p3 point) bool {
	const tol = 0.1
	d1 := ptSegDist(p1, p0, p3)
	d2 := ptSegDist(p2, p0, p3)
	return d1 <= tol && d2 <= tol
}

// ptSegDist returns the distance from p to the segment ab.
func ptSegDist(p, a, b point) float64 {
	dx, dy := b.x-a.x, b.y-a.y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p.x-a.x, p.y-a.y)
	}
	t := ((p.x-a.x)*dx + (p.y-a.y)*dy) / l2
	t = math.Min(math.Max(t, 0), 1)
	return math.Hypot(p.x-(a.x+t*dx), p.y-(a.y+t*dy))
}
