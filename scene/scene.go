// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Package scene provides a small retained scene graph for chart marks.
//
// A scene is a flat list of nodes, each holding fully resolved
// geometry in pixel coordinates plus a CSS-oriented style bag. The
// renderer builds a complete node list off to the side and installs it
// in a Group in a single step, so a concurrent reader serializing the
// scene never observes a partially updated frame.
package scene

import (
	"io"
	"strconv"
	"sync"

	svg "github.com/ajstarks/svgo"
)

// A Node is one visual element in a scene.
type Node interface {
	// emit writes the node to an SVG document.
	emit(c *svg.SVG)
}

// Style describes how a node is painted. Fill and Stroke are CSS paint
// values; an empty string means no paint. PaintOrder is forwarded to
// the output verbatim when set.
//
// The zero Style paints nothing. Opacities are absolute values, not
// deltas from a default, so a visible style must set them explicitly.
type Style struct {
	Fill          string
	Stroke        string
	StrokeWidth   float64
	StrokeCap     string
	StrokeJoin    string
	FillOpacity   float64
	StrokeOpacity float64
	Opacity       float64
	PaintOrder    string
}

func (s *Style) css() string {
	fill, stroke := s.Fill, s.Stroke
	if fill == "" {
		fill = "none"
	}
	if stroke == "" {
		stroke = "none"
	}
	css := "fill:" + fill + ";stroke:" + stroke
	if stroke != "none" {
		css += ";stroke-width:" + fmtFloat(s.StrokeWidth)
		if s.StrokeCap != "" && s.StrokeCap != "butt" {
			css += ";stroke-linecap:" + s.StrokeCap
		}
		if s.StrokeJoin != "" && s.StrokeJoin != "miter" {
			css += ";stroke-linejoin:" + s.StrokeJoin
		}
		if s.StrokeOpacity != 1 {
			css += ";stroke-opacity:" + fmtFloat(s.StrokeOpacity)
		}
	}
	if fill != "none" && s.FillOpacity != 1 {
		css += ";fill-opacity:" + fmtFloat(s.FillOpacity)
	}
	if s.Opacity != 1 {
		css += ";opacity:" + fmtFloat(s.Opacity)
	}
	if s.PaintOrder != "" {
		css += ";paint-order:" + s.PaintOrder
	}
	return css
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// Rect is an axis-aligned rectangle with its origin at the top left.
type Rect struct {
	X, Y, W, H float64
	Style      Style
}

// Circle is a filled or stroked circle centered at (CX, CY).
type Circle struct {
	CX, CY, R float64
	Style     Style
}

// Line is a straight segment from (X1, Y1) to (X2, Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
	Style          Style
}

// Path is an arbitrary outline built from move, line, and cubic Bézier
// commands. Its command list uses SVG path data syntax.
type Path struct {
	Style Style

	d []byte
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.d = append(p.d, 'M')
	p.arg(x)
	p.arg(y)
}

// LineTo extends the current subpath with a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.d = append(p.d, 'L')
	p.arg(x)
	p.arg(y)
}

// CubicTo extends the current subpath with a cubic Bézier segment to
// (x, y) using the control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	p.d = append(p.d, 'C')
	p.arg(x1)
	p.arg(y1)
	p.arg(x2)
	p.arg(y2)
	p.arg(x)
	p.arg(y)
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.d = append(p.d, 'Z')
}

// Data returns the accumulated SVG path data.
func (p *Path) Data() string {
	return string(p.d)
}

func (p *Path) arg(v float64) {
	p.d = append(p.d, ' ')
	p.d = strconv.AppendFloat(p.d, v, 'g', 6, 64)
}

// A Group owns the node list of a scene. The list is replaced
// wholesale on every render, never edited in place.
type Group struct {
	mu    sync.Mutex
	nodes []Node
}

// SetNodes installs nodes as the group's new contents in one step.
func (g *Group) SetNodes(nodes []Node) {
	g.mu.Lock()
	g.nodes = nodes
	g.mu.Unlock()
}

// Nodes returns the currently installed node list. The returned slice
// must not be modified.
func (g *Group) Nodes() []Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nodes
}

// WriteSVG serializes the group's current contents as a complete SVG
// document of the given pixel size.
func (g *Group) WriteSVG(w io.Writer, width, height int) error {
	return WriteSVG(w, width, height, g.Nodes())
}
