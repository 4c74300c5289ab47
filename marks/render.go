// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"math"

	"github.com/apple/embedding-atlas/scene"
)

// Render resolves one layer into scene nodes. Rows whose resolved
// coordinates are not finite are dropped. The returned slice is
// freshly built and owned by the caller; Render never mutates ctx or
// l, so repeated calls with the same inputs yield the same nodes.
func Render(ctx *Context, l *Layer) []scene.Node {
	if l == nil {
		return nil
	}
	e := newEnv(ctx, l)
	switch l.Primitive {
	case Rect:
		return e.renderRect(l)
	case Point:
		return e.renderPoint(l)
	case Rule:
		return e.renderRule(l)
	case Line:
		return e.renderLine(l)
	case Area:
		return e.renderArea(l)
	}
	Warning.Printf("unknown primitive %v", l.Primitive)
	return nil
}

// RenderLayers resolves layers in order into a single node list.
// Later layers paint over earlier ones.
func RenderLayers(ctx *Context, layers []*Layer) []scene.Node {
	var nodes []scene.Node
	for _, l := range layers {
		nodes = append(nodes, Render(ctx, l)...)
	}
	return nodes
}

// RenderTo renders layers and installs the result in g as a single
// atomic swap, so a concurrent reader sees either the old scene or
// the new one.
func RenderTo(ctx *Context, layers []*Layer, g *scene.Group) {
	g.SetNodes(RenderLayers(ctx, layers))
}

func (e *env) renderRect(l *Layer) []scene.Node {
	xb := e.resolveBand(XAxis, l.XDim)
	yb := e.resolveBand(YAxis, l.YDim)
	style := e.resolveStyle(l)
	var nodes []scene.Node
	for i := 0; i < e.tab.Len(); i++ {
		x, y := xb.At(i), yb.At(i)
		if !isFinite(x.V1) || !isFinite(x.V2) || !isFinite(y.V1) || !isFinite(y.V2) {
			continue
		}
		nodes = append(nodes, &scene.Rect{
			X:     math.Min(x.V1, x.V2),
			Y:     math.Min(y.V1, y.V2),
			W:     math.Abs(x.V2 - x.V1),
			H:     math.Abs(y.V2 - y.V1),
			Style: style.At(i),
		})
	}
	return nodes
}

func (e *env) renderPoint(l *Layer) []scene.Node {
	xs := e.resolvePoint(XAxis)
	ys := e.resolvePoint(YAxis)
	sizes := e.resolveSize(l.PointSize)
	style := e.resolveStyle(l)
	var nodes []scene.Node
	for i := 0; i < e.tab.Len(); i++ {
		x, y, size := xs.At(i), ys.At(i), sizes.At(i)
		if !isFinite(x) || !isFinite(y) || !isFinite(size) {
			continue
		}
		// Size is an area; the radius follows from it.
		nodes = append(nodes, &scene.Circle{
			CX:    x,
			CY:    y,
			R:     math.Sqrt(size / math.Pi),
			Style: style.At(i),
		})
	}
	return nodes
}

func (e *env) renderRule(l *Layer) []scene.Node {
	xb := e.resolveBand(XAxis, nil)
	yb := e.resolveBand(YAxis, nil)
	style := e.resolveStyle(l)
	var nodes []scene.Node
	for i := 0; i < e.tab.Len(); i++ {
		x, y := xb.At(i), yb.At(i)
		if !isFinite(x.V1) || !isFinite(x.V2) || !isFinite(y.V1) || !isFinite(y.V2) {
			continue
		}
		nodes = append(nodes, &scene.Line{
			X1:    x.V1,
			Y1:    y.V1,
			X2:    x.V2,
			Y2:    y.V2,
			Style: style.At(i),
		})
	}
	return nodes
}

func (e *env) renderLine(l *Layer) []scene.Node {
	style := e.resolveStyle(l)
	var nodes []scene.Node
	for _, idx := range lineData(e.tab) {
		p := new(scene.Path)
		e.linePath(l, idx, p)
		if p.Data() == "" {
			continue
		}
		p.Style = style.At(idx[0])
		nodes = append(nodes, p)
	}
	return nodes
}

func (e *env) renderArea(l *Layer) []scene.Node {
	style := e.resolveStyle(l)
	var nodes []scene.Node
	for _, idx := range lineData(e.tab) {
		p := new(scene.Path)
		e.areaPath(l, idx, p)
		if p.Data() == "" {
			continue
		}
		p.Style = style.At(idx[0])
		nodes = append(nodes, p)
	}
	return nodes
}
