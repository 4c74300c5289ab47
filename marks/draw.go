// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"math"

	"github.com/apple/embedding-atlas/canvas"
)

// Draw paints one layer onto cv in immediate mode, one path per mark
// (per series for lines and areas). Rows whose resolved coordinates
// are not finite are dropped. Draw leaves the canvas state it set;
// callers that interleave other drawing must reset it themselves.
func Draw(ctx *Context, l *Layer, cv canvas.Canvas) {
	if cv == nil || l == nil {
		return
	}
	e := newEnv(ctx, l)
	style := e.resolveCanvasStyle(l)
	style.prepare(cv)
	switch l.Primitive {
	case Rect:
		e.drawRect(l, cv, style)
	case Point:
		e.drawPoint(l, cv, style)
	case Rule:
		e.drawRule(l, cv, style)
	case Line:
		e.drawLine(l, cv, style)
	case Area:
		e.drawArea(l, cv, style)
	default:
		Warning.Printf("unknown primitive %v", l.Primitive)
	}
}

// DrawLayers redraws the whole plot: it clears cv, applies the device
// transform, and paints the layers in order. pixelRatio scales user
// coordinates to device pixels; marginX and marginY offset the plot
// origin in user units. A nil canvas is skipped so hosts can run
// headless before a surface exists.
func DrawLayers(ctx *Context, layers []*Layer, cv canvas.Canvas, pixelRatio, marginX, marginY float64) {
	if cv == nil {
		return
	}
	cv.Clear()
	cv.SetTransform(pixelRatio, marginX, marginY)
	for _, l := range layers {
		Draw(ctx, l, cv)
	}
}

func (e *env) drawRect(l *Layer, cv canvas.Canvas, style canvasStyle) {
	xb := e.resolveBand(XAxis, l.XDim)
	yb := e.resolveBand(YAxis, l.YDim)
	for i := 0; i < e.tab.Len(); i++ {
		x, y := xb.At(i), yb.At(i)
		if !isFinite(x.V1) || !isFinite(x.V2) || !isFinite(y.V1) || !isFinite(y.V2) {
			continue
		}
		cv.BeginPath()
		cv.Rect(math.Min(x.V1, x.V2), math.Min(y.V1, y.V2),
			math.Abs(x.V2-x.V1), math.Abs(y.V2-y.V1))
		style.draw(cv, i)
	}
}

func (e *env) drawPoint(l *Layer, cv canvas.Canvas, style canvasStyle) {
	xs := e.resolvePoint(XAxis)
	ys := e.resolvePoint(YAxis)
	sizes := e.resolveSize(l.PointSize)
	for i := 0; i < e.tab.Len(); i++ {
		x, y, size := xs.At(i), ys.At(i), sizes.At(i)
		if !isFinite(x) || !isFinite(y) || !isFinite(size) {
			continue
		}
		cv.BeginPath()
		cv.Circle(x, y, math.Sqrt(size/math.Pi))
		style.draw(cv, i)
	}
}

func (e *env) drawRule(l *Layer, cv canvas.Canvas, style canvasStyle) {
	xb := e.resolveBand(XAxis, nil)
	yb := e.resolveBand(YAxis, nil)
	for i := 0; i < e.tab.Len(); i++ {
		x, y := xb.At(i), yb.At(i)
		if !isFinite(x.V1) || !isFinite(x.V2) || !isFinite(y.V1) || !isFinite(y.V2) {
			continue
		}
		cv.BeginPath()
		cv.MoveTo(x.V1, y.V1)
		cv.LineTo(x.V2, y.V2)
		style.draw(cv, i)
	}
}

func (e *env) drawLine(l *Layer, cv canvas.Canvas, style canvasStyle) {
	for _, idx := range lineData(e.tab) {
		cv.BeginPath()
		e.linePath(l, idx, cv)
		style.draw(cv, idx[0])
	}
}

func (e *env) drawArea(l *Layer, cv canvas.Canvas, style canvasStyle) {
	for _, idx := range lineData(e.tab) {
		cv.BeginPath()
		e.areaPath(l, idx, cv)
		style.draw(cv, idx[0])
	}
}
