// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Package canvas defines an immediate-mode 2D drawing surface in the
// style of the HTML canvas API, along with a software rasterizer
// implementing it.
//
// A Canvas has a current path, a current transform, and current paint
// state. Drawing is destructive: the caller clears the surface, sets a
// transform, and replays its marks in order. The package also provides
// Blit for pushing rendered pixels to small hardware displays.
package canvas

import "image/color"

// LineCap controls how stroked path ends are finished.
type LineCap string

const (
	ButtCap   LineCap = "butt"
	RoundCap  LineCap = "round"
	SquareCap LineCap = "square"
)

// LineJoin controls how stroked path corners are finished.
type LineJoin string

const (
	MiterJoin LineJoin = "miter"
	RoundJoin LineJoin = "round"
	BevelJoin LineJoin = "bevel"
)

// Canvas is an immediate-mode drawing surface.
//
// The transform set by SetTransform maps user coordinates (x, y) to
// device pixels (scale*(x+tx), scale*(y+ty)). Path verbs take user
// coordinates; line widths are user units and are scaled by the
// transform's scale factor when stroking.
type Canvas interface {
	// Clear erases every pixel of the surface.
	Clear()
	// SetTransform replaces the current transform.
	SetTransform(scale, tx, ty float64)

	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
	// SetGlobalAlpha sets an opacity in [0, 1] applied on top of the
	// paint colors' own alpha.
	SetGlobalAlpha(a float64)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x, y float64)
	ClosePath()
	// Rect appends a closed rectangular subpath.
	Rect(x, y, w, h float64)
	// Circle appends a closed circular subpath.
	Circle(cx, cy, r float64)

	// Fill paints the interior of the current path.
	Fill()
	// Stroke paints the outline of the current path.
	Stroke()
}
