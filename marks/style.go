// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"image/color"
	"strings"

	"github.com/apple/embedding-atlas/canvas"
	"github.com/apple/embedding-atlas/internal/css"
	"github.com/apple/embedding-atlas/scene"
)

type paintKind int

const (
	paintNone paintKind = iota
	paintLiteral
	paintEncoded
)

// paint is a resolved color spec. Literal paints carry the CSS value
// and, when it parses, the concrete color for raster backends.
type paint struct {
	kind paintKind
	css  string
	col  color.Color
	ok   bool
}

// resolvePaint interprets a color value from a MarkStyle. The empty
// string means no paint. "$encoding" defers to the color channel per
// row. Any other "$name" reads the theme token "name"; an unknown
// token falls back to the "$name" string itself. Anything else is a
// CSS literal, passed through verbatim.
func (e *env) resolvePaint(spec string) paint {
	switch {
	case spec == "":
		return paint{kind: paintNone}
	case spec == "$encoding":
		return paint{kind: paintEncoded}
	case strings.HasPrefix(spec, "$"):
		if v, ok := e.th[spec[1:]]; ok {
			spec = v
		}
	}
	p := paint{kind: paintLiteral, css: spec}
	p.col, p.ok = css.Parse(spec)
	return p
}

// resolveStyle resolves a layer's style into per-row attribute bags
// for the retained backend. Unless a paint reads the color channel
// the bag is the same for every row.
func (e *env) resolveStyle(l *Layer) Mapped[scene.Style] {
	st := l.Style
	base := scene.Style{
		StrokeWidth:   st.StrokeWidth,
		StrokeCap:     string(st.StrokeCap),
		StrokeJoin:    string(st.StrokeJoin),
		FillOpacity:   st.FillOpacity,
		StrokeOpacity: st.StrokeOpacity,
		Opacity:       st.Opacity,
		PaintOrder:    st.PaintOrder,
	}
	fill := e.resolvePaint(st.FillColor)
	stroke := e.resolvePaint(st.StrokeColor)
	if fill.kind == paintLiteral {
		base.Fill = fill.css
	}
	if stroke.kind == paintLiteral {
		base.Stroke = stroke.css
	}
	if fill.kind != paintEncoded && stroke.kind != paintEncoded {
		return Constant(e.tab.Len(), base)
	}
	colors := e.resolveColor()
	return Mapped[scene.Style]{Len: colors.Len, At: func(i int) scene.Style {
		s := base
		c := css.Format(colors.At(i))
		if fill.kind == paintEncoded {
			s.Fill = c
		}
		if stroke.kind == paintEncoded {
			s.Stroke = c
		}
		return s
	}}
}

// canvasStyle is the immediate-mode form of a resolved style. prepare
// sets row-independent canvas state once per layer; draw paints the
// current path for row i.
type canvasStyle struct {
	prepare func(cv canvas.Canvas)
	draw    func(cv canvas.Canvas, i int)
}

// resolveCanvasStyle resolves a layer's style for the canvas backend.
// Fills paint before strokes unless PaintOrder is exactly
// "stroke fill"; other paint-order values keep the default. A paint
// whose effective alpha is zero or whose literal fails to parse is
// skipped.
func (e *env) resolveCanvasStyle(l *Layer) canvasStyle {
	st := l.Style
	fill := e.resolvePaint(st.FillColor)
	stroke := e.resolvePaint(st.StrokeColor)
	var colors Mapped[color.Color]
	if fill.kind == paintEncoded || stroke.kind == paintEncoded {
		colors = e.resolveColor()
	}

	fillAlpha := st.Opacity * st.FillOpacity
	strokeAlpha := st.Opacity * st.StrokeOpacity
	doFill := fillAlpha > 0 && (fill.kind == paintEncoded || fill.kind == paintLiteral && fill.ok)
	doStroke := strokeAlpha > 0 && (stroke.kind == paintEncoded || stroke.kind == paintLiteral && stroke.ok)

	prepare := func(cv canvas.Canvas) {
		cv.SetLineWidth(st.StrokeWidth)
		cv.SetLineCap(st.StrokeCap)
		cv.SetLineJoin(st.StrokeJoin)
		cv.SetGlobalAlpha(st.Opacity)
		if fill.kind == paintLiteral && fill.ok {
			cv.SetFillColor(fill.col)
		}
		if stroke.kind == paintLiteral && stroke.ok {
			cv.SetStrokeColor(stroke.col)
		}
	}
	draw := func(cv canvas.Canvas, i int) {
		if colors.At != nil {
			c := colors.At(i)
			if fill.kind == paintEncoded {
				cv.SetFillColor(c)
			}
			if stroke.kind == paintEncoded {
				cv.SetStrokeColor(c)
			}
		}
		paintFill := func() {
			if doFill {
				cv.SetGlobalAlpha(fillAlpha)
				cv.Fill()
			}
		}
		paintStroke := func() {
			if doStroke {
				cv.SetGlobalAlpha(strokeAlpha)
				cv.Stroke()
			}
		}
		if st.PaintOrder == "stroke fill" {
			paintStroke()
			paintFill()
		} else {
			paintFill()
			paintStroke()
		}
	}
	return canvasStyle{prepare: prepare, draw: draw}
}
