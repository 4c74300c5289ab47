// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Package chartdemo builds the sample chart the host commands render.
// Every host feeds the same context and layer stack to its backend,
// which keeps the commands thin and makes their output comparable.
package chartdemo

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"

	"github.com/apple/embedding-atlas/arrowtab"
	"github.com/apple/embedding-atlas/canvas"
	"github.com/apple/embedding-atlas/marks"
	"github.com/apple/embedding-atlas/scales"
)

// Margin is the gutter between the plot area and the chart edge, in
// user units. It is baked into the scale ranges so retained and
// immediate hosts place marks identically.
const Margin = 36

const (
	xMax    = 12.0
	samples = 49
)

// trend is the smooth signal. observed adds a deterministic wiggle on
// top so the two series separate visibly.
func trend(x float64) float64 {
	return 3 + 2.1*math.Sin(0.8*x)*math.Exp(-x/16)
}

func observed(x float64) float64 {
	return trend(x) + 0.9*math.Sin(2.6*x)*math.Cos(0.35*x+1)
}

// Chart returns the demo chart sized for a width×height surface in
// user units: a histogram underlay, a confidence band, the trend and
// observed series as lines, sampled points sized by their deviation
// from the trend, and horizontal grid rules. Raster hosts pass their
// device pixel ratio to DrawLayers rather than resizing here.
func Chart(width, height float64) (*marks.Context, []*marks.Layer) {
	xs := make([]float64, samples)
	trends := make([]float64, samples)
	obs := make([]float64, samples)
	lo := make([]float64, samples)
	hi := make([]float64, samples)
	for i := range xs {
		x := xMax * float64(i) / float64(samples-1)
		xs[i] = x
		trends[i] = trend(x)
		obs[i] = observed(x)
		lo[i] = trends[i] - 0.7
		hi[i] = trends[i] + 0.7
	}

	// Sample counts per unit of x, drawn as a histogram underlay.
	bins := int(xMax)
	x1 := make([]float64, bins)
	x2 := make([]float64, bins)
	y1 := make([]float64, bins)
	y2 := make([]float64, bins)
	for i := range x1 {
		x1[i] = float64(i)
		x2[i] = float64(i) + 1
		c := math.Sin(0.7*float64(i) + 0.4)
		y2[i] = 0.4 + 1.6*c*c
	}

	sx := scales.NewLinear(Margin, width-Margin).SetDomain(0, xMax)
	sy := scales.NewLinear(height-Margin, Margin).
		Train(obs).Train(lo).Train(hi).Train(y1).Train(y2)

	series := []string{"trend", "observed"}
	sc := &marks.Scales{
		PlotWidth:  width,
		PlotHeight: height,
		X:          sx,
		Y:          sy,
		Color:      scales.NewOrdinal(series, nil),
		Size:       scales.NewLinear(16, 144).SetDomain(0, 1),
	}

	grid := new(table.Builder).Add("y", sy.Ticks(6)).Done()
	bars := new(table.Builder).
		Add("x1", x1).Add("x2", x2).
		Add("y1", y1).Add("y2", y2).
		Done()
	band := new(table.Builder).
		Add("x", xs).Add("y1", lo).Add("y2", hi).
		Done()

	lineX := append(append([]float64{}, xs...), xs...)
	lineY := append(append([]float64{}, trends...), obs...)
	lineSeries := make([]string, 0, 2*samples)
	for range xs {
		lineSeries = append(lineSeries, "trend")
	}
	for range xs {
		lineSeries = append(lineSeries, "observed")
	}
	lines := new(table.Builder).
		Add("x", lineX).Add("y", lineY).Add("color", lineSeries).
		Done()

	gridStyle := marks.DefaultMarkStyle()
	gridStyle.StrokeColor = "$gridColor"

	barStyle := marks.DefaultMarkStyle()
	barStyle.FillColor = "#9ecae1"
	barStyle.FillOpacity = 0.4

	bandStyle := marks.DefaultMarkStyle()
	bandStyle.FillColor = "$markColor"
	bandStyle.FillOpacity = 0.15

	lineStyle := marks.DefaultMarkStyle()
	lineStyle.StrokeColor = "$encoding"
	lineStyle.StrokeWidth = 2
	lineStyle.StrokeCap = canvas.RoundCap
	lineStyle.StrokeJoin = canvas.RoundJoin

	pointStyle := marks.DefaultMarkStyle()
	pointStyle.FillColor = "$encoding"
	pointStyle.FillOpacity = 0.85

	ctx := &marks.Context{Scales: sc, Theme: marks.DefaultTheme()}
	layers := []*marks.Layer{
		{Primitive: marks.Rule, Data: grid, Style: gridStyle},
		{Primitive: marks.Rect, Data: bars, Style: barStyle, XDim: marks.Gap(2, 0.5)},
		{Primitive: marks.Area, Data: band, Style: bandStyle, Interpolate: "monotone"},
		{Primitive: marks.Line, Data: lines, Style: lineStyle, Interpolate: "monotone"},
		{Primitive: marks.Point, Data: observedPoints(xs, trends, obs), Style: pointStyle},
	}
	return ctx, layers
}

// observedPoints builds the scatter table through an Arrow record,
// the form chart data arrives in from upstream, and keys point size
// to how far each sample strays from the trend.
func observedPoints(xs, trends, obs []float64) *table.Table {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "x", Type: arrow.PrimitiveTypes.Float64},
		{Name: "y", Type: arrow.PrimitiveTypes.Float64},
		{Name: "size", Type: arrow.PrimitiveTypes.Float64},
	}, nil)

	xb := array.NewFloat64Builder(mem)
	defer xb.Release()
	yb := array.NewFloat64Builder(mem)
	defer yb.Release()
	sb := array.NewFloat64Builder(mem)
	defer sb.Release()
	n := 0
	for i := 0; i < len(xs); i += 4 {
		xb.Append(xs[i])
		yb.Append(obs[i])
		sb.Append(math.Abs(obs[i] - trends[i]))
		n++
	}

	cols := []arrow.Array{xb.NewArray(), yb.NewArray(), sb.NewArray()}
	for _, col := range cols {
		defer col.Release()
	}
	rec := array.NewRecord(schema, cols, int64(n))
	defer rec.Release()

	tab, err := arrowtab.FromRecord(rec)
	if err != nil {
		// The record is built from static data above; a conversion
		// failure is a programming error.
		panic("chartdemo: " + err.Error())
	}
	return table.NewBuilder(tab).AddConst("color", "observed").Done()
}
