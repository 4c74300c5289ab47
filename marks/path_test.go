// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"math"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/apple/embedding-atlas/scene"
)

func TestLinePath(t *testing.T) {
	// Rows with non-finite positions drop; the rest draw in x order
	// regardless of row order.
	tab := new(table.Builder).
		Add("x", []float64{3, math.NaN(), 1, 2}).
		Add("y", []float64{30, 0, 10, 20}).
		Done()
	sc := &Scales{PlotWidth: 100, PlotHeight: 100, X: linearScale{m: 1}, Y: linearScale{m: 1}}
	l := &Layer{Data: tab}
	e := newEnv(&Context{Scales: sc}, l)

	p := new(scene.Path)
	e.linePath(l, []int{0, 1, 2, 3}, p)
	if have, want := p.Data(), "M 1 10L 2 20L 3 30"; have != want {
		t.Errorf("data = %q, want %q", have, want)
	}
}

func TestLinePathIndex(t *testing.T) {
	// Only the rows of the series index contribute.
	tab := new(table.Builder).
		Add("x", []float64{1, 5, 2, 6}).
		Add("y", []float64{10, 50, 20, 60}).
		Done()
	sc := &Scales{X: linearScale{m: 1}, Y: linearScale{m: 1}}
	l := &Layer{Data: tab}
	e := newEnv(&Context{Scales: sc}, l)

	p := new(scene.Path)
	e.linePath(l, []int{1, 3}, p)
	if have, want := p.Data(), "M 5 50L 6 60"; have != want {
		t.Errorf("data = %q, want %q", have, want)
	}
}

func TestAreaPathVertical(t *testing.T) {
	// A vertical area runs along x and spans the y band: out along
	// the lower boundary, back along the upper, then closed.
	tab := new(table.Builder).
		Add("x", []float64{0, 1}).
		Add("y", []float64{10, 20}).
		Done()
	sc := &Scales{X: linearScale{m: 1}, Y: linearScale{m: 1, w: 5}}
	l := &Layer{Data: tab}
	e := newEnv(&Context{Scales: sc}, l)

	p := new(scene.Path)
	e.areaPath(l, []int{0, 1}, p)
	if have, want := p.Data(), "M 0 10L 1 20L 1 25L 0 15Z"; have != want {
		t.Errorf("data = %q, want %q", have, want)
	}
}

func TestAreaPathHorizontal(t *testing.T) {
	tab := new(table.Builder).
		Add("y", []float64{0, 1}).
		Add("x", []float64{2, 4}).
		Done()
	sc := &Scales{X: linearScale{m: 1, w: 5}, Y: linearScale{m: 1}}
	l := &Layer{Data: tab, Orientation: Horizontal}
	e := newEnv(&Context{Scales: sc}, l)

	p := new(scene.Path)
	e.areaPath(l, []int{0, 1}, p)
	if have, want := p.Data(), "M 2 0L 4 1L 9 1L 7 0Z"; have != want {
		t.Errorf("data = %q, want %q", have, want)
	}
}

func TestAreaPathEmpty(t *testing.T) {
	tab := new(table.Builder).
		Add("x", []float64{math.NaN()}).
		Add("y", []float64{1}).
		Done()
	sc := &Scales{X: linearScale{m: 1}, Y: linearScale{m: 1}}
	l := &Layer{Data: tab}
	e := newEnv(&Context{Scales: sc}, l)

	p := new(scene.Path)
	e.areaPath(l, []int{0}, p)
	if have := p.Data(); have != "" {
		t.Errorf("data = %q, want empty", have)
	}
}
