// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package scales

import (
	"image/color"
	"math"
	"reflect"
	"testing"
)

func TestLinearApply(t *testing.T) {
	s := NewLinear(0, 100).SetDomain(0, 10)
	tests := []struct {
		v    interface{}
		want float64
	}{
		{0.0, 0},
		{5.0, 50},
		{10.0, 100},
		{int(5), 50},
		// Out-of-domain values extrapolate; the renderer culls by
		// plot bounds, not the scale.
		{20.0, 200},
	}
	for _, test := range tests {
		if have := s.Apply(test.v); have != test.want {
			t.Errorf("Apply(%v) = %v, want %v", test.v, have, test.want)
		}
	}
	if have := s.Apply("a"); !math.IsNaN(have) {
		t.Errorf("Apply(string) = %v, want NaN", have)
	}
}

func TestLinearTrain(t *testing.T) {
	s := NewLinear(0, 100).Train([]float64{2, math.NaN(), 8})
	if have := s.Apply(2.0); have != 0 {
		t.Errorf("Apply(min) = %v, want 0", have)
	}
	if have := s.Apply(8.0); have != 100 {
		t.Errorf("Apply(max) = %v, want 100", have)
	}

	// An explicit bound wins over the trained one; NaN bounds defer
	// to training.
	s = NewLinear(0, 100).SetDomain(0, math.NaN()).Train([]float64{2, 8})
	if have := s.Apply(0.0); have != 0 {
		t.Errorf("Apply(0) = %v, want 0", have)
	}
	if have := s.Apply(8.0); have != 100 {
		t.Errorf("Apply(8) = %v, want 100", have)
	}
}

func TestLinearDegenerate(t *testing.T) {
	// Untrained and single-value domains still map finitely.
	s := NewLinear(0, 100)
	if have := s.Apply(0.0); math.IsNaN(have) || math.IsInf(have, 0) {
		t.Errorf("untrained Apply = %v, want finite", have)
	}
	s = NewLinear(0, 100).Train([]float64{5, 5})
	if have := s.Apply(5.0); math.IsNaN(have) || math.IsInf(have, 0) {
		t.Errorf("zero-width Apply = %v, want finite", have)
	}
}

func TestLinearApplyBand(t *testing.T) {
	s := NewLinear(0, 100).SetDomain(0, 10)
	lo, hi := s.ApplyBand(5.0)
	if lo != 50 || hi != 50 {
		t.Errorf("ApplyBand = %v, %v, want 50, 50", lo, hi)
	}
}

func TestLinearTicks(t *testing.T) {
	s := NewLinear(0, 100).SetDomain(0, 10)
	ticks := s.Ticks(2)
	if want := []float64{0, 10}; !reflect.DeepEqual(ticks, want) {
		t.Errorf("Ticks(2) = %v, want %v", ticks, want)
	}

	ticks = s.Ticks(6)
	if len(ticks) < 2 || len(ticks) > 6 {
		t.Fatalf("Ticks(6) = %v, want 2 to 6 ticks", ticks)
	}
	for i, v := range ticks {
		if v < 0 || v > 10 {
			t.Errorf("tick %v outside the domain", v)
		}
		if i > 0 && v <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}
}

func TestBand(t *testing.T) {
	s := NewBand([]string{"b", "a", "c", "a"}, 0, 90, 0)
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(s.Values(), want) {
		t.Errorf("Values = %v, want %v", s.Values(), want)
	}
	if have := s.Apply("a"); have != 15 {
		t.Errorf("Apply(a) = %v, want 15", have)
	}
	if have := s.Apply("c"); have != 75 {
		t.Errorf("Apply(c) = %v, want 75", have)
	}
	lo, hi := s.ApplyBand("b")
	if lo != 30 || hi != 60 {
		t.Errorf("ApplyBand(b) = %v, %v, want 30, 60", lo, hi)
	}
	if have := s.Apply("zzz"); !math.IsNaN(have) {
		t.Errorf("Apply(unknown) = %v, want NaN", have)
	}
}

func TestBandPadding(t *testing.T) {
	s := NewBand([]int{2, 1}, 0, 60, 0.2)
	// Slot [0, 30) with a fifth of it left empty, split per side.
	lo, hi := s.ApplyBand(1)
	if lo != 3 || hi != 27 {
		t.Errorf("ApplyBand(1) = %v, %v, want 3, 27", lo, hi)
	}
	// Centers ignore padding.
	if have := s.Apply(2); have != 45 {
		t.Errorf("Apply(2) = %v, want 45", have)
	}
}

func TestGradient(t *testing.T) {
	g := NewGradient(nil).SetDomain(0, 10)
	first := Blues().Map(0)
	last := Blues().Map(1)

	if have := g.Apply(0.0); have != first {
		t.Errorf("Apply(0) = %v, want %v", have, first)
	}
	if have := g.Apply(10.0); have != last {
		t.Errorf("Apply(10) = %v, want %v", have, last)
	}
	// Values beyond the domain clamp to the palette ends.
	if have := g.Apply(99.0); have != last {
		t.Errorf("Apply(99) = %v, want %v", have, last)
	}

	mid := g.Apply(5.0)
	if mid == first || mid == last {
		t.Errorf("Apply(5) = %v, want an interior blend", mid)
	}
	if _, _, _, a := mid.RGBA(); a != 0xffff {
		t.Errorf("Apply(5) alpha = %v, want opaque", a)
	}

	if _, _, _, a := g.Apply("x").RGBA(); a != 0 {
		t.Errorf("Apply(non-numeric) alpha = %v, want 0", a)
	}
	if _, _, _, a := g.Apply(math.NaN()).RGBA(); a != 0 {
		t.Errorf("Apply(NaN) alpha = %v, want 0", a)
	}
}

func TestOrdinal(t *testing.T) {
	s := NewOrdinal([]string{"b", "a"}, nil)
	c10 := Category10()
	if have := s.Apply("a"); have != c10[0] {
		t.Errorf("Apply(a) = %v, want %v", have, c10[0])
	}
	if have := s.Apply("b"); have != c10[1] {
		t.Errorf("Apply(b) = %v, want %v", have, c10[1])
	}
	if have := s.Apply("zzz"); have != (color.Gray{Y: 0x80}) {
		t.Errorf("Apply(unknown) = %v, want mid gray", have)
	}
}

func TestOrdinalCycle(t *testing.T) {
	colors := Category10()[:2]
	s := NewOrdinal([]int{1, 2, 3}, colors)
	if have := s.Apply(3); have != colors[0] {
		t.Errorf("Apply(3) = %v, want cycled %v", have, colors[0])
	}
}
