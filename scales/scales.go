// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Package scales provides scale implementations for chart hosts:
// continuous and banded position scales, color scales, and helpers
// for training domains from data columns. All of them satisfy the
// scale interfaces the marks package resolves layers against.
package scales

import (
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
)

var float64Type = reflect.TypeOf(float64(0))

// toFloat converts the numeric types that appear in data columns.
func toFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Convert(float64Type).Float(), true
	}
	return 0, false
}

// Linear maps a continuous numeric domain onto a pixel range. The
// domain comes from SetDomain, from training against data columns, or
// both; explicit bounds win over trained ones. Linear also serves as
// a size scale, mapping values onto areas instead of positions.
type Linear struct {
	s                  scale.Linear
	rangeMin, rangeMax float64
	dataMin, dataMax   float64
}

// NewLinear returns a linear scale onto [rangeMin, rangeMax] with an
// unset domain.
func NewLinear(rangeMin, rangeMax float64) *Linear {
	return &Linear{
		s:        scale.Linear{Min: math.NaN(), Max: math.NaN()},
		rangeMin: rangeMin,
		rangeMax: rangeMax,
		dataMin:  math.NaN(),
		dataMax:  math.NaN(),
	}
}

// SetDomain fixes the data domain, overriding training.
func (s *Linear) SetDomain(min, max float64) *Linear {
	s.s.Min, s.s.Max = min, max
	return s
}

// Train expands the domain to cover the finite values of col, which
// must be a numeric slice.
func (s *Linear) Train(col table.Slice) *Linear {
	var data []float64
	slice.Convert(&data, col)
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.dataMin || math.IsNaN(s.dataMin) {
			s.dataMin = v
		}
		if v > s.dataMax || math.IsNaN(s.dataMax) {
			s.dataMax = v
		}
	}
	return s
}

// get assembles the effective domain: explicit bounds, then trained
// bounds, then [-1, 1] so an untrained scale still maps totally. A
// zero-width domain widens by one so Map stays finite.
func (s *Linear) get() scale.Linear {
	ls := s.s
	if math.IsNaN(ls.Min) {
		ls.Min = s.dataMin
	}
	if math.IsNaN(ls.Max) {
		ls.Max = s.dataMax
	}
	if math.IsNaN(ls.Min) {
		ls.Min, ls.Max = -1, 1
	}
	if ls.Min > ls.Max {
		ls.Min, ls.Max = ls.Max, ls.Min
	}
	if ls.Min == ls.Max {
		ls.Max = ls.Min + 1
	}
	return ls
}

// Apply maps v to a pixel position. Non-numeric values map to NaN.
func (s *Linear) Apply(v interface{}) float64 {
	f, ok := toFloat(v)
	if !ok {
		return math.NaN()
	}
	ls := s.get()
	return s.rangeMin + ls.Map(f)*(s.rangeMax-s.rangeMin)
}

// ApplyBand returns the zero-width interval at Apply(v); a linear
// scale has no intrinsic band.
func (s *Linear) ApplyBand(v interface{}) (float64, float64) {
	p := s.Apply(v)
	return p, p
}

// Ticks returns at most max round tick positions in data space,
// in increasing order.
func (s *Linear) Ticks(max int) []float64 {
	ls := s.get()
	major, _ := ls.Ticks(scale.TickOptions{Max: max})
	return major
}
