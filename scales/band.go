// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package scales

import (
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Band maps a categorical domain onto equal slots of a pixel range.
// Each distinct value owns one slot; Apply returns slot centers and
// ApplyBand the padded slot extent, so rect marks with a Band scale
// get bars and point marks get centered positions.
type Band struct {
	index   map[interface{}]int
	ordered table.Slice
	n       int

	rangeMin, rangeMax float64
	padding            float64
}

// NewBand builds a band scale over the distinct values of col, in
// sorted order. padding is the fraction of each slot left empty,
// split evenly between its sides.
func NewBand(col table.Slice, rangeMin, rangeMax, padding float64) *Band {
	ordered := slice.NubAppend(col)
	slice.Sort(ordered)
	ov := reflect.ValueOf(ordered)
	index := make(map[interface{}]int, ov.Len())
	for i := 0; i < ov.Len(); i++ {
		index[ov.Index(i).Interface()] = i
	}
	return &Band{
		index:    index,
		ordered:  ordered,
		n:        ov.Len(),
		rangeMin: rangeMin,
		rangeMax: rangeMax,
		padding:  padding,
	}
}

// Values returns the domain in slot order.
func (s *Band) Values() table.Slice {
	return s.ordered
}

func (s *Band) step() float64 {
	if s.n == 0 {
		return 0
	}
	return (s.rangeMax - s.rangeMin) / float64(s.n)
}

// Apply maps v to the center of its slot. Values outside the domain
// map to NaN.
func (s *Band) Apply(v interface{}) float64 {
	i, ok := s.index[v]
	if !ok {
		return math.NaN()
	}
	return s.rangeMin + (float64(i)+0.5)*s.step()
}

// ApplyBand returns the padded slot of v.
func (s *Band) ApplyBand(v interface{}) (float64, float64) {
	i, ok := s.index[v]
	if !ok {
		return math.NaN(), math.NaN()
	}
	lo := s.rangeMin + float64(i)*s.step()
	inset := s.step() * s.padding / 2
	return lo + inset, lo + s.step() - inset
}
