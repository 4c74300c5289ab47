// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

// Package arrowtab converts Arrow record batches into data tables.
// Chart hosts receive columnar data as Arrow IPC payloads; this is
// the bridge from those payloads to the table form layer resolution
// works on.
package arrowtab

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
)

// FromRecord converts a record batch into a table with one column per
// field. Numeric, date, and timestamp columns become []float64 with
// nulls as NaN; string and boolean columns keep their type with
// zero-valued nulls. Any other field type is an error naming the
// field.
func FromRecord(rec arrow.Record) (*table.Table, error) {
	tab := new(table.Builder)
	schema := rec.Schema()
	for i := 0; i < int(rec.NumCols()); i++ {
		name := schema.Field(i).Name
		col, err := columnSlice(rec.Column(i))
		if err != nil {
			return nil, fmt.Errorf("column %q: %v", name, err)
		}
		tab.Add(name, col)
	}
	return tab.Done(), nil
}

func columnSlice(a arrow.Array) (table.Slice, error) {
	switch a := a.(type) {
	case *array.Float64:
		return floats(a.Len(), a.IsNull, a.Value), nil
	case *array.Float32:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Int64:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Int32:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Int16:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Int8:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Uint64:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Uint32:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Uint16:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Uint8:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Timestamp:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Date32:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.Date64:
		return floats(a.Len(), a.IsNull, func(i int) float64 { return float64(a.Value(i)) }), nil
	case *array.String:
		out := make([]string, a.Len())
		for i := range out {
			if !a.IsNull(i) {
				out[i] = a.Value(i)
			}
		}
		return out, nil
	case *array.LargeString:
		out := make([]string, a.Len())
		for i := range out {
			if !a.IsNull(i) {
				out[i] = a.Value(i)
			}
		}
		return out, nil
	case *array.Boolean:
		out := make([]bool, a.Len())
		for i := range out {
			if !a.IsNull(i) {
				out[i] = a.Value(i)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported data type %s", a.DataType())
}

func floats(n int, isNull func(int) bool, value func(int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		if isNull(i) {
			out[i] = math.NaN()
		} else {
			out[i] = value(i)
		}
	}
	return out
}
