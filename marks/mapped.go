// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"reflect"

	"github.com/aclements/go-gg/table"
)

// A Mapped is a lazily evaluated per-row view of resolved values.
// Values are computed in At; nothing is materialized up front.
type Mapped[T any] struct {
	// Len is the number of rows.
	Len int
	// At returns the resolved value for row i. Callers must keep
	// 0 <= i < Len; At itself does not check.
	At func(i int) T
}

// Constant returns a view that yields v for every one of n rows.
func Constant[T any](n int, v T) Mapped[T] {
	return Mapped[T]{Len: n, At: func(int) T { return v }}
}

// MapColumn returns a view over the elements of col, an arbitrary
// slice, transformed by f. If index is non-nil, row i reads
// col[index[i]] instead of col[i].
func MapColumn[T any](col table.Slice, index []int, f func(v interface{}) T) Mapped[T] {
	get, n := sliceGetter(col)
	if index != nil {
		return Mapped[T]{Len: len(index), At: func(i int) T { return f(get(index[i])) }}
	}
	return Mapped[T]{Len: n, At: func(i int) T { return f(get(i)) }}
}

// sliceGetter returns an element accessor and length for an arbitrary
// slice, bypassing reflection for common column types.
func sliceGetter(col table.Slice) (func(i int) interface{}, int) {
	switch s := col.(type) {
	case []float64:
		return func(i int) interface{} { return s[i] }, len(s)
	case []int:
		return func(i int) interface{} { return s[i] }, len(s)
	case []string:
		return func(i int) interface{} { return s[i] }, len(s)
	}
	rv := reflect.ValueOf(col)
	return func(i int) interface{} { return rv.Index(i).Interface() }, rv.Len()
}
