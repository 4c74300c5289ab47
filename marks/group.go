// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package marks

import (
	"bytes"
	"fmt"

	"github.com/aclements/go-gg/table"
)

// positional names the channels that carry geometry along the axes:
// the point positions and the band endpoint pairs. They never
// contribute to series identity; an area whose band varies along the
// curve is still one series.
var positional = map[string]bool{
	"x": true, "x1": true, "x2": true,
	"y": true, "y1": true, "y2": true,
}

// lineData partitions the rows of tab into series for line and area
// marks. Rows that agree on every non-positional channel form one
// series. Series appear in first-seen row order, every row lands in
// exactly one series, and the series together cover all rows.
//
// Grouping compares serialized values, so equal values found through
// different slices still match.
func lineData(tab *table.Table) [][]int {
	n := tab.Len()
	var keyCols []func(i int) interface{}
	for _, name := range tab.Columns() {
		if positional[name] {
			continue
		}
		get, _ := sliceGetter(tab.Column(name))
		keyCols = append(keyCols, get)
	}
	if len(keyCols) == 0 {
		if n == 0 {
			return nil
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return [][]int{idx}
	}

	var groups [][]int
	seen := make(map[string]int)
	var buf bytes.Buffer
	for i := 0; i < n; i++ {
		buf.Reset()
		for _, get := range keyCols {
			v := get(i)
			fmt.Fprintf(&buf, "%T\x1f%v\x1e", v, v)
		}
		k := buf.String()
		gi, ok := seen[k]
		if !ok {
			gi = len(groups)
			seen[k] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], i)
	}
	return groups
}
