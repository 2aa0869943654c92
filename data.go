// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// FromRows transposes a rectangular table into groups, one group per
// column. Every row must have the same length; rows keep their order
// within each group. It returns a *ShapeError if the table has zero
// columns or rows of unequal length.
func FromRows(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &ShapeError{"table has no columns"}
	}
	ncols := len(rows[0])
	groups := make([][]float64, ncols)
	for i := range groups {
		groups[i] = make([]float64, len(rows))
	}
	for r, row := range rows {
		if len(row) != ncols {
			return nil, &ShapeError{fmt.Sprintf("row %d has %d columns, want %d", r, len(row), ncols)}
		}
		for c, v := range row {
			groups[c][r] = v
		}
	}
	return groups, nil
}

// FromTable extracts groups from the named columns of t, one group
// per column. If no columns are named, every column of t is used, in
// table order. Columns must be numeric (convertible to []float64); it
// returns a *ShapeError otherwise, or if no columns result.
func FromTable(t *table.Table, cols ...string) ([][]float64, error) {
	if len(cols) == 0 {
		cols = t.Columns()
	}
	if len(cols) == 0 {
		return nil, &ShapeError{"table has no columns"}
	}
	groups := make([][]float64, len(cols))
	for i, name := range cols {
		col := t.Column(name)
		if col == nil {
			return nil, &ShapeError{fmt.Sprintf("table has no column %q", name)}
		}
		var xs []float64
		if err := convert(&xs, col); err != nil {
			return nil, &ShapeError{fmt.Sprintf("column %q is not numeric: %v", name, err)}
		}
		groups[i] = xs
	}
	return groups, nil
}

// convert is slice.Convert with the panic turned into an error.
func convert(dst *[]float64, col interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	slice.Convert(dst, col)
	return nil
}

// finite returns the finite values of xs in order.
func finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if isFinite(x) {
			out = append(out, x)
		}
	}
	return out
}
