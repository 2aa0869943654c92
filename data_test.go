// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"errors"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/google/go-cmp/cmp"
)

func TestFromRows(t *testing.T) {
	got, err := FromRows([][]float64{
		{1, 10},
		{2, 20},
		{3, 30},
	})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := [][]float64{{1, 2, 3}, {10, 20, 30}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	var shapeErr *ShapeError
	if _, err := FromRows(nil); !errors.As(err, &shapeErr) {
		t.Errorf("empty table: want *ShapeError, got %v", err)
	}
	if _, err := FromRows([][]float64{{}}); !errors.As(err, &shapeErr) {
		t.Errorf("zero columns: want *ShapeError, got %v", err)
	}
	if _, err := FromRows([][]float64{{1, 2}, {3}}); !errors.As(err, &shapeErr) {
		t.Errorf("ragged rows: want *ShapeError, got %v", err)
	}
}

func TestFromTable(t *testing.T) {
	tab := new(table.Builder).
		Add("a", []float64{1, 2, 3}).
		Add("b", []int{4, 5, 6}).
		Done()

	got, err := FromTable(tab)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := [][]float64{{1, 2, 3}, {4, 5, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	got, err = FromTable(tab, "b")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if diff := cmp.Diff([][]float64{{4, 5, 6}}, got); diff != "" {
		t.Errorf("selected column mismatch (-want +got):\n%s", diff)
	}

	var shapeErr *ShapeError
	if _, err := FromTable(tab, "nope"); !errors.As(err, &shapeErr) {
		t.Errorf("missing column: want *ShapeError, got %v", err)
	}

	str := new(table.Builder).Add("s", []string{"x"}).Done()
	if _, err := FromTable(str); !errors.As(err, &shapeErr) {
		t.Errorf("non-numeric column: want *ShapeError, got %v", err)
	}
}

func TestFinite(t *testing.T) {
	in := []float64{1, nan(), 2, inf(), 3, ninf()}
	if diff := cmp.Diff([]float64{1, 2, 3}, finite(in)); diff != "" {
		t.Errorf("finite mismatch (-want +got):\n%s", diff)
	}
}
