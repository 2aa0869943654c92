// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import "sort"

// A Polygon is a closed silhouette outline. Xs and Ys have equal
// length and the first vertex is repeated at the end.
type Polygon struct {
	Xs, Ys []float64
}

// A Segment is a horizontal line segment from (X0, Y) to (X1, Y).
type Segment struct {
	X0, X1, Y float64
}

// A Points is a set of rendered sample points. Ys are the original
// sample values in input order; Xs are the corresponding horizontal
// offsets from the swarm layout.
type Points struct {
	Xs, Ys []float64
}

// silhouette mirrors curve around the vertical line x = cx and
// returns the closed outline: the right branch bottom to top,
// then the left branch top to bottom.
func silhouette(cx float64, curve DensityCurve) Polygon {
	n := len(curve.Eval)
	xs := make([]float64, 0, 2*n+1)
	ys := make([]float64, 0, 2*n+1)
	for i := 0; i < n; i++ {
		xs = append(xs, cx+curve.Width[i])
		ys = append(ys, curve.Eval[i])
	}
	for i := n - 1; i >= 0; i-- {
		xs = append(xs, cx-curve.Width[i])
		ys = append(ys, curve.Eval[i])
	}
	// Close the outline.
	xs = append(xs, xs[0])
	ys = append(ys, ys[0])
	return Polygon{xs, ys}
}

// halfWidthAt returns the silhouette half-width at value y by linear
// interpolation along the curve's evaluation axis. If y falls outside
// the evaluation range, the nearest evaluated width is returned and
// clamped is set.
func halfWidthAt(curve DensityCurve, y float64) (w float64, clamped bool) {
	eval, width := curve.Eval, curve.Width
	n := len(eval)
	if y < eval[0] {
		return width[0], true
	}
	if y > eval[n-1] {
		return width[n-1], true
	}
	i := sort.SearchFloat64s(eval, y)
	if i < n && eval[i] == y {
		return width[i], false
	}
	// eval[i-1] < y < eval[i]
	dy := eval[i] - eval[i-1]
	if dy == 0 {
		return width[i-1], false
	}
	t := (y - eval[i-1]) / dy
	return width[i-1] + t*(width[i]-width[i-1]), false
}

// bar returns the horizontal segment spanning the silhouette of curve
// at value y, connecting the left and right branches.
func bar(cx float64, curve DensityCurve, y float64) (Segment, bool) {
	w, clamped := halfWidthAt(curve, y)
	return Segment{X0: cx - w, X1: cx + w, Y: y}, clamped
}
