// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import "github.com/aclements/go-moremath/vec"

// swarm lays out the sample points of one group around x = cx. Each
// point keeps its true value on the y axis; its horizontal offset is
// bounded by the silhouette's local half-width so points never escape
// the violin.
//
// The value range is cut into bins equal-width slabs, where a slab's
// half-width budget is the mean silhouette width over the evaluation
// points falling in it. The samples of each slab get evenly spaced
// offsets across the budget, assigned in input order. An odd
// population always places one point exactly on the midline.
func swarm(cx float64, ys []float64, curve DensityCurve, bins int) Points {
	pts := Points{
		Xs: make([]float64, len(ys)),
		Ys: append([]float64(nil), ys...),
	}
	if len(ys) == 0 {
		return pts
	}

	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if lo == hi {
		// Degenerate range: a single slab of zero width. All
		// points collapse onto the midline.
		for i := range pts.Xs {
			pts.Xs[i] = cx
		}
		return pts
	}

	edges := vec.Linspace(lo, hi, bins+1)
	// binOf places y in the slab (edges[k], edges[k+1]]. The first
	// slab is unbounded below so the minimum is captured.
	binOf := func(y float64) int {
		for k := bins - 1; k > 0; k-- {
			if y > edges[k] {
				return k
			}
		}
		return 0
	}

	// Half-width budget per slab: the mean silhouette width over
	// the evaluation points in the slab, or 0 if none land in it.
	sum := make([]float64, bins)
	cnt := make([]int, bins)
	for i, e := range curve.Eval {
		if e > edges[bins] {
			continue
		}
		k := binOf(e)
		sum[k] += curve.Width[i]
		cnt[k]++
	}

	// Samples per slab, in input order.
	members := make([][]int, bins)
	for i, y := range ys {
		k := binOf(y)
		members[k] = append(members[k], i)
	}

	for k, idxs := range members {
		n := len(idxs)
		if n == 0 {
			continue
		}
		limit := 0.0
		if cnt[k] > 0 {
			limit = sum[k] / float64(cnt[k])
		}
		if n == 1 {
			pts.Xs[idxs[0]] = cx
			continue
		}
		offs := vec.Linspace(cx-limit, cx+limit, n)
		if n%2 == 1 {
			// Keep the midline exactly occupied.
			offs[n/2] = cx
		}
		for j, i := range idxs {
			pts.Xs[i] = offs[j]
		}
	}
	return pts
}
