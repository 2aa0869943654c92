// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"math"
	"testing"
)

// rampCurve rises linearly from half-width 0 at y=0 to 0.3 at y=10.
var rampCurve = DensityCurve{
	Eval:      []float64{0, 2.5, 5, 7.5, 10},
	Width:     []float64{0, 0.075, 0.15, 0.225, 0.3},
	Bandwidth: 1,
}

func TestSilhouette(t *testing.T) {
	poly := silhouette(2, rampCurve)

	n := len(rampCurve.Eval)
	if len(poly.Xs) != 2*n+1 || len(poly.Ys) != 2*n+1 {
		t.Fatalf("polygon has %d vertices, want %d", len(poly.Xs), 2*n+1)
	}
	// Closed: first vertex repeated at the end.
	last := len(poly.Xs) - 1
	if poly.Xs[0] != poly.Xs[last] || poly.Ys[0] != poly.Ys[last] {
		t.Errorf("polygon is not closed: first (%g, %g), last (%g, %g)",
			poly.Xs[0], poly.Ys[0], poly.Xs[last], poly.Ys[last])
	}

	// The y range is exactly the evaluation range.
	ymin, ymax := poly.Ys[0], poly.Ys[0]
	for _, y := range poly.Ys {
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	if ymin != rampCurve.Eval[0] || ymax != rampCurve.Eval[n-1] {
		t.Errorf("y range [%g, %g], want [%g, %g]", ymin, ymax, rampCurve.Eval[0], rampCurve.Eval[n-1])
	}

	// Right branch is cx+width, left branch mirrors it.
	for i := 0; i < n; i++ {
		if poly.Xs[i] != 2+rampCurve.Width[i] {
			t.Errorf("right vertex %d: x = %g, want %g", i, poly.Xs[i], 2+rampCurve.Width[i])
		}
		j := 2*n - 1 - i
		if poly.Xs[j] != 2-rampCurve.Width[i] || poly.Ys[j] != rampCurve.Eval[i] {
			t.Errorf("left vertex %d: (%g, %g), want (%g, %g)",
				j, poly.Xs[j], poly.Ys[j], 2-rampCurve.Width[i], rampCurve.Eval[i])
		}
	}
}

func TestHalfWidthAt(t *testing.T) {
	try := func(y, want float64, wantClamped bool) {
		t.Helper()
		w, clamped := halfWidthAt(rampCurve, y)
		if math.Abs(w-want) > 1e-12 || clamped != wantClamped {
			t.Errorf("halfWidthAt(%g) = %g, %v; want %g, %v", y, w, clamped, want, wantClamped)
		}
	}

	try(0, 0, false)      // exact first point
	try(10, 0.3, false)   // exact last point
	try(5, 0.15, false)   // exact interior point
	try(1.25, 0.0375, false)
	try(6.25, 0.1875, false)
	try(-1, 0, true)    // below range: clamped to the boundary
	try(11, 0.3, true)  // above range: clamped to the boundary
}

func TestBar(t *testing.T) {
	seg, clamped := bar(2, rampCurve, 5)
	if clamped {
		t.Error("bar at 5 should not be clamped")
	}
	if seg.Y != 5 || seg.X0 != 2-0.15 || seg.X1 != 2+0.15 {
		t.Errorf("bar = %+v, want {1.85 2.15 5}", seg)
	}

	if _, clamped := bar(2, rampCurve, 12); !clamped {
		t.Error("bar above the evaluation range should report clamping")
	}
}
