// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// A DensityCurve is a group's kernel density estimate, rescaled so
// its maximum half-width equals the plot's HalfWidth option.
type DensityCurve struct {
	// Eval is the points the density was sampled at, in
	// increasing order.
	Eval []float64

	// Width is the silhouette half-width at each evaluation
	// point.
	Width []float64

	// Bandwidth is the bandwidth the estimate was produced with.
	Bandwidth float64
}

// A Summary gives a group's summary statistics and the corresponding
// horizontal bar segments on the silhouette.
type Summary struct {
	Mean, Median float64

	// Bandwidth is the density estimate's bandwidth, either
	// caller-supplied or chosen by the estimator.
	Bandwidth float64

	// MeanBar and MedianBar span the silhouette horizontally at
	// the mean and median values.
	MeanBar, MedianBar Segment

	// Extrapolated is set if the mean or median fell outside the
	// density evaluation range, so a bar's half-width was clamped
	// to the nearest evaluated value instead of interpolated.
	Extrapolated bool
}

func isFinite(x float64) bool {
	return !(math.IsNaN(x) || math.IsInf(x, 0))
}

// summarize estimates the density of the retained samples xs and
// computes their summary statistics. bw is the caller-supplied
// bandwidth, or 0 to let the estimator choose. validate must have run
// on o. xs must be non-empty and is not modified.
func summarize(xs []float64, bw float64, o *Options) (DensityCurve, Summary) {
	sorted := append([]float64(nil), xs...)
	sample := stats.Sample{Xs: sorted}
	sample.Sort()

	if bw == 0 {
		bw = stats.BandwidthScott(sample)
	}
	if !isFinite(bw) || bw <= 0 {
		// Zero-variance samples give a degenerate bandwidth.
		// Fall back to a positive one so the estimator still
		// produces a (spike-shaped) curve.
		bw = 1
	}

	kde := stats.KDE{
		Sample:    sample,
		Kernel:    o.Kernel,
		Bandwidth: bw,
	}

	min, max := sample.Bounds()
	min, max = min-o.Widen*bw, max+o.Widen*bw
	eval := vec.Linspace(min, max, o.N)
	width := vec.Map(kde.PDF, eval)

	// Rescale so the widest point of the silhouette is HalfWidth.
	peak := 0.0
	for _, w := range width {
		if w > peak {
			peak = w
		}
	}
	if peak > 0 {
		for i := range width {
			width[i] *= o.HalfWidth / peak
		}
	}

	curve := DensityCurve{Eval: eval, Width: width, Bandwidth: bw}
	sum := Summary{
		Mean:      sample.Mean(),
		Median:    sample.Quantile(0.5),
		Bandwidth: bw,
	}
	return curve, sum
}
