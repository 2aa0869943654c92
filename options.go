// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-moremath/stats"
)

// Options configures a plot. The zero value uses reasonable defaults
// for all fields.
//
// Colors may be nil to use a default. Setting a bar color to
// color.Transparent disables that bar (and its legend entry).
type Options struct {
	// XLabels are categorical tick labels, one per group, placed
	// at the default integer group positions. It is mutually
	// exclusive with XPositions.
	XLabels []string

	// XPositions gives an explicit horizontal center for each
	// group. If nil, group i is centered at i+1.
	XPositions []float64

	// FaceColor is the fill color shared by every violin.
	// FaceColors gives one fill color per group instead. If both
	// are nil, colors are drawn from the Viridis palette.
	FaceColor  color.Color
	FaceColors []color.Color

	// EdgeColor is the silhouette outline color. If nil, each
	// violin is outlined in its own face color at full opacity.
	EdgeColor color.Color

	// FaceAlpha is the fill opacity of the silhouettes in (0, 1].
	// 0 means the default of 0.3.
	FaceAlpha float64

	// MeanColor and MedianColor color the horizontal mean and
	// median bars. The defaults are black and a muted red.
	MeanColor   color.Color
	MedianColor color.Color

	// Bandwidth overrides the estimator's bandwidth for every
	// group. Bandwidths gives one bandwidth per group instead. If
	// both are zero, the bandwidth is computed from each group's
	// data using stats.BandwidthScott.
	Bandwidth  float64
	Bandwidths []float64

	// NoPoints suppresses the sample point swarm.
	NoPoints bool

	// PointSize fixes the marker size for every point. If 0, each
	// group's size is 1000/len(samples), clamped to [1, 12].
	PointSize float64

	// Legend adds a legend for the enabled mean/median bars.
	Legend bool

	// Bins is the number of equal-width value bins used to bound
	// point jitter. 0 means the default of 10.
	Bins int

	// HalfWidth is the maximum half-width of a silhouette in x
	// units. Each group's density curve is rescaled so its peak
	// equals HalfWidth. 0 means the default of 0.3.
	HalfWidth float64

	// N is the number of points the density estimate is sampled
	// at. 0 means the default of 200.
	N int

	// Widen expands each group's evaluation domain beyond the data
	// range by Widen*bandwidth on both sides. 0 means the default
	// of 3; a negative value means the data range exactly.
	Widen float64

	// Kernel is the kernel passed to the density estimator.
	Kernel stats.KDEKernel
}

// Default option values.
const (
	defaultFaceAlpha = 0.3
	defaultBins      = 10
	defaultHalfWidth = 0.3
	defaultN         = 200
	defaultWiden     = 3
)

var (
	defaultMeanColor   = color.Color(color.Black)
	defaultMedianColor = color.Color(color.RGBA{0xc4, 0x4e, 0x52, 0xff})
)

// validate checks o against the group count and fills in defaults,
// returning a *ConfigError describing the first problem found.
func (o *Options) validate(ngroups int) error {
	if o.XLabels != nil && o.XPositions != nil {
		return &ConfigError{"XLabels and XPositions are mutually exclusive"}
	}
	if o.XLabels != nil && len(o.XLabels) != ngroups {
		return &ConfigError{fmt.Sprintf("label count mismatch: %d labels for %d groups", len(o.XLabels), ngroups)}
	}
	if o.XPositions != nil && len(o.XPositions) != ngroups {
		return &ConfigError{fmt.Sprintf("position count mismatch: %d positions for %d groups", len(o.XPositions), ngroups)}
	}
	if o.Bandwidths != nil && len(o.Bandwidths) != ngroups {
		return &ConfigError{fmt.Sprintf("bandwidth count mismatch: %d bandwidths for %d groups", len(o.Bandwidths), ngroups)}
	}
	if o.Bandwidth != 0 && o.Bandwidths != nil {
		return &ConfigError{"Bandwidth and Bandwidths are mutually exclusive"}
	}
	if o.FaceColor != nil && o.FaceColors != nil {
		return &ConfigError{"FaceColor and FaceColors are mutually exclusive"}
	}
	if o.FaceColors != nil && len(o.FaceColors) != ngroups {
		return &ConfigError{fmt.Sprintf("face color count mismatch: %d colors for %d groups", len(o.FaceColors), ngroups)}
	}
	if o.FaceAlpha < 0 || o.FaceAlpha > 1 {
		return &ConfigError{fmt.Sprintf("FaceAlpha %g out of range [0, 1]", o.FaceAlpha)}
	}
	if o.Bins < 0 {
		return &ConfigError{fmt.Sprintf("Bins %d is negative", o.Bins)}
	}
	if o.FaceAlpha == 0 {
		o.FaceAlpha = defaultFaceAlpha
	}
	if o.Bins == 0 {
		o.Bins = defaultBins
	}
	if o.HalfWidth == 0 {
		o.HalfWidth = defaultHalfWidth
	}
	if o.N == 0 {
		o.N = defaultN
	}
	if o.Widen == 0 {
		o.Widen = defaultWiden
	} else if o.Widen < 0 {
		o.Widen = 0
	}
	if o.MeanColor == nil {
		o.MeanColor = defaultMeanColor
	}
	if o.MedianColor == nil {
		o.MedianColor = defaultMedianColor
	}
	return nil
}

// bandwidthFor returns the caller-supplied bandwidth for group i, or
// 0 if the estimator should choose one.
func (o *Options) bandwidthFor(i int) float64 {
	if o.Bandwidths != nil {
		return o.Bandwidths[i]
	}
	return o.Bandwidth
}

// Style is the resolved per-group rendering style.
type Style struct {
	Face, Edge   color.Color
	Mean, Median color.Color
	FaceAlpha    float64
	PointSize    float64
}

// styleFor resolves the style of group i of ngroups with n retained
// samples. validate must have run first.
func (o *Options) styleFor(i, ngroups, n int) Style {
	s := Style{
		Mean:      o.MeanColor,
		Median:    o.MedianColor,
		FaceAlpha: o.FaceAlpha,
		PointSize: o.PointSize,
	}
	switch {
	case o.FaceColors != nil:
		s.Face = o.FaceColors[i]
	case o.FaceColor != nil:
		s.Face = o.FaceColor
	case ngroups == 1:
		s.Face = palette.Viridis.Map(0.5)
	default:
		s.Face = palette.Viridis.Map(float64(i) / float64(ngroups-1))
	}
	s.Edge = o.EdgeColor
	if s.Edge == nil {
		s.Edge = opaque(s.Face)
	}
	if s.PointSize == 0 && n > 0 {
		s.PointSize = clamp(1000/float64(n), 1, 12)
	}
	return s
}

// opaque returns c with full alpha.
func opaque(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.Transparent
	}
	return color.NRGBA64{
		R: uint16(r * 0xffff / a),
		G: uint16(g * 0xffff / a),
		B: uint16(b * 0xffff / a),
		A: 0xffff,
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
