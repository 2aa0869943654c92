// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"image/color"
	"log"
	"os"
)

// Warning is a logger for reporting conditions that don't prevent the
// production of a plot, but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[violin] ", log.Lshortfile)

// A Plot holds the computed geometry of one violin plot: a density
// curve, silhouette polygon, summary bars, and point swarm per group.
// A Plot is immutable once constructed.
type Plot struct {
	o Options

	groups  [][]float64 // retained finite samples, input order
	centers []float64
	curves  []DensityCurve
	sums    []Summary
	polys   []Polygon
	swarms  []Points
	styles  []Style
	dropped []int
	kept    []int

	xlim, ylim [2]float64
}

// New computes the plot geometry for groups, one violin per group.
// o may be nil for all defaults; it is not modified.
//
// Samples that are not finite are dropped before any statistics or
// layout. A group with no finite samples at all is dropped from the
// plot and reported through an *EmptyGroupError; the returned Plot
// (non-nil as long as at least one group survives) covers the
// remaining groups, and the per-group accessors hold zero values at
// the dropped index. Option conflicts return a *ConfigError and input
// shape problems a *ShapeError, always before any geometry is
// computed.
func New(groups [][]float64, o *Options) (*Plot, error) {
	if len(groups) == 0 {
		return nil, &ShapeError{"no groups"}
	}
	var opts Options
	if o != nil {
		opts = *o
	}
	if err := opts.validate(len(groups)); err != nil {
		return nil, err
	}

	n := len(groups)
	p := &Plot{
		o:       opts,
		groups:  make([][]float64, n),
		centers: make([]float64, n),
		curves:  make([]DensityCurve, n),
		sums:    make([]Summary, n),
		polys:   make([]Polygon, n),
		swarms:  make([]Points, n),
		styles:  make([]Style, n),
	}

	var firstErr error
	for i, g := range groups {
		if opts.XPositions != nil {
			p.centers[i] = opts.XPositions[i]
		} else {
			p.centers[i] = float64(i + 1)
		}

		xs := finite(g)
		if len(xs) == 0 {
			err := &EmptyGroupError{Group: i + 1}
			if firstErr == nil {
				firstErr = err
			}
			Warning.Print(err)
			p.dropped = append(p.dropped, i)
			continue
		}
		p.groups[i] = xs
		p.kept = append(p.kept, i)

		curve, sum := summarize(xs, opts.bandwidthFor(i), &opts)
		cx := p.centers[i]
		var mc, dc bool
		sum.MeanBar, mc = bar(cx, curve, sum.Mean)
		sum.MedianBar, dc = bar(cx, curve, sum.Median)
		sum.Extrapolated = mc || dc

		p.curves[i] = curve
		p.sums[i] = sum
		p.polys[i] = silhouette(cx, curve)
		p.swarms[i] = swarm(cx, xs, curve, opts.Bins)
		p.styles[i] = opts.styleFor(i, n, len(xs))
	}

	if len(p.kept) == 0 {
		return nil, firstErr
	}
	p.computeLimits()
	return p, firstErr
}

// computeLimits derives the axis limits from the kept groups: half a
// group width beyond the outermost centers horizontally, and the full
// density evaluation range vertically.
func (p *Plot) computeLimits() {
	first := true
	for _, i := range p.kept {
		cx := p.centers[i]
		eval := p.curves[i].Eval
		if first {
			p.xlim = [2]float64{cx, cx}
			p.ylim = [2]float64{eval[0], eval[len(eval)-1]}
			first = false
		}
		if cx < p.xlim[0] {
			p.xlim[0] = cx
		}
		if cx > p.xlim[1] {
			p.xlim[1] = cx
		}
		if eval[0] < p.ylim[0] {
			p.ylim[0] = eval[0]
		}
		if e := eval[len(eval)-1]; e > p.ylim[1] {
			p.ylim[1] = e
		}
	}
	p.xlim[0] -= 0.5
	p.xlim[1] += 0.5
	if p.ylim[0] == p.ylim[1] {
		// Degenerate evaluation range; give the y axis some room.
		p.ylim[0] -= 0.5
		p.ylim[1] += 0.5
	}
}

// Groups returns the retained (finite) samples of each group in input
// order. The caller must not modify the returned slices.
func (p *Plot) Groups() [][]float64 { return p.groups }

// Centers returns each group's horizontal center position.
func (p *Plot) Centers() []float64 { return p.centers }

// Curves returns each group's rescaled density curve.
func (p *Plot) Curves() []DensityCurve { return p.curves }

// Summaries returns each group's summary statistics and bar segments.
func (p *Plot) Summaries() []Summary { return p.sums }

// Polygons returns each group's closed silhouette outline.
func (p *Plot) Polygons() []Polygon { return p.polys }

// Swarms returns each group's point swarm layout.
func (p *Plot) Swarms() []Points { return p.swarms }

// Styles returns each group's resolved rendering style.
func (p *Plot) Styles() []Style { return p.styles }

// Dropped returns the indices of groups dropped for having no finite
// samples, in increasing order, or nil if none were.
func (p *Plot) Dropped() []int { return p.dropped }

// XLim returns the horizontal axis limits.
func (p *Plot) XLim() (lo, hi float64) { return p.xlim[0], p.xlim[1] }

// YLim returns the vertical axis limits.
func (p *Plot) YLim() (lo, hi float64) { return p.ylim[0], p.ylim[1] }

// A LegendEntry is one legend line: a label and its bar color.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Legend returns the legend entries for the enabled mean and median
// bars, or nil if the legend is disabled.
func (p *Plot) Legend() []LegendEntry {
	if !p.o.Legend {
		return nil
	}
	var es []LegendEntry
	if _, _, _, a := p.o.MeanColor.RGBA(); a > 0 {
		es = append(es, LegendEntry{"Mean", p.o.MeanColor})
	}
	if _, _, _, a := p.o.MedianColor.RGBA(); a > 0 {
		es = append(es, LegendEntry{"Median", p.o.MedianColor})
	}
	return es
}
