// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"
)

// Plot area margins in pixels.
const (
	marginLeft   = 60
	marginRight  = 15
	marginTop    = 15
	marginBottom = 35
)

const fontSize = 14

// WriteSVG renders the plot as a width x height SVG to w.
//
// Layer order is fixed: silhouettes, mean/median bars, sample points,
// then the same bars again so they stay visible above dense swarms,
// and finally axes and the legend.
func (p *Plot) WriteSVG(w io.Writer, width, height int) error {
	canvas := svg.New(w)
	canvas.Start(width, height, fmt.Sprintf(`font-size="%dpx" font-family="Roboto,&quot;Helvetica Neue&quot;,Helvetica,Arial,sans-serif"`, fontSize))
	defer canvas.End()

	// Pixel mapping for data coordinates.
	x0, y0 := float64(marginLeft), float64(height-marginBottom)
	xspan := float64(width - marginLeft - marginRight)
	yspan := float64(height - marginTop - marginBottom)
	fx := func(x float64) float64 {
		return x0 + (x-p.xlim[0])/(p.xlim[1]-p.xlim[0])*xspan
	}
	fy := func(y float64) float64 {
		return y0 - (y-p.ylim[0])/(p.ylim[1]-p.ylim[0])*yspan
	}

	// Background and horizontal grid.
	canvas.Rect(marginLeft, marginTop, int(xspan), int(yspan), "fill:#eee")
	yticks := linearTicks(p.ylim[0], p.ylim[1], int(yspan)/40)
	for _, t := range yticks {
		yi := int(fy(t))
		canvas.Line(marginLeft, yi, width-marginRight, yi, "stroke:#fff;stroke-width:2")
	}

	// Clip the data layers to the plot area.
	canvas.ClipPath(`id="plotclip"`)
	canvas.Rect(marginLeft, marginTop, int(xspan), int(yspan))
	canvas.ClipEnd()
	canvas.Group(`clip-path="url(#plotclip)"`)

	for _, i := range p.kept {
		st := p.styles[i]
		face := alphaColor(st.Face, st.FaceAlpha)
		style := cssPaint("stroke", st.Edge) + ";" + cssPaint("fill", face) + ";stroke-width:1"
		canvas.Path(polygonPath(p.polys[i], fx, fy), style)
	}

	p.renderBars(canvas, fx, fy)
	if !p.o.NoPoints {
		p.renderPoints(canvas, fx, fy)
		// Second bar pass keeps the bars above the points.
		p.renderBars(canvas, fx, fy)
	}
	canvas.Gend()

	p.renderAxes(canvas, fx, fy, yticks, width, height)
	p.renderLegend(canvas, width)
	return nil
}

// renderBars draws the mean and median segments of every kept group.
// Transparent bar colors draw nothing.
func (p *Plot) renderBars(canvas *svg.SVG, fx, fy func(float64) float64) {
	for _, i := range p.kept {
		st, sum := p.styles[i], p.sums[i]
		drawSegment(canvas, sum.MeanBar, st.Mean, fx, fy)
		drawSegment(canvas, sum.MedianBar, st.Median, fx, fy)
	}
}

func drawSegment(canvas *svg.SVG, seg Segment, c color.Color, fx, fy func(float64) float64) {
	if _, _, _, a := c.RGBA(); a == 0 {
		return
	}
	yi := int(fy(seg.Y))
	canvas.Line(int(fx(seg.X0)), yi, int(fx(seg.X1)), yi, cssPaint("stroke", c)+";stroke-width:2")
}

// renderPoints draws each group's swarm. Markers use the group's face
// and edge colors swapped relative to the silhouette for contrast.
func (p *Plot) renderPoints(canvas *svg.SVG, fx, fy func(float64) float64) {
	for _, i := range p.kept {
		st, pts := p.styles[i], p.swarms[i]
		r := int(math.Round(math.Sqrt(st.PointSize)))
		if r < 1 {
			r = 1
		}
		style := cssPaint("fill", st.Edge) + ";" + cssPaint("stroke", opaque(st.Face))
		for j := range pts.Xs {
			canvas.Circle(int(fx(pts.Xs[j])), int(fy(pts.Ys[j])), r, style)
		}
	}
}

func (p *Plot) renderAxes(canvas *svg.SVG, fx, fy func(float64) float64, yticks []float64, width, height int) {
	// Axis border along the left and bottom of the plot area.
	canvas.Path(fmt.Sprintf("M%d %dV%dH%d", marginLeft, marginTop, height-marginBottom, width-marginRight),
		"stroke:#888;fill:none;stroke-width:2")

	for _, t := range yticks {
		canvas.Text(marginLeft-6, int(fy(t)), formatTick(t), `text-anchor="end" dy=".3em" fill="#666"`)
	}

	// One x tick per kept group, labeled or numeric.
	for _, i := range p.kept {
		xi := int(fx(p.centers[i]))
		yi := height - marginBottom
		canvas.Line(xi, yi, xi, yi+4, "stroke:#888;stroke-width:2")
		label := formatTick(p.centers[i])
		if p.o.XLabels != nil {
			label = p.o.XLabels[i]
		}
		canvas.Text(xi, yi+6, label, `text-anchor="middle" dy="1em" fill="#666"`)
	}
}

func (p *Plot) renderLegend(canvas *svg.SVG, width int) {
	entries := p.Legend()
	if entries == nil {
		return
	}
	const (
		swatch  = 18
		leading = fontSize + 6
	)
	x := width - marginRight - 90
	y := marginTop + 10
	for _, e := range entries {
		canvas.Line(x, y, x+swatch, y, cssPaint("stroke", e.Color)+";stroke-width:2")
		canvas.Text(x+swatch+6, y, e.Label, `dy=".3em" fill="#333"`)
		y += leading
	}
}

// polygonPath converts poly to an SVG path in pixel coordinates.
func polygonPath(poly Polygon, fx, fy func(float64) float64) string {
	var path []byte
	for i := range poly.Xs {
		if i == 0 {
			path = append(path, 'M')
		} else {
			path = append(path, 'L')
		}
		path = strconv.AppendFloat(path, fx(poly.Xs[i]), 'g', 6, 64)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, fy(poly.Ys[i]), 'g', 6, 64)
	}
	path = append(path, 'Z')
	return string(path)
}

// cssPaint returns a CSS fragment for setting CSS property prop to
// color c.
func cssPaint(prop string, c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return prop + ":none"
	}
	// Un-premultiply alpha.
	r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	css := fmt.Sprintf("%s:#%02x%02x%02x", prop, r>>8, g>>8, b>>8)
	if a < 0xffff {
		css += fmt.Sprintf(";%s-opacity:%.6g", prop, float64(a)/0xffff)
	}
	return css
}

// alphaColor scales c's alpha by alpha in [0, 1].
func alphaColor(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return color.Transparent
	}
	return color.NRGBA64{
		R: uint16(r * 0xffff / a),
		G: uint16(g * 0xffff / a),
		B: uint16(b * 0xffff / a),
		A: uint16(alpha * float64(a)),
	}
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.6g", v)
}

// linearTicks returns at most max round tick values covering [lo, hi]
// using a 1-2-5 step progression.
// funcTicker adapts tick closures to the scale.Ticker interface.
type funcTicker struct {
	count func(level int) int
	ticks func(level int) []float64
}

func (t funcTicker) CountTicks(level int) int           { return t.count(level) }
func (t funcTicker) TicksAtLevel(level int) interface{} { return t.ticks(level) }

func linearTicks(lo, hi float64, max int) []float64 {
	if max < 2 {
		max = 2
	}
	step := func(level int) float64 {
		q, r := level/3, level%3
		if r < 0 {
			q, r = q-1, r+3
		}
		return []float64{1, 2, 5}[r] * math.Pow(10, float64(q))
	}
	count := func(level int) int {
		s := step(level)
		n := int(math.Floor(hi/s)) - int(math.Ceil(lo/s)) + 1
		if n < 0 {
			return 0
		}
		return n
	}
	ticks := func(level int) []float64 {
		s := step(level)
		out := []float64{}
		for k := int(math.Ceil(lo / s)); float64(k)*s <= hi; k++ {
			out = append(out, float64(k)*s)
		}
		return out
	}

	o := scale.TickOptions{Max: max}
	guess := int(math.Round(3 * math.Log10((hi-lo)/float64(max))))
	l, ok := o.FindLevel(funcTicker{count, ticks}, guess)
	if !ok {
		return nil
	}
	return ticks(l)
}
