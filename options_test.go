// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestOptionsValidate(t *testing.T) {
	bad := func(o Options, ngroups int, substr string) {
		t.Helper()
		err := o.validate(ngroups)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%+v: want *ConfigError, got %v", o, err)
			return
		}
		if !strings.Contains(err.Error(), substr) {
			t.Errorf("%+v: error %q does not mention %q", o, err, substr)
		}
	}

	bad(Options{XLabels: []string{"a"}, XPositions: []float64{1}}, 1, "mutually exclusive")
	bad(Options{XLabels: []string{"a", "b"}}, 3, "label count mismatch")
	bad(Options{XPositions: []float64{1, 2}}, 3, "position count mismatch")
	bad(Options{Bandwidths: []float64{1, 2}}, 3, "bandwidth count mismatch")
	bad(Options{Bandwidth: 1, Bandwidths: []float64{1}}, 1, "mutually exclusive")
	bad(Options{FaceColors: []color.Color{color.Black}}, 2, "face color count mismatch")
	bad(Options{FaceAlpha: 1.5}, 1, "out of range")
	bad(Options{FaceAlpha: -0.1}, 1, "out of range")
	bad(Options{Bins: -1}, 1, "Bins")

	var o Options
	if err := o.validate(2); err != nil {
		t.Fatalf("zero Options should validate, got %v", err)
	}
	if o.FaceAlpha != defaultFaceAlpha || o.Bins != defaultBins ||
		o.HalfWidth != defaultHalfWidth || o.N != defaultN || o.Widen != defaultWiden {
		t.Errorf("defaults not applied: %+v", o)
	}
	if o.MeanColor == nil || o.MedianColor == nil {
		t.Errorf("bar colors not defaulted: %+v", o)
	}
}

func TestStyleFor(t *testing.T) {
	o := Options{}
	if err := o.validate(3); err != nil {
		t.Fatal(err)
	}

	// Default faces come from the palette and differ per group.
	s0, s2 := o.styleFor(0, 3, 100), o.styleFor(2, 3, 100)
	if s0.Face == nil || s2.Face == nil || s0.Face == s2.Face {
		t.Errorf("default faces should differ per group: %v, %v", s0.Face, s2.Face)
	}
	// Default edge is the opaque face color.
	if _, _, _, a := s0.Edge.RGBA(); a != 0xffff {
		t.Errorf("default edge should be opaque, got alpha %#x", a)
	}

	// Point size is inversely proportional to the group size,
	// clamped to [1, 12].
	if got := o.styleFor(0, 3, 100).PointSize; got != 10 {
		t.Errorf("PointSize for 100 samples = %g, want 10", got)
	}
	if got := o.styleFor(0, 3, 10).PointSize; got != 12 {
		t.Errorf("PointSize for 10 samples = %g, want 12 (clamped)", got)
	}
	if got := o.styleFor(0, 3, 100000).PointSize; got != 1 {
		t.Errorf("PointSize for 100000 samples = %g, want 1 (clamped)", got)
	}

	o = Options{PointSize: 4, FaceColor: color.White}
	if err := o.validate(2); err != nil {
		t.Fatal(err)
	}
	s := o.styleFor(1, 2, 5)
	if s.PointSize != 4 {
		t.Errorf("fixed PointSize = %g, want 4", s.PointSize)
	}
	if s.Face != color.Color(color.White) {
		t.Errorf("shared face = %v, want white", s.Face)
	}
}
