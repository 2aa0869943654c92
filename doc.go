// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package violin renders violin plots: per-group mirrored kernel
// density silhouettes combined with a jittered swarm of the raw
// sample points.
//
// A plot is constructed with New from one or more groups of samples
// and an optional Options struct. Construction computes all geometry
// up front: a density curve per group (estimated with
// go-moremath's kernel density estimator and rescaled to a fixed
// maximum half-width), a closed silhouette polygon, mean and median
// bar segments, and a non-overlapping point layout bounded by the
// local silhouette width. WriteSVG renders the computed geometry;
// the geometry itself is also exposed through accessors so callers
// can drive a different backend.
//
// All computation is deterministic: identical input yields identical
// coordinates, with no hidden randomness.
package violin
