// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package violin

import "fmt"

// A ShapeError reports malformed rectangular input, such as a table
// with no columns or rows of unequal length.
type ShapeError struct {
	Msg string
}

func (e *ShapeError) Error() string {
	return "violin: " + e.Msg
}

// A ConfigError reports conflicting or mismatched options, such as a
// per-group bandwidth list whose length differs from the group count.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "violin: " + e.Msg
}

// An EmptyGroupError reports a group with no finite samples. The
// group's summary statistics are undefined, so it is dropped from the
// plot; the remaining groups are still plotted.
type EmptyGroupError struct {
	Group int // 1-based group index
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("violin: group %d has no finite samples", e.Group)
}
