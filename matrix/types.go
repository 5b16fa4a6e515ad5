// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense data model.
// This file intentionally contains ONLY domain-facing types; errors and
// options live in dedicated files (errors.go, options.go) per the global
// conventions.
package matrix

// Span models a 1-based integer range over one matrix axis, used by
// Dense.Slice for range selection.
//
// Conventions:
//   - Start and Stop are 1-based and inclusive at both ends.
//   - A zero Start/Stop is an open end: it resolves to the first or last
//     index of the axis depending on the direction of Step. (Zero is never
//     a valid 1-based index, so it can safely mark "unset".)
//   - Negative Start/Stop count from the end of the axis: -1 is the last
//     index, -2 the one before it, and so on.
//   - Step zero means 1; a negative Step selects in descending order.
//
// The zero value Span{} therefore selects the whole axis, ascending.
// Each Span is normalized against ITS OWN axis extent, never the other's.
type Span struct {
	Start int // 1-based inclusive start; 0 = open, negative = from end
	Stop  int // 1-based inclusive stop; 0 = open, negative = from end
	Step  int // stride; 0 = 1, negative = descending
}

// All is the whole-axis ascending selection, for readable call sites.
var All = Span{}

// normalize resolves the span against an axis of the given extent and
// returns the selected 0-based indices in selection order.
// Implementation:
//   - Stage 1: default the step, resolve open ends by direction.
//   - Stage 2: translate negative-from-end values, bounds-check both ends.
//   - Stage 3: walk from start towards stop inclusive with the step.
//
// Errors:
//   - ErrIndexOutOfBounds when a resolved end falls outside [1..extent].
//   - ErrInvalidShape when the walk selects nothing (empty selection).
//
// Complexity: Time O(selected), Space O(selected).
func (s Span) normalize(extent int) ([]int, error) {
	step := s.Step
	if step == 0 {
		step = 1
	}

	start, stop := s.Start, s.Stop
	// Open ends follow the direction of travel.
	if start == 0 {
		if step > 0 {
			start = 1
		} else {
			start = extent
		}
	}
	if stop == 0 {
		if step > 0 {
			stop = extent
		} else {
			stop = 1
		}
	}
	// Negative indices count from the end of this axis.
	if start < 0 {
		start = extent + 1 + start
	}
	if stop < 0 {
		stop = extent + 1 + stop
	}
	if start < 1 || start > extent {
		return nil, ErrIndexOutOfBounds
	}
	if stop < 1 || stop > extent {
		return nil, ErrIndexOutOfBounds
	}

	// Inclusive walk in the step's direction.
	var picked []int
	if step > 0 {
		for v := start; v <= stop; v += step {
			picked = append(picked, v-1)
		}
	} else {
		for v := start; v >= stop; v += step {
			picked = append(picked, v-1)
		}
	}
	if len(picked) == 0 {
		return nil, ErrInvalidShape
	}

	return picked, nil
}
