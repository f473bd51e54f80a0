// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package timeline

import "github.com/dolthub/timeline/interval"

// Combinator produces the segment for |iv| from the segments of a left and a
// right input that cover it. Either input may be nil when that side has no
// segment over |iv|; the inputs passed to a combinator during construction
// may be wider than |iv|. Returning nil drops |iv| from the result.
//
// A combinator must return a segment over exactly |iv|, or nil.
type Combinator[L, R, O any] func(iv interval.Interval, left *Segment[L], right *Segment[R]) *Segment[O]

// Splitter derives the segment for |iv| from a stored segment |s| whose
// interval strictly contains |iv|.
type Splitter[V any] func(iv interval.Interval, s Segment[V]) Segment[V]

// CopySplitter keeps the stored value unchanged for every sub-interval.
func CopySplitter[V any](iv interval.Interval, s Segment[V]) Segment[V] {
	if s.interval == iv {
		return s
	}
	return s.WithInterval(iv)
}

func leftOnly[L, R any](iv interval.Interval, left *Segment[L], _ *Segment[R]) *Segment[L] {
	if left == nil {
		return nil
	}
	s := left.WithInterval(iv)
	return &s
}

func coalesceLeft[V any](iv interval.Interval, left, right *Segment[V]) *Segment[V] {
	if left == nil {
		left = right
	}
	if left == nil {
		return nil
	}
	s := left.WithInterval(iv)
	return &s
}

func presence[L, R any](iv interval.Interval, _ *Segment[L], _ *Segment[R]) *Segment[struct{}] {
	s := NewSegment(iv, struct{}{})
	return &s
}
