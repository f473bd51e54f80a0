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

import (
	"slices"

	"github.com/dolthub/timeline/d"
	"github.com/dolthub/timeline/interval"
)

// Compressor folds an ascending sequence of segments, merging each segment
// into the previous one when their intervals are adjacent and their values
// are equal.
type Compressor[V any] struct {
	adjacent interval.Adjacency
	equal    func(a, b V) bool
	merge    Combinator[V, V, V]
	segments []Segment[V]
}

// NewCompressor returns a Compressor. Nil arguments default to calendar
// adjacency, ValuesEqual and keeping the earlier segment's value.
func NewCompressor[V any](adjacent interval.Adjacency, equal func(a, b V) bool, merge Combinator[V, V, V]) *Compressor[V] {
	if adjacent == nil {
		adjacent = interval.Abuts
	}
	if equal == nil {
		equal = ValuesEqual[V]
	}
	if merge == nil {
		merge = coalesceLeft[V]
	}
	return &Compressor[V]{adjacent: adjacent, equal: equal, merge: merge}
}

func (c *Compressor[V]) sameValue(a, b Segment[V]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || c.equal(a.value, b.value)
}

// Accept adds the next segment. Segments must be given in ascending order
// without overlaps.
func (c *Compressor[V]) Accept(s Segment[V]) error {
	n := len(c.segments)
	if n == 0 {
		c.segments = append(c.segments, s)
		return nil
	}

	last := c.segments[n-1]
	if !last.To().Before(s.From()) {
		return ErrUnorderedSegments.New(s.interval, last.interval)
	}
	if !c.adjacent(last.interval, s.interval) || !c.sameValue(last, s) {
		c.segments = append(c.segments, s)
		return nil
	}

	expanded, err := last.interval.Expand(s.interval, c.adjacent)
	if err != nil {
		return err
	}
	merged := EmptySegment[V](expanded)
	if m := c.merge(expanded, &last, &s); m != nil {
		merged = m.WithInterval(expanded)
	}
	c.segments[n-1] = merged
	return nil
}

// Merge always fails. Compression is a sequential fold, and two compressors
// that each saw part of a timeline cannot be combined.
func (c *Compressor[V]) Merge(*Compressor[V]) error {
	return ErrCompressMerge.New()
}

// Timeline returns the segments accepted so far. Later calls to Accept do not
// change the returned Timeline.
func (c *Compressor[V]) Timeline() *Timeline[V] {
	return &Timeline[V]{segments: slices.Clone(c.segments), splitter: CopySplitter[V]}
}

// Compress merges adjacent segments with equal values.
func (t *Timeline[V]) Compress() *Timeline[V] {
	return t.CompressWith(nil, nil, nil)
}

// CompressWith merges segments |adjacent| to each other whose values are
// |equal|, using |merge| for the value of the merged segment. Nil arguments
// take the defaults of NewCompressor.
func (t *Timeline[V]) CompressWith(adjacent interval.Adjacency, equal func(a, b V) bool, merge Combinator[V, V, V]) *Timeline[V] {
	c := NewCompressor(adjacent, equal, merge)
	for _, s := range t.segments {
		d.PanicIfError(c.Accept(s))
	}
	res := c.Timeline()
	res.splitter = t.splitter
	return res
}
