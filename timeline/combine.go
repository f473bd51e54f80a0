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

// span is a segment's interval as day ordinals.
type span struct {
	lo, hi int64
}

func spans[V any](segs []Segment[V]) []span {
	res := make([]span, len(segs))
	for i, s := range segs {
		res[i] = span{interval.Ordinal(s.From()), interval.Ordinal(s.To())}
	}
	return res
}

// breakpoints returns, sorted and without duplicates, every day on which a
// segment of |ls| or |rs| starts or the day after one ends.
func breakpoints(ls, rs []span) []int64 {
	res := make([]int64, 0, 2*(len(ls)+len(rs)))
	for _, sp := range ls {
		res = append(res, sp.lo, sp.hi+1)
	}
	for _, sp := range rs {
		res = append(res, sp.lo, sp.hi+1)
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// cursor walks the segments of one side of a combine.
type cursor struct {
	spans []span
	i     int
}

// at advances past segments that end before |b| and reports whether the
// current segment covers |b|.
func (c *cursor) at(b int64) bool {
	for c.i < len(c.spans) && c.spans[c.i].hi < b {
		c.i++
	}
	return c.i < len(c.spans) && c.spans[c.i].lo <= b
}

// Combine merges two timelines. The days covered by either side are cut into
// maximal sub-intervals on which the set of covering segments is constant.
// Each sub-interval accepted by |style| is passed to |c| with the covering
// segments narrowed to it, or nil for a side without a segment there.
func Combine[L, R, O any](left *Timeline[L], right *Timeline[R], c Combinator[L, R, O], style JoinStyle) (*Timeline[O], error) {
	if left.IsEmpty() || right.IsEmpty() {
		return combineOneSided(left, right, c, style)
	}

	ls, rs := spans(left.segments), spans(right.segments)
	bps := breakpoints(ls, rs)
	lc, rc := &cursor{spans: ls}, &cursor{spans: rs}

	var res []Segment[O]
	for k := 0; k+1 < len(bps); k++ {
		b, next := bps[k], bps[k+1]
		hasLeft, hasRight := lc.at(b), rc.at(b)
		if !style.Accept(hasLeft, hasRight) {
			continue
		}

		iv := interval.Must(interval.FromOrdinal(b), interval.FromOrdinal(next-1))
		var l *Segment[L]
		if hasLeft {
			s := left.narrow(left.segments[lc.i], iv)
			l = &s
		}
		var r *Segment[R]
		if hasRight {
			s := right.narrow(right.segments[rc.i], iv)
			r = &s
		}
		if out := c(iv, l, r); out != nil {
			res = append(res, *out)
		}
	}
	return build(res)
}

// combineOneSided handles a combine where at least one side is empty. The
// combinator still sees every accepted segment of the other side.
func combineOneSided[L, R, O any](left *Timeline[L], right *Timeline[R], c Combinator[L, R, O], style JoinStyle) (*Timeline[O], error) {
	var res []Segment[O]
	if style.Accept(true, false) {
		for _, s := range left.segments {
			l := s
			if out := c(s.interval, &l, nil); out != nil {
				res = append(res, *out)
			}
		}
	}
	if style.Accept(false, true) {
		for _, s := range right.segments {
			r := s
			if out := c(s.interval, nil, &r); out != nil {
				res = append(res, *out)
			}
		}
	}
	return build(res)
}

// CombineSegment combines |t| with a timeline holding only |s|.
func CombineSegment[L, R, O any](t *Timeline[L], s Segment[R], c Combinator[L, R, O], style JoinStyle) (*Timeline[O], error) {
	return Combine(t, &Timeline[R]{segments: []Segment[R]{s}, splitter: CopySplitter[R]}, c, style)
}

func Intersection[L, R, O any](left *Timeline[L], right *Timeline[R], c Combinator[L, R, O]) (*Timeline[O], error) {
	return Combine(left, right, c, InnerJoin)
}

func Union[L, R, O any](left *Timeline[L], right *Timeline[R], c Combinator[L, R, O]) (*Timeline[O], error) {
	return Combine(left, right, c, CrossJoin)
}

// CrossJoinWith is Union under its join name.
func CrossJoinWith[L, R, O any](left *Timeline[L], right *Timeline[R], c Combinator[L, R, O]) (*Timeline[O], error) {
	return Combine(left, right, c, CrossJoin)
}

func DisjointWith[L, R, O any](left *Timeline[L], right *Timeline[R], c Combinator[L, R, O]) (*Timeline[O], error) {
	return Combine(left, right, c, Disjoint)
}

// Except returns the parts of |left| not covered by |right|, with the left
// values.
func Except[L, R any](left *Timeline[L], right *Timeline[R]) *Timeline[L] {
	res, err := Combine(left, right, leftOnly[L, R], Disjoint)
	d.PanicIfError(err)
	res.splitter = left.splitter
	return res
}

// Intersects reports whether the two timelines share at least one day.
func Intersects[L, R any](left *Timeline[L], right *Timeline[R]) bool {
	res, err := Combine(left, right, presence[L, R], InnerJoin)
	d.PanicIfError(err)
	return !res.IsEmpty()
}

// CrossJoin returns the union of two timelines of the same type. Where both
// have a segment the value of |t| wins.
func (t *Timeline[V]) CrossJoin(other *Timeline[V]) *Timeline[V] {
	if t.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return t
	}
	res, err := Combine(t, other, coalesceLeft[V], CrossJoin)
	d.PanicIfError(err)
	res.splitter = t.splitter
	return res
}

// IntersectInterval returns the part of the timeline inside |iv|.
func (t *Timeline[V]) IntersectInterval(iv interval.Interval) *Timeline[V] {
	return t.derive(t.window(iv))
}

// DisjointInterval returns the part of the timeline outside |iv|.
func (t *Timeline[V]) DisjointInterval(iv interval.Interval) *Timeline[V] {
	var res []Segment[V]
	for _, s := range t.segments {
		if !s.interval.Overlaps(iv) {
			res = append(res, s)
			continue
		}
		for _, rem := range s.interval.Except(iv) {
			res = append(res, t.splitter(rem, s))
		}
	}
	return t.derive(res)
}
