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

// Package timeline implements an immutable ordered collection of
// non-overlapping date segments and an algebra for combining them.
package timeline

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/dolthub/timeline/d"
	"github.com/dolthub/timeline/interval"
)

// Timeline is an ordered sequence of segments of which no two share a day.
// A Timeline never changes once it is built; every operation on it returns a
// new Timeline.
type Timeline[V any] struct {
	segments []Segment[V]
	splitter Splitter[V]
}

type options[V any] struct {
	combinator Combinator[V, V, V]
	splitter   Splitter[V]
}

type Option[V any] func(*options[V])

// WithCombinator resolves segments that overlap during construction. The
// left input of the combinator is the segment already placed, the right one
// is the segment being added.
func WithCombinator[V any](c Combinator[V, V, V]) Option[V] {
	return func(o *options[V]) {
		o.combinator = c
	}
}

// WithSplitter sets how a segment is narrowed to a sub-interval. Timelines
// derived from this one without changing the value type keep the splitter.
func WithSplitter[V any](s Splitter[V]) Option[V] {
	return func(o *options[V]) {
		o.splitter = s
	}
}

// New builds a Timeline from |segs|, which may be given in any order. Without
// a combinator any two overlapping segments are an error.
func New[V any](segs []Segment[V], opts ...Option[V]) (*Timeline[V], error) {
	o := options[V]{splitter: CopySplitter[V]}
	for _, opt := range opts {
		opt(&o)
	}

	b := newBuilder(o.combinator, o.splitter)
	for _, s := range segs {
		if err := b.insert(s); err != nil {
			return nil, err
		}
	}
	res, err := b.segments()
	if err != nil {
		return nil, err
	}
	return &Timeline[V]{segments: res, splitter: o.splitter}, nil
}

// Single returns a Timeline with a single segment.
func Single[V any](iv interval.Interval, v V) *Timeline[V] {
	return &Timeline[V]{segments: []Segment[V]{NewSegment(iv, v)}, splitter: CopySplitter[V]}
}

func Empty[V any]() *Timeline[V] {
	return &Timeline[V]{splitter: CopySplitter[V]}
}

// derive wraps segments that are already ordered and disjoint.
func (t *Timeline[V]) derive(segs []Segment[V]) *Timeline[V] {
	for i := 1; i < len(segs); i++ {
		d.PanicIfFalse(segs[i-1].To().Before(segs[i].From()), "derived segments overlap")
	}
	return &Timeline[V]{segments: segs, splitter: t.splitter}
}

// build wraps segments produced by a combinator. They are taken as they are
// when ordered and disjoint and otherwise go through New, which reports any
// overlap.
func build[V any](segs []Segment[V]) (*Timeline[V], error) {
	for i := 1; i < len(segs); i++ {
		if !segs[i-1].To().Before(segs[i].From()) {
			return New(segs)
		}
	}
	return &Timeline[V]{segments: segs, splitter: CopySplitter[V]}, nil
}

func (t *Timeline[V]) Size() int {
	return len(t.segments)
}

func (t *Timeline[V]) IsEmpty() bool {
	return len(t.segments) == 0
}

// Segments returns the segments of the timeline in ascending order.
func (t *Timeline[V]) Segments() []Segment[V] {
	return slices.Clone(t.segments)
}

func (t *Timeline[V]) Intervals() []interval.Interval {
	res := make([]interval.Interval, len(t.segments))
	for i, s := range t.segments {
		res[i] = s.interval
	}
	return res
}

// Iter calls |cb| for each segment in ascending order until it returns true.
func (t *Timeline[V]) Iter(cb func(s Segment[V]) (stop bool)) {
	for _, s := range t.segments {
		if cb(s) {
			return
		}
	}
}

func (t *Timeline[V]) MinDate() (civil.Date, error) {
	if t.IsEmpty() {
		return civil.Date{}, ErrEmptyTimelineAccess.New()
	}
	return t.segments[0].From(), nil
}

func (t *Timeline[V]) MaxDate() (civil.Date, error) {
	if t.IsEmpty() {
		return civil.Date{}, ErrEmptyTimelineAccess.New()
	}
	return t.segments[len(t.segments)-1].To(), nil
}

// Span returns the interval from the first to the last day of the timeline.
func (t *Timeline[V]) Span() (interval.Interval, error) {
	if t.IsEmpty() {
		return interval.Interval{}, ErrEmptyTimelineAccess.New()
	}
	return interval.Must(t.segments[0].From(), t.segments[len(t.segments)-1].To()), nil
}

// Segment returns the stored segment overlapping |iv| narrowed to their
// common days. When |iv| overlaps several segments the first one is used.
func (t *Timeline[V]) Segment(iv interval.Interval) (Segment[V], bool) {
	i := t.search(iv.From())
	if i == len(t.segments) || !t.segments[i].interval.Overlaps(iv) {
		return Segment[V]{}, false
	}
	shared, _ := t.segments[i].interval.Overlap(iv)
	return t.narrow(t.segments[i], shared), true
}

// search returns the index of the first segment ending on or after |date|.
func (t *Timeline[V]) search(date civil.Date) int {
	return sort.Search(len(t.segments), func(i int) bool {
		return !t.segments[i].To().Before(date)
	})
}

func (t *Timeline[V]) narrow(s Segment[V], iv interval.Interval) Segment[V] {
	if s.interval == iv {
		return s
	}
	return t.splitter(iv, s)
}

// window returns the segments overlapping |iv|, narrowed to it.
func (t *Timeline[V]) window(iv interval.Interval) []Segment[V] {
	var res []Segment[V]
	for i := t.search(iv.From()); i < len(t.segments) && !t.segments[i].From().After(iv.To()); i++ {
		shared, _ := t.segments[i].interval.Overlap(iv)
		res = append(res, t.narrow(t.segments[i], shared))
	}
	return res
}

func (t *Timeline[V]) Equal(other *Timeline[V]) bool {
	return slices.EqualFunc(t.segments, other.segments, Segment[V].Equal)
}

func (t *Timeline[V]) String() string {
	sb := strings.Builder{}
	if t.IsEmpty() {
		sb.WriteString("Timeline<empty>")
	} else {
		fmt.Fprintf(&sb, "Timeline<%s, %s [%d]>", interval.FormatDate(t.segments[0].From()), interval.FormatDate(t.segments[len(t.segments)-1].To()), len(t.segments))
	}
	sb.WriteString(" = [")
	for i, s := range t.segments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString("]")
	return sb.String()
}
