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
	"github.com/google/btree"

	"github.com/dolthub/timeline/interval"
)

const builderDegree = 32

// A builder is a tree of non-overlapping segments. Segments inserted into it
// that overlap existing ones are resolved against them with the overlap
// combinator, so the tree never holds two segments sharing a day.
type builder[V any] struct {
	t          *btree.BTreeG[Segment[V]]
	combinator Combinator[V, V, V]
	splitter   Splitter[V]
}

func newBuilder[V any](combinator Combinator[V, V, V], splitter Splitter[V]) *builder[V] {
	return &builder[V]{
		t:          btree.NewG[Segment[V]](builderDegree, segmentLess[V]),
		combinator: combinator,
		splitter:   splitter,
	}
}

func (b *builder[V]) insert(seg Segment[V]) error {
	if b.t.Len() == 0 {
		b.t.ReplaceOrInsert(seg)
		return nil
	}

	// Entirely before the first or after the last segment.
	first, _ := b.t.Min()
	last, _ := b.t.Max()
	if seg.To().Before(first.From()) || seg.From().After(last.To()) {
		b.t.ReplaceOrInsert(seg)
		return nil
	}

	overlapping := b.overlapping(seg.interval)
	if len(overlapping) == 0 {
		b.t.ReplaceOrInsert(seg)
		return nil
	}
	if b.combinator == nil {
		return ErrOverlapWithoutCombinator.New(seg.interval)
	}

	pieces := b.resolve(seg, overlapping)
	for _, existing := range overlapping {
		b.t.Delete(existing)
	}
	for _, p := range pieces {
		if replaced, found := b.t.ReplaceOrInsert(p); found {
			return ErrOverlappingSegments.New(replaced.interval, p.interval)
		}
	}
	return nil
}

// overlapping returns the stored segments sharing at least one day with |iv|,
// in ascending order.
func (b *builder[V]) overlapping(iv interval.Interval) []Segment[V] {
	var res []Segment[V]

	// Only the closest segment starting at or before |iv| can reach into it...
	var before *Segment[V]
	b.t.DescendLessOrEqual(Segment[V]{interval: interval.Must(iv.From(), interval.MaxDate)}, func(s Segment[V]) bool {
		if !s.To().Before(iv.From()) {
			before = &s
			res = append(res, s)
		}
		return false
	})

	// ...every segment starting inside |iv| overlaps it.
	b.t.AscendGreaterOrEqual(Segment[V]{interval: interval.Day(iv.From())}, func(s Segment[V]) bool {
		if s.From().After(iv.To()) {
			return false
		}
		if before == nil || s.interval != before.interval {
			res = append(res, s)
		}
		return true
	})

	return res
}

// resolve splits |seg| and the stored |overlapping| segments into disjoint
// pieces. Parts of an existing segment outside |seg| keep the existing value,
// shared days go through the combinator and days of |seg| not covered by any
// existing segment keep the new value.
func (b *builder[V]) resolve(seg Segment[V], overlapping []Segment[V]) []Segment[V] {
	var pieces []Segment[V]
	for _, existing := range overlapping {
		for _, rem := range existing.interval.Except(seg.interval) {
			pieces = append(pieces, b.splitter(rem, existing))
		}
		shared, _ := existing.interval.Overlap(seg.interval)
		left, right := existing, seg
		if c := b.combinator(shared, &left, &right); c != nil {
			pieces = append(pieces, *c)
		}
	}

	cursor := seg.From()
	for _, existing := range overlapping {
		if cursor.Before(existing.From()) {
			pieces = append(pieces, seg.WithInterval(interval.Must(cursor, interval.PrevDay(existing.From()))))
		}
		if next := interval.NextDay(existing.To()); next.After(cursor) {
			cursor = next
		}
	}
	if !cursor.After(seg.To()) {
		pieces = append(pieces, seg.WithInterval(interval.Must(cursor, seg.To())))
	}
	return pieces
}

// segments returns the contents of the tree in ascending order, checking that
// no two consecutive segments share a day.
func (b *builder[V]) segments() ([]Segment[V], error) {
	res := make([]Segment[V], 0, b.t.Len())
	var err error
	b.t.Ascend(func(s Segment[V]) bool {
		if n := len(res); n > 0 && !res[n-1].To().Before(s.From()) {
			err = ErrOverlappingSegments.New(res[n-1].interval, s.interval)
			return false
		}
		res = append(res, s)
		return true
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
