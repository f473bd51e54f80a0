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

	"github.com/dolthub/timeline/interval"
)

// CollectPredicate decides whether |candidate| is kept. It sees the segments
// kept so far and the timeline's segments before and after the candidate.
// The slices are copies; changing them does not affect the timeline.
type CollectPredicate[V any] func(accepted []Segment[V], candidate Segment[V], before, after []Segment[V]) bool

// Collect keeps the segments accepted by |test|. With |includeGaps| every gap
// between two segments is offered to |test| as an empty segment before the
// segment that follows it.
func (t *Timeline[V]) Collect(test CollectPredicate[V], includeGaps bool) *Timeline[V] {
	var accepted []Segment[V]
	offer := func(s Segment[V], before, after []Segment[V]) {
		if test(slices.Clone(accepted), s, before, after) {
			accepted = append(accepted, s)
		}
	}

	for i, s := range t.segments {
		if includeGaps && i > 0 {
			prev := t.segments[i-1]
			if !prev.interval.Abuts(s.interval) {
				gap := interval.Must(interval.NextDay(prev.To()), interval.PrevDay(s.From()))
				offer(EmptySegment[V](gap), slices.Clone(t.segments[:i]), slices.Clone(t.segments[i:]))
			}
		}
		offer(s, slices.Clone(t.segments[:i]), slices.Clone(t.segments[i+1:]))
	}
	return t.derive(accepted)
}

// FilterValue keeps the segments whose value satisfies |pred|.
func (t *Timeline[V]) FilterValue(pred func(V) bool) *Timeline[V] {
	var res []Segment[V]
	for _, s := range t.segments {
		if s.present && pred(s.value) {
			res = append(res, s)
		}
	}
	return t.derive(res)
}

// IsContinuous reports whether every segment is adjacent to the next one.
// Adjacency defaults to interval.Abuts. An empty timeline is continuous.
func (t *Timeline[V]) IsContinuous(adjacent ...interval.Adjacency) bool {
	_, _, found := t.FirstDiscontinuity(adjacent...)
	return !found
}

// FirstDiscontinuity returns the intervals on either side of the first gap.
func (t *Timeline[V]) FirstDiscontinuity(adjacent ...interval.Adjacency) (before, after interval.Interval, found bool) {
	adj := interval.Abuts
	if len(adjacent) > 0 {
		adj = adjacent[0]
	}
	for i := 1; i < len(t.segments); i++ {
		if !adj(t.segments[i-1].interval, t.segments[i].interval) {
			return t.segments[i-1].interval, t.segments[i].interval, true
		}
	}
	return interval.Interval{}, interval.Interval{}, false
}

// IsContinuousIn reports whether the timeline covers every day of |iv|.
func (t *Timeline[V]) IsContinuousIn(iv interval.Interval) bool {
	w := t.derive(t.window(iv))
	if w.IsEmpty() {
		return false
	}
	return w.segments[0].From() == iv.From() && w.segments[len(w.segments)-1].To() == iv.To() && w.IsContinuous()
}
