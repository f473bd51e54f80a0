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
	"cloud.google.com/go/civil"

	"github.com/dolthub/timeline/d"
	"github.com/dolthub/timeline/interval"
)

// Map replaces every segment with the segments |fn| returns for it. The
// results are built into a new Timeline, so they must not overlap.
func Map[V, R any](t *Timeline[V], fn func(s Segment[V]) []Segment[R]) (*Timeline[R], error) {
	var res []Segment[R]
	for _, s := range t.segments {
		res = append(res, fn(s)...)
	}
	return New(res)
}

// MapValue applies |fn| to the value of every segment. Empty segments stay
// empty.
func MapValue[V, R any](t *Timeline[V], fn func(V) R) *Timeline[R] {
	res := make([]Segment[R], len(t.segments))
	for i, s := range t.segments {
		if s.present {
			res[i] = NewSegment(s.interval, fn(s.value))
		} else {
			res[i] = EmptySegment[R](s.interval)
		}
	}
	return &Timeline[R]{segments: res, splitter: CopySplitter[R]}
}

// Reducer folds |next| into |acc|, which is nil for the first segment.
type Reducer[V, R any] func(acc *R, next Segment[V]) *R

// Reduce folds the segments in ascending order. It reports false when the
// timeline is empty or the reducer ended on nil.
func Reduce[V, R any](t *Timeline[V], fn Reducer[V, R]) (R, bool) {
	var acc *R
	for _, s := range t.segments {
		acc = fn(acc, s)
	}
	if acc == nil {
		var zero R
		return zero, false
	}
	return *acc, true
}

// SplitAtRegular cuts the timeline at |start| and every |p| after it, up to
// |end| or the last day of the timeline, whichever comes first. Days before
// |start| are dropped. The last period is not cut at |end|.
func (t *Timeline[V]) SplitAtRegular(start, end civil.Date, p interval.Period) (*Timeline[V], error) {
	if interval.IsSentinel(start) || interval.IsSentinel(end) || end.Before(start) || !p.IsPositive() {
		return nil, ErrInvalidSplitRange.New(interval.FormatDate(start), interval.FormatDate(end), p)
	}
	if t.IsEmpty() {
		return t.derive(nil), nil
	}

	last := t.segments[len(t.segments)-1].To()
	var res []Segment[V]
	for dt := start; !dt.After(end) && !dt.After(last); {
		next := p.AddTo(dt)
		d.Chk.True(next.After(dt), "period %s does not advance %s", p, dt)
		to := interval.PrevDay(next)
		if to.After(interval.MaxDate) {
			to = interval.MaxDate
		}
		res = append(res, t.window(interval.Must(dt, to))...)
		dt = next
	}
	return t.derive(res), nil
}
