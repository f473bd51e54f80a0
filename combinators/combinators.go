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

// Package combinators holds commonly used timeline.Combinator functions.
//
// Unless noted otherwise a combinator returns nil, dropping the interval,
// when neither side has a segment, and uses the value of the side that is
// present when only one side is.
package combinators

import (
	"github.com/dolthub/timeline/interval"
	"github.com/dolthub/timeline/timeline"
)

func at[V any](iv interval.Interval, v V) *timeline.Segment[V] {
	s := timeline.NewSegment(iv, v)
	return &s
}

func keep[V any](iv interval.Interval, s *timeline.Segment[V]) *timeline.Segment[V] {
	res := s.WithInterval(iv)
	return &res
}

// LeftOnly keeps the left value and drops intervals without one.
func LeftOnly[L, R any](iv interval.Interval, l *timeline.Segment[L], _ *timeline.Segment[R]) *timeline.Segment[L] {
	if l == nil {
		return nil
	}
	return keep(iv, l)
}

// RightOnly keeps the right value and drops intervals without one.
func RightOnly[L, R any](iv interval.Interval, _ *timeline.Segment[L], r *timeline.Segment[R]) *timeline.Segment[R] {
	if r == nil {
		return nil
	}
	return keep(iv, r)
}

// CoalesceLeft prefers the left value.
func CoalesceLeft[V any](iv interval.Interval, l, r *timeline.Segment[V]) *timeline.Segment[V] {
	switch {
	case l != nil:
		return keep(iv, l)
	case r != nil:
		return keep(iv, r)
	}
	return nil
}

// CoalesceRight prefers the right value.
func CoalesceRight[V any](iv interval.Interval, l, r *timeline.Segment[V]) *timeline.Segment[V] {
	return CoalesceLeft(iv, r, l)
}

// Concat joins the left and the right string. An absent side counts as "".
func Concat(iv interval.Interval, l, r *timeline.Segment[string]) *timeline.Segment[string] {
	if l == nil && r == nil {
		return nil
	}
	var v string
	if l != nil {
		v += l.Value()
	}
	if r != nil {
		v += r.Value()
	}
	return at(iv, v)
}

// AlwaysTrue marks every interval it is given, whatever the values.
func AlwaysTrue[L, R any](iv interval.Interval, _ *timeline.Segment[L], _ *timeline.Segment[R]) *timeline.Segment[bool] {
	return at(iv, true)
}

// BothValues returns the values present, left first.
func BothValues[L, R any](iv interval.Interval, l *timeline.Segment[L], r *timeline.Segment[R]) *timeline.Segment[[]any] {
	var vals []any
	if l != nil {
		vals = append(vals, l.Value())
	}
	if r != nil {
		vals = append(vals, r.Value())
	}
	if vals == nil {
		return nil
	}
	return at(iv, vals)
}

// AllValues appends the right value to the left list. It is meant to be
// folded over several timelines, starting from an empty list timeline.
func AllValues[V any](iv interval.Interval, l *timeline.Segment[[]V], r *timeline.Segment[V]) *timeline.Segment[[]V] {
	switch {
	case l != nil && r != nil:
		vals := append(append(make([]V, 0, len(l.Value())+1), l.Value()...), r.Value())
		return at(iv, vals)
	case l != nil:
		return keep(iv, l)
	case r != nil:
		return at(iv, []V{r.Value()})
	}
	return nil
}

// ConcatLists appends the right list to the left one.
func ConcatLists[V any](iv interval.Interval, l, r *timeline.Segment[[]V]) *timeline.Segment[[]V] {
	if l != nil && r != nil {
		vals := append(append(make([]V, 0, len(l.Value())+len(r.Value())), l.Value()...), r.Value()...)
		return at(iv, vals)
	}
	return CoalesceLeft(iv, l, r)
}
