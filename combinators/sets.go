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

package combinators

import (
	"github.com/dolthub/timeline/interval"
	"github.com/dolthub/timeline/timeline"
)

// Set is a set of comparable values.
type Set[K comparable] map[K]struct{}

func NewSet[K comparable](keys ...K) Set[K] {
	s := make(Set[K], len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s Set[K]) Contains(k K) bool {
	_, ok := s[k]
	return ok
}

func (s Set[K]) filter(keep func(K) bool) Set[K] {
	res := make(Set[K])
	for k := range s {
		if keep(k) {
			res[k] = struct{}{}
		}
	}
	return res
}

// SetUnion returns every element of either set.
func SetUnion[K comparable](iv interval.Interval, l, r *timeline.Segment[Set[K]]) *timeline.Segment[Set[K]] {
	if l == nil || r == nil {
		return CoalesceLeft(iv, l, r)
	}
	res := make(Set[K], len(l.Value())+len(r.Value()))
	for k := range l.Value() {
		res[k] = struct{}{}
	}
	for k := range r.Value() {
		res[k] = struct{}{}
	}
	return at(iv, res)
}

// SetIntersection returns the elements in both sets.
func SetIntersection[K comparable](iv interval.Interval, l, r *timeline.Segment[Set[K]]) *timeline.Segment[Set[K]] {
	if l == nil || r == nil {
		return CoalesceLeft(iv, l, r)
	}
	return at(iv, l.Value().filter(r.Value().Contains))
}

// SetDifference returns the elements of the left set missing from the right.
func SetDifference[K comparable](iv interval.Interval, l, r *timeline.Segment[Set[K]]) *timeline.Segment[Set[K]] {
	if l == nil || r == nil {
		return CoalesceLeft(iv, l, r)
	}
	return at(iv, l.Value().filter(func(k K) bool {
		return !r.Value().Contains(k)
	}))
}
