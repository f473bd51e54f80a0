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
	"fmt"
	"reflect"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/dolthub/timeline/interval"
)

// Segment is a value that holds for every day of an interval. A segment may
// carry no value at all; such segments mark ranges that are known to be empty.
type Segment[V any] struct {
	interval interval.Interval
	value    V
	present  bool
}

func NewSegment[V any](iv interval.Interval, v V) Segment[V] {
	return Segment[V]{interval: iv, value: v, present: true}
}

// EmptySegment returns a segment over |iv| without a value.
func EmptySegment[V any](iv interval.Interval) Segment[V] {
	return Segment[V]{interval: iv}
}

func (s Segment[V]) Interval() interval.Interval {
	return s.interval
}

func (s Segment[V]) From() civil.Date {
	return s.interval.From()
}

func (s Segment[V]) To() civil.Date {
	return s.interval.To()
}

// Value returns the segment's value, or the zero V for an empty segment.
func (s Segment[V]) Value() V {
	return s.value
}

func (s Segment[V]) HasValue() bool {
	return s.present
}

// WithInterval returns a copy of |s| covering |iv|.
func (s Segment[V]) WithInterval(iv interval.Interval) Segment[V] {
	s.interval = iv
	return s
}

func (s Segment[V]) Overlaps(other Segment[V]) bool {
	return s.interval.Overlaps(other.interval)
}

// Compare orders segments by interval only. Two segments with equal intervals
// compare equal whatever their values.
func (s Segment[V]) Compare(other Segment[V]) int {
	return s.interval.Compare(other.interval)
}

// Equal compares both interval and value, see ValuesEqual.
func (s Segment[V]) Equal(other Segment[V]) bool {
	if s.interval != other.interval || s.present != other.present {
		return false
	}
	return !s.present || ValuesEqual(s.value, other.value)
}

func (s Segment[V]) String() string {
	if !s.present {
		return fmt.Sprintf("Segment<%s>", s.interval)
	}
	return fmt.Sprintf("Segment<%s, %v>", s.interval, s.value)
}

func segmentLess[V any](a, b Segment[V]) bool {
	return a.interval.Less(b.interval)
}

// ValuesEqual compares two segment values. Decimals are compared numerically,
// so 1.0 equals 1.00. Other values with an Equal(V) bool method are compared
// with it, and everything else is compared with reflect.DeepEqual.
func ValuesEqual[V any](a, b V) bool {
	if da, ok := any(a).(decimal.Decimal); ok {
		if db, ok := any(b).(decimal.Decimal); ok {
			return da.Equal(db)
		}
		return false
	}
	if eq, ok := any(a).(interface{ Equal(V) bool }); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
