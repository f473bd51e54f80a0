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
	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/dolthub/timeline/interval"
	"github.com/dolthub/timeline/timeline"
)

// Arithmetic supplies the operations Sum and Product need for a value type.
type Arithmetic[N any] interface {
	Zero() N
	Add(a, b N) N
	Mul(a, b N) N
}

// Native is the Arithmetic of Go's built-in numeric types.
type Native[N constraints.Integer | constraints.Float] struct{}

func (Native[N]) Zero() N {
	return 0
}

func (Native[N]) Add(a, b N) N {
	return a + b
}

func (Native[N]) Mul(a, b N) N {
	return a * b
}

// Decimal is the Arithmetic of decimal.Decimal.
type Decimal struct{}

func (Decimal) Zero() decimal.Decimal {
	return decimal.Zero
}

func (Decimal) Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

func (Decimal) Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

func operands[N any](a Arithmetic[N], l, r *timeline.Segment[N]) (N, N) {
	lv, rv := a.Zero(), a.Zero()
	if l != nil {
		lv = l.Value()
	}
	if r != nil {
		rv = r.Value()
	}
	return lv, rv
}

// Sum adds the two values. An absent side counts as zero.
func Sum[N any](a Arithmetic[N]) timeline.Combinator[N, N, N] {
	return func(iv interval.Interval, l, r *timeline.Segment[N]) *timeline.Segment[N] {
		if l == nil && r == nil {
			return nil
		}
		lv, rv := operands(a, l, r)
		return at(iv, a.Add(lv, rv))
	}
}

// Product multiplies the two values. An absent side counts as zero, so the
// product is zero wherever only one side has a value.
func Product[N any](a Arithmetic[N]) timeline.Combinator[N, N, N] {
	return func(iv interval.Interval, l, r *timeline.Segment[N]) *timeline.Segment[N] {
		if l == nil && r == nil {
			return nil
		}
		lv, rv := operands(a, l, r)
		return at(iv, a.Mul(lv, rv))
	}
}

// Min keeps the smaller value, the left one when they are equal.
func Min[V constraints.Ordered](iv interval.Interval, l, r *timeline.Segment[V]) *timeline.Segment[V] {
	return MinFunc(compareOrdered[V])(iv, l, r)
}

// Max keeps the greater value, the left one when they are equal.
func Max[V constraints.Ordered](iv interval.Interval, l, r *timeline.Segment[V]) *timeline.Segment[V] {
	return MaxFunc(compareOrdered[V])(iv, l, r)
}

// MinFunc is Min for values ordered by |cmp|, such as decimal.Decimal.Cmp.
func MinFunc[V any](cmp func(a, b V) int) timeline.Combinator[V, V, V] {
	return func(iv interval.Interval, l, r *timeline.Segment[V]) *timeline.Segment[V] {
		if l != nil && r != nil && cmp(r.Value(), l.Value()) < 0 {
			return keep(iv, r)
		}
		return CoalesceLeft(iv, l, r)
	}
}

// MaxFunc is Max for values ordered by |cmp|.
func MaxFunc[V any](cmp func(a, b V) int) timeline.Combinator[V, V, V] {
	return func(iv interval.Interval, l, r *timeline.Segment[V]) *timeline.Segment[V] {
		if l != nil && r != nil && cmp(r.Value(), l.Value()) > 0 {
			return keep(iv, r)
		}
		return CoalesceLeft(iv, l, r)
	}
}

func compareOrdered[V constraints.Ordered](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
