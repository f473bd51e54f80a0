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

package main

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/timeline/combinators"
	"github.com/dolthub/timeline/timeline"
	"github.com/dolthub/timeline/timelinejson"
)

var ErrUnknownCombinator = errors.NewKind("unknown combinator '%s', expected one of %v")

// combineFunc decodes two JSON timelines, combines them and encodes the
// result.
type combineFunc func(left, right []byte, style timeline.JoinStyle) ([]byte, error)

func combineAs[V, O any](c timeline.Combinator[V, V, O]) combineFunc {
	return func(left, right []byte, style timeline.JoinStyle) ([]byte, error) {
		l, err := timelinejson.Unmarshal[V](left)
		if err != nil {
			return nil, err
		}
		r, err := timelinejson.Unmarshal[V](right)
		if err != nil {
			return nil, err
		}
		res, err := timeline.Combine(l, r, c, style)
		if err != nil {
			return nil, err
		}
		return timelinejson.Marshal(res)
	}
}

var namedCombinators = map[string]combineFunc{
	"left":           combineAs[any, any](combinators.LeftOnly[any, any]),
	"right":          combineAs[any, any](combinators.RightOnly[any, any]),
	"coalesce-left":  combineAs[any, any](combinators.CoalesceLeft[any]),
	"coalesce-right": combineAs[any, any](combinators.CoalesceRight[any]),
	"both":           combineAs[any, []any](combinators.BothValues[any, any]),
	"concat":         combineAs[string, string](combinators.Concat),
	"sum":            combineAs[decimal.Decimal, decimal.Decimal](combinators.Sum[decimal.Decimal](combinators.Decimal{})),
	"product":        combineAs[decimal.Decimal, decimal.Decimal](combinators.Product[decimal.Decimal](combinators.Decimal{})),
	"min":            combineAs[decimal.Decimal, decimal.Decimal](combinators.MinFunc(decimal.Decimal.Cmp)),
	"max":            combineAs[decimal.Decimal, decimal.Decimal](combinators.MaxFunc(decimal.Decimal.Cmp)),
}

func lookupCombinator(name string) (combineFunc, error) {
	c, ok := namedCombinators[name]
	if !ok {
		return nil, ErrUnknownCombinator.New(name, slices.Sorted(maps.Keys(namedCombinators)))
	}
	return c, nil
}
