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

// Package interval implements closed calendar-date ranges and the algebra
// used to split, merge and compare them. Absent bounds are represented by the
// MinDate and MaxDate sentinels, so every Interval has two concrete dates.
package interval

import (
	"fmt"
	"slices"

	"cloud.google.com/go/civil"
)

// Interval is the closed date range [from, to]. The zero value is not a valid
// Interval; use one of the constructors.
type Interval struct {
	from civil.Date
	to   civil.Date
}

// New returns the interval [from, to].
func New(from, to civil.Date) (Interval, error) {
	if err := checkDate(from); err != nil {
		return Interval{}, err
	}
	if err := checkDate(to); err != nil {
		return Interval{}, err
	}
	if to.Before(from) {
		return Interval{}, ErrInvalidInterval.New(to, from)
	}
	return Interval{from: from, to: to}, nil
}

// Must is New for callers that know their bounds are valid. It panics otherwise.
func Must(from, to civil.Date) Interval {
	iv, err := New(from, to)
	if err != nil {
		panic(err)
	}
	return iv
}

// Open returns an interval whose nil bounds are replaced by the sentinels.
func Open(from, to *civil.Date) (Interval, error) {
	f, t := MinDate, MaxDate
	if from != nil {
		f = *from
	}
	if to != nil {
		t = *to
	}
	return New(f, t)
}

// Parse builds an interval from two ISO date tokens, where OpenToken or the
// empty string stands for an absent bound.
func Parse(from, to string) (Interval, error) {
	f, err := ParseDate(from, MinDate)
	if err != nil {
		return Interval{}, err
	}
	t, err := ParseDate(to, MaxDate)
	if err != nil {
		return Interval{}, err
	}
	return New(f, t)
}

// Day returns the single-day interval [d, d].
func Day(d civil.Date) Interval {
	return Must(d, d)
}

// Everything returns the interval spanning both sentinels.
func Everything() Interval {
	return Interval{from: MinDate, to: MaxDate}
}

func (iv Interval) From() civil.Date {
	return iv.from
}

func (iv Interval) To() civil.Date {
	return iv.to
}

// Overlaps returns whether the two closed ranges share at least one day.
func (iv Interval) Overlaps(other Interval) bool {
	return !iv.from.After(other.to) && !iv.to.Before(other.from)
}

// Contains returns whether |other| lies entirely within |iv|.
func (iv Interval) Contains(other Interval) bool {
	return !iv.from.After(other.from) && !iv.to.Before(other.to)
}

func (iv Interval) ContainsDate(d civil.Date) bool {
	return !iv.from.After(d) && !iv.to.Before(d)
}

// Abuts returns whether one interval ends the day before the other starts.
func (iv Interval) Abuts(other Interval) bool {
	return Ordinal(other.from)-Ordinal(iv.to) == 1 || Ordinal(iv.from)-Ordinal(other.to) == 1
}

// IsConnected returns whether the intervals overlap or abut.
func (iv Interval) IsConnected(other Interval) bool {
	return iv.Overlaps(other) || iv.Abuts(other)
}

// Overlap returns the intersection of the two intervals. The boolean is false
// when they do not overlap.
func (iv Interval) Overlap(other Interval) (Interval, bool) {
	if !iv.Overlaps(other) {
		return Interval{}, false
	}
	if iv == other {
		return iv, true
	}
	return Interval{from: maxDate(iv.from, other.from), to: minDate(iv.to, other.to)}, true
}

// Except returns the parts of |iv| not covered by |other|, in order. The
// result has no elements when |other| covers |iv|, and two when |other| lies
// strictly inside it.
func (iv Interval) Except(other Interval) []Interval {
	if !iv.Overlaps(other) {
		return []Interval{iv}
	}
	var res []Interval
	if iv.from.Before(other.from) {
		res = append(res, Interval{from: iv.from, to: minDate(iv.to, PrevDay(other.from))})
	}
	if iv.to.After(other.to) {
		res = append(res, Interval{from: maxDate(iv.from, NextDay(other.to)), to: iv.to})
	}
	return res
}

// Expand returns the union of two connected intervals. |adjacent| replaces the
// calendar adjacency test when given.
func (iv Interval) Expand(other Interval, adjacent ...Adjacency) (Interval, error) {
	adj := Abuts
	if len(adjacent) > 0 && adjacent[0] != nil {
		adj = adjacent[0]
	}
	if !iv.Overlaps(other) && !adj(iv, other) {
		return Interval{}, ErrNonAdjacentExpand.New(iv, other)
	}
	return Interval{from: minDate(iv.from, other.from), to: maxDate(iv.to, other.to)}, nil
}

// SplitAll partitions the union of the two intervals into maximal pieces, the
// overlap being a piece of its own. a.SplitAll(b) equals b.SplitAll(a).
func (iv Interval) SplitAll(other Interval) []Interval {
	if iv == other {
		return []Interval{iv}
	}
	res := iv.Except(other)
	res = append(res, other.Except(iv)...)
	if o, ok := iv.Overlap(other); ok {
		res = append(res, o)
	}
	slices.SortFunc(res, Interval.Compare)
	return res
}

// SplitThisBy is SplitAll without the pieces that belong only to |other|.
func (iv Interval) SplitThisBy(other Interval) []Interval {
	if iv == other {
		return []Interval{iv}
	}
	res := iv.Except(other)
	if o, ok := iv.Overlap(other); ok {
		res = append(res, o)
	}
	slices.SortFunc(res, Interval.Compare)
	return res
}

// Days returns the number of days in the interval, counting both bounds. It
// fails for intervals with a sentinel bound; use TotalDays if the count up to
// the sentinel is really wanted.
func (iv Interval) Days() (int64, error) {
	if !iv.IsBounded() {
		return 0, ErrUnsupportedOnOpenInterval.New(iv)
	}
	return iv.TotalDays(), nil
}

// TotalDays returns the inclusive day count without checking for sentinels.
// It is meant for closed intervals; for open ones it counts up to the
// sentinel dates.
func (iv Interval) TotalDays() int64 {
	return Ordinal(iv.to) - Ordinal(iv.from) + 1
}

func (iv Interval) IsOpenStart() bool {
	return iv.from == MinDate
}

func (iv Interval) IsOpenEnd() bool {
	return iv.to == MaxDate
}

// IsBounded returns whether neither bound is a sentinel.
func (iv Interval) IsBounded() bool {
	return !iv.IsOpenStart() && !iv.IsOpenEnd()
}

// Compare orders intervals by from date, then by to date.
func (iv Interval) Compare(other Interval) int {
	if c := CompareDates(iv.from, other.from); c != 0 {
		return c
	}
	return CompareDates(iv.to, other.to)
}

func (iv Interval) Less(other Interval) bool {
	return iv.Compare(other) < 0
}

func (iv Interval) Equal(other Interval) bool {
	return iv == other
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", FormatDate(iv.from), FormatDate(iv.to))
}
