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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/timeline/interval"
)

func sum(iv interval.Interval, l, r *Segment[float64]) *Segment[float64] {
	v := 0.0
	if l != nil {
		v += l.Value()
	}
	if r != nil {
		v += r.Value()
	}
	s := NewSegment(iv, v)
	return &s
}

func TestCombine(t *testing.T) {
	a := mustNew(t, seg(0, 5, "A"), seg(7, 9, "A"))
	b := mustNew(t, seg(3, 6, "B"))

	tests := []struct {
		style  JoinStyle
		ab, ba []Segment[string]
	}{
		{
			CrossJoin,
			[]Segment[string]{seg(0, 2, "A"), seg(3, 5, "AB"), seg(6, 6, "B"), seg(7, 9, "A")},
			[]Segment[string]{seg(0, 2, "A"), seg(3, 5, "BA"), seg(6, 6, "B"), seg(7, 9, "A")},
		},
		{
			InnerJoin,
			[]Segment[string]{seg(3, 5, "AB")},
			[]Segment[string]{seg(3, 5, "BA")},
		},
		{
			Disjoint,
			[]Segment[string]{seg(0, 2, "A"), seg(7, 9, "A")},
			[]Segment[string]{seg(6, 6, "B")},
		},
		{
			LeftJoin,
			[]Segment[string]{seg(0, 2, "A"), seg(3, 5, "AB"), seg(7, 9, "A")},
			[]Segment[string]{seg(3, 5, "BA"), seg(6, 6, "B")},
		},
		{
			RightJoin,
			[]Segment[string]{seg(3, 5, "AB"), seg(6, 6, "B")},
			[]Segment[string]{seg(0, 2, "A"), seg(3, 5, "BA"), seg(7, 9, "A")},
		},
	}

	for _, test := range tests {
		t.Run(test.style.String(), func(t *testing.T) {
			res, err := Combine(a, b, concat, test.style)
			require.NoError(t, err)
			assert.Equal(t, test.ab, res.Segments())

			res, err = Combine(b, a, concat, test.style)
			require.NoError(t, err)
			assert.Equal(t, test.ba, res.Segments())
		})
	}
}

func TestCombineShortcuts(t *testing.T) {
	a := mustNew(t, seg(0, 5, "A"), seg(7, 9, "A"))
	b := mustNew(t, seg(3, 6, "B"))

	res, err := Intersection(a, b, concat)
	require.NoError(t, err)
	assert.Equal(t, []Segment[string]{seg(3, 5, "AB")}, res.Segments())

	union, err := Union(a, b, concat)
	require.NoError(t, err)
	cross, err := CrossJoinWith(a, b, concat)
	require.NoError(t, err)
	assert.True(t, union.Equal(cross))
	assert.Equal(t, 4, union.Size())

	res, err = DisjointWith(b, a, concat)
	require.NoError(t, err)
	assert.Equal(t, []Segment[string]{seg(6, 6, "B")}, res.Segments())

	assert.Equal(t, []Segment[string]{seg(0, 2, "A"), seg(7, 9, "A")}, Except(a, b).Segments())
	assert.True(t, Intersects(a, b))
	assert.False(t, Intersects(a, mustNew(t, seg(6, 6, 1))))
	assert.False(t, Intersects(a, Empty[int]()))
}

func TestCombineSegment(t *testing.T) {
	a := mustNew(t, seg(0, 5, "A"), seg(7, 9, "A"))

	res, err := CombineSegment(a, seg(4, 8, "B"), concat, CrossJoin)
	require.NoError(t, err)
	assert.Equal(t, []Segment[string]{seg(0, 3, "A"), seg(4, 5, "AB"), seg(6, 6, "B"), seg(7, 8, "AB"), seg(9, 9, "A")}, res.Segments())

	res, err = CombineSegment(a, seg(4, 8, "B"), concat, InnerJoin)
	require.NoError(t, err)
	assert.Equal(t, []Segment[string]{seg(4, 5, "AB"), seg(7, 8, "AB")}, res.Segments())
}

func TestCombineSum(t *testing.T) {
	a := mustNew(t, seg(0, 5, 15.0), seg(7, 9, 15.0))
	b := mustNew(t, seg(3, 6, 20.0))

	res, err := Combine(a, b, sum, CrossJoin)
	require.NoError(t, err)
	assert.Equal(t, []Segment[float64]{seg(0, 2, 15.0), seg(3, 5, 35.0), seg(6, 6, 20.0), seg(7, 9, 15.0)}, res.Segments())
}

func TestCombineChangesType(t *testing.T) {
	counts := mustNew(t, seg(0, 9, 2))
	names := mustNew(t, seg(5, 14, "x"))
	repeat := func(iv interval.Interval, l *Segment[int], r *Segment[string]) *Segment[[]string] {
		s := NewSegment(iv, slices.Repeat([]string{r.Value()}, l.Value()))
		return &s
	}

	res, err := Intersection(counts, names, repeat)
	require.NoError(t, err)
	assert.Equal(t, []Segment[[]string]{seg(5, 9, []string{"x", "x"})}, res.Segments())
}

func TestCombineOpenIntervals(t *testing.T) {
	a := mustNew(t, NewSegment(interval.Must(interval.MinDate, day(5)), "x"))
	b := mustNew(t, NewSegment(interval.Must(day(3), interval.MaxDate), "y"))

	res, err := Combine(a, b, concat, CrossJoin)
	require.NoError(t, err)
	assert.Equal(t, []Segment[string]{
		NewSegment(interval.Must(interval.MinDate, day(2)), "x"),
		seg(3, 5, "xy"),
		NewSegment(interval.Must(day(6), interval.MaxDate), "y"),
	}, res.Segments())

	all := Single(interval.Everything(), "z")
	res, err = Combine(all, b, concat, Disjoint)
	require.NoError(t, err)
	assert.Equal(t, []Segment[string]{NewSegment(interval.Must(interval.MinDate, day(2)), "z")}, res.Segments())
}

func TestCombineWithEmptySide(t *testing.T) {
	a := mustNew(t, seg(0, 5, 4.0), seg(7, 9, 2.0))
	empty := Empty[float64]()

	calls := 0
	product := func(iv interval.Interval, l, r *Segment[float64]) *Segment[float64] {
		calls++
		v := 0.0
		if l != nil && r != nil {
			v = l.Value() * r.Value()
		}
		s := NewSegment(iv, v)
		return &s
	}

	res, err := Combine(a, empty, product, LeftJoin)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []Segment[float64]{seg(0, 5, 0.0), seg(7, 9, 0.0)}, res.Segments())

	res, err = Combine(empty, a, product, RightJoin)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Size())

	res, err = Combine(a, empty, product, InnerJoin)
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())

	res, err = Combine(empty, empty, product, CrossJoin)
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())
}

func TestCombineNilDropsInterval(t *testing.T) {
	a := mustNew(t, seg(0, 5, "A"), seg(7, 9, "A"))
	b := mustNew(t, seg(3, 6, "B"))
	onlyShared := func(iv interval.Interval, l, r *Segment[string]) *Segment[string] {
		if l == nil || r == nil {
			return nil
		}
		return concat(iv, l, r)
	}

	res, err := Combine(a, b, onlyShared, CrossJoin)
	require.NoError(t, err)
	assert.Equal(t, []Segment[string]{seg(3, 5, "AB")}, res.Segments())
}

func TestCombineRejectsOverlappingResults(t *testing.T) {
	a := mustNew(t, seg(0, 5, "A"))
	b := mustNew(t, seg(3, 6, "B"))
	wide := func(_ interval.Interval, _, _ *Segment[string]) *Segment[string] {
		s := seg(0, 6, "x")
		return &s
	}

	_, err := Combine(a, b, wide, CrossJoin)
	require.Error(t, err)
	assert.True(t, ErrOverlapWithoutCombinator.Is(err))
}

func TestCrossJoinMethod(t *testing.T) {
	a := mustNew(t, seg(0, 5, "A"))
	b := mustNew(t, seg(3, 8, "B"))
	assert.Equal(t, []Segment[string]{seg(0, 2, "A"), seg(3, 5, "A"), seg(6, 8, "B")}, a.CrossJoin(b).Segments())
	assert.Equal(t, []Segment[string]{seg(0, 2, "A"), seg(3, 5, "B"), seg(6, 8, "B")}, b.CrossJoin(a).Segments())
	assert.Same(t, a, a.CrossJoin(Empty[string]()))
	assert.Same(t, b, Empty[string]().CrossJoin(b))
}

func TestIntervalWindows(t *testing.T) {
	tl := mustNew(t, seg(0, 5, "A"), seg(7, 9, "B"), seg(12, 20, "C"))
	assert.Equal(t, []Segment[string]{seg(4, 5, "A"), seg(7, 9, "B"), seg(12, 13, "C")}, tl.IntersectInterval(iv(4, 13)).Segments())
	assert.Equal(t, []Segment[string]{seg(0, 3, "A"), seg(14, 20, "C")}, tl.DisjointInterval(iv(4, 13)).Segments())
	assert.True(t, tl.IntersectInterval(iv(30, 40)).IsEmpty())
	assert.True(t, tl.Equal(tl.DisjointInterval(iv(30, 40))))
}

// referenceCombine computes a combine by comparing every interval against
// every other one.
func referenceCombine[L, R, O any](left *Timeline[L], right *Timeline[R], c Combinator[L, R, O], style JoinStyle) *Timeline[O] {
	var pieces []interval.Interval
	for _, next := range append(left.Intervals(), right.Intervals()...) {
		var res []interval.Interval
		rest := []interval.Interval{next}
		for _, p := range pieces {
			if !p.Overlaps(next) {
				res = append(res, p)
				continue
			}
			res = append(res, p.SplitThisBy(next)...)
			var remaining []interval.Interval
			for _, r := range rest {
				remaining = append(remaining, r.Except(p)...)
			}
			rest = remaining
		}
		pieces = append(res, rest...)
	}
	slices.SortFunc(pieces, interval.Interval.Compare)

	var segs []Segment[O]
	for _, p := range pieces {
		var l *Segment[L]
		for _, s := range left.segments {
			if s.interval.Contains(p) {
				ls := s.WithInterval(p)
				l = &ls
			}
		}
		var r *Segment[R]
		for _, s := range right.segments {
			if s.interval.Contains(p) {
				rs := s.WithInterval(p)
				r = &rs
			}
		}
		if !style.Accept(l != nil, r != nil) {
			continue
		}
		if out := c(p, l, r); out != nil {
			segs = append(segs, *out)
		}
	}
	return &Timeline[O]{segments: segs, splitter: CopySplitter[O]}
}

func randomTimeline(t *testing.T, name string) *Timeline[string] {
	var segs []Segment[string]
	from := src.Intn(5)
	for i := src.Intn(6); i > 0; i-- {
		to := from + src.Intn(6)
		segs = append(segs, seg(from, to, fmt.Sprintf("%s%d", name, i)))
		from = to + 1 + src.Intn(3)
	}
	return mustNew(t, segs...)
}

func describe(iv interval.Interval, l, r *Segment[string]) *Segment[string] {
	v := "L:-"
	if l != nil {
		v = "L:" + l.Value()
	}
	if r != nil {
		v += " R:" + r.Value()
	} else {
		v += " R:-"
	}
	s := NewSegment(iv, v)
	return &s
}

func TestCombineMatchesReference(t *testing.T) {
	for i := 0; i < 500; i++ {
		left, right := randomTimeline(t, "l"), randomTimeline(t, "r")
		for _, style := range JoinStyles {
			res, err := Combine(left, right, describe, style)
			require.NoError(t, err)
			expected := referenceCombine(left, right, describe, style)
			require.Equal(t, expected.Segments(), res.Segments(), "%s\n%s\n%s", style, left, right)
		}
	}
}

func TestCrossJoinCoversBothSides(t *testing.T) {
	for i := 0; i < 200; i++ {
		left, right := randomTimeline(t, "l"), randomTimeline(t, "r")
		res, err := Union(left, right, describe)
		require.NoError(t, err)

		for _, side := range []*Timeline[string]{left, right} {
			for _, s := range side.segments {
				for d := s.From(); !d.After(s.To()); d = d.AddDays(1) {
					_, ok := res.Segment(interval.Day(d))
					require.True(t, ok)
				}
			}
		}
		for _, s := range res.segments {
			assert.True(t, Intersects(Single(s.interval, 0), left) || Intersects(Single(s.interval, 0), right))
		}
	}
}
