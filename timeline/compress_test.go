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
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/timeline/interval"
)

func TestCompress(t *testing.T) {
	tl := mustNew(t, seg(0, 2, "a"), seg(3, 5, "a"), seg(6, 6, "b"), seg(8, 9, "b"), seg(10, 12, "b"))
	assert.Equal(t, []Segment[string]{seg(0, 5, "a"), seg(6, 6, "b"), seg(8, 12, "b")}, tl.Compress().Segments())
	assert.True(t, Empty[string]().Compress().IsEmpty())
}

func TestCompressDecimalValues(t *testing.T) {
	tl := mustNew(t, seg(0, 2, decimal.RequireFromString("1.0")), seg(3, 5, decimal.RequireFromString("1.00")))
	res := tl.Compress()
	require.Equal(t, 1, res.Size())
	assert.Equal(t, iv(0, 5), res.Segments()[0].Interval())
	assert.Equal(t, "1", res.Segments()[0].Value().String())
}

func TestCompressEmptySegments(t *testing.T) {
	tl := mustNew(t, EmptySegment[int](iv(0, 2)), EmptySegment[int](iv(3, 4)), seg(5, 6, 0))
	assert.Equal(t, []Segment[int]{EmptySegment[int](iv(0, 4)), seg(5, 6, 0)}, tl.Compress().Segments())
}

func TestCompressWith(t *testing.T) {
	// 2026-01-02 is a Friday, 2026-01-05 the following Monday.
	tl := mustNew(t, seg(0, 1, "ab"), seg(4, 5, "AB"), seg(7, 7, "ab"))

	sameLetters := func(a, b string) bool {
		return strings.EqualFold(a, b)
	}
	joined := func(iv interval.Interval, l, r *Segment[string]) *Segment[string] {
		s := NewSegment(iv, l.Value()+"+"+r.Value())
		return &s
	}

	assert.Equal(t, []Segment[string]{seg(0, 1, "ab"), seg(4, 5, "AB"), seg(7, 7, "ab")}, tl.CompressWith(nil, sameLetters, joined).Segments())
	assert.Equal(t, []Segment[string]{seg(0, 5, "ab+AB"), seg(7, 7, "ab")}, tl.CompressWith(interval.WeekdayAbuts, sameLetters, joined).Segments())
	assert.Equal(t, []Segment[string]{seg(0, 1, "ab"), seg(4, 5, "AB"), seg(7, 7, "ab")}, tl.CompressWith(interval.WeekdayAbuts, nil, nil).Segments())
}

func TestCompressIsIdempotent(t *testing.T) {
	for i := 0; i < 200; i++ {
		var segs []Segment[int]
		from := 0
		for j := src.Intn(10); j > 0; j-- {
			to := from + src.Intn(3)
			segs = append(segs, seg(from, to, src.Intn(2)))
			from = to + 1 + src.Intn(2)
		}
		once := mustNew(t, segs...).Compress()
		assert.True(t, once.Equal(once.Compress()))
		res := once.Segments()
		for k := 1; k < len(res); k++ {
			assert.False(t, res[k-1].Interval().Abuts(res[k].Interval()) && res[k-1].Equal(res[k].WithInterval(res[k-1].Interval())))
		}
	}
}

func TestCompressor(t *testing.T) {
	c := NewCompressor[string](nil, nil, nil)
	require.NoError(t, c.Accept(seg(0, 1, "a")))
	require.NoError(t, c.Accept(seg(2, 3, "a")))
	require.NoError(t, c.Accept(seg(5, 6, "a")))
	assert.Equal(t, []Segment[string]{seg(0, 3, "a"), seg(5, 6, "a")}, c.Timeline().Segments())

	err := c.Accept(seg(4, 4, "a"))
	assert.True(t, ErrUnorderedSegments.Is(err))

	err = c.Merge(NewCompressor[string](nil, nil, nil))
	assert.True(t, ErrCompressMerge.Is(err))
}

func TestCompressorTimelineIsStable(t *testing.T) {
	c := NewCompressor[string](nil, nil, nil)
	require.NoError(t, c.Accept(seg(0, 2, "a")))
	first := c.Timeline()

	require.NoError(t, c.Accept(seg(3, 5, "a")))
	second := c.Timeline()

	assert.Equal(t, []Segment[string]{seg(0, 2, "a")}, first.Segments())
	assert.Equal(t, []Segment[string]{seg(0, 5, "a")}, second.Segments())
}
