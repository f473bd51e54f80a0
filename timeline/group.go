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

// GroupOverlapping builds a Timeline from segments that may overlap. Each
// sub-interval on which the set of covering segments is constant gets the
// values of those segments, in the order they were given. Empty segments
// cover days without adding a value.
func GroupOverlapping[V any](segs []Segment[V]) *Timeline[[]V] {
	if len(segs) == 0 {
		return Empty[[]V]()
	}

	type member struct {
		span
		idx int
	}
	members := make([]member, len(segs))
	for i, sp := range spans(segs) {
		members[i] = member{span: sp, idx: i}
	}
	slices.SortFunc(members, func(a, b member) int {
		switch {
		case a.lo < b.lo:
			return -1
		case a.lo > b.lo:
			return 1
		}
		return a.idx - b.idx
	})
	ss := make([]span, len(members))
	for i, m := range members {
		ss[i] = m.span
	}
	bps := breakpoints(ss, nil)

	var res []Segment[[]V]
	var active []member
	next := 0
	for k := 0; k+1 < len(bps); k++ {
		b := bps[k]
		for next < len(members) && members[next].lo <= b {
			active = append(active, members[next])
			next++
		}
		active = slices.DeleteFunc(active, func(m member) bool {
			return m.hi < b
		})
		if len(active) == 0 {
			continue
		}

		slices.SortFunc(active, func(x, y member) int {
			return x.idx - y.idx
		})
		var vals []V
		for _, m := range active {
			if segs[m.idx].present {
				vals = append(vals, segs[m.idx].value)
			}
		}
		iv := interval.Must(interval.FromOrdinal(b), interval.FromOrdinal(bps[k+1]-1))
		res = append(res, NewSegment(iv, vals))
	}
	return &Timeline[[]V]{segments: res, splitter: CopySplitter[[]V]}
}
