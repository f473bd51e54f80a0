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

package interval

import "time"

// Adjacency decides whether two non-overlapping intervals follow each other
// without a meaningful gap. Implementations must be symmetric.
type Adjacency func(a, b Interval) bool

// Abuts is calendar-day adjacency.
func Abuts(a, b Interval) bool {
	return a.Abuts(b)
}

// WeekdayAbuts treats intervals as adjacent when the days between them are
// all Saturdays or Sundays, so a period ending on a Friday abuts one starting
// the following Monday.
func WeekdayAbuts(a, b Interval) bool {
	if a.Overlaps(b) {
		return false
	}
	if b.to.Before(a.from) {
		a, b = b, a
	}
	gap := Ordinal(b.from) - Ordinal(a.to) - 1
	if gap == 0 {
		return true
	}
	if gap > 2 {
		return false
	}
	for d := NextDay(a.to); d.Before(b.from); d = NextDay(d) {
		if !isWeekend(d.In(time.UTC).Weekday()) {
			return false
		}
	}
	return true
}

func isWeekend(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}
