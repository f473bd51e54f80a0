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

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// OpenToken is the textual form of an absent bound.
const OpenToken = "-"

var (
	// MinDate stands in for an unbounded start.
	MinDate = civil.Date{Year: -4712, Month: time.January, Day: 1}
	// MaxDate stands in for an unbounded end. It matches the largest date an
	// Oracle DATE column accepts.
	MaxDate = civil.Date{Year: 9999, Month: time.December, Day: 31}

	epoch = civil.Date{Year: 1970, Month: time.January, Day: 1}
)

// Ordinal returns the number of days between the unix epoch and |d|. Day
// arithmetic that may step past a sentinel is done on ordinals, which cannot
// overflow for any date in [MinDate, MaxDate+1].
func Ordinal(d civil.Date) int64 {
	return int64(d.DaysSince(epoch))
}

// FromOrdinal is the inverse of Ordinal.
func FromOrdinal(n int64) civil.Date {
	return epoch.AddDays(int(n))
}

// NextDay returns the day after |d|.
func NextDay(d civil.Date) civil.Date {
	return d.AddDays(1)
}

// PrevDay returns the day before |d|.
func PrevDay(d civil.Date) civil.Date {
	return d.AddDays(-1)
}

// CompareDates returns -1, 0 or 1 as |a| is before, equal to or after |b|.
func CompareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

func minDate(a, b civil.Date) civil.Date {
	if a.Before(b) {
		return a
	}
	return b
}

func maxDate(a, b civil.Date) civil.Date {
	if a.After(b) {
		return a
	}
	return b
}

// IsSentinel returns whether |d| is one of the open-bound sentinels.
func IsSentinel(d civil.Date) bool {
	return d == MinDate || d == MaxDate
}

// FormatDate renders |d| in ISO form, or as OpenToken for a sentinel.
func FormatDate(d civil.Date) string {
	if IsSentinel(d) {
		return OpenToken
	}
	return d.String()
}

// ParseDate parses an ISO date. The empty string and OpenToken yield |open|.
func ParseDate(s string, open civil.Date) (civil.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == OpenToken {
		return open, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, ErrInvalidDate.Wrap(err, s)
	}
	return d, checkDate(d)
}

func checkDate(d civil.Date) error {
	if !d.IsValid() || d.Before(MinDate) || d.After(MaxDate) {
		return ErrInvalidDate.New(d.String())
	}
	return nil
}
