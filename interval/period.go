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
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Period is a calendar amount of time. Years and months are applied before
// days, and a month step that lands past the end of the target month is
// clamped to its last day (Jan 31 + 1 month = Feb 28/29).
type Period struct {
	Years  int
	Months int
	Days   int
}

func Days(n int) Period {
	return Period{Days: n}
}

func Weeks(n int) Period {
	return Period{Days: 7 * n}
}

func Months(n int) Period {
	return Period{Months: n}
}

func Years(n int) Period {
	return Period{Years: n}
}

// IsPositive returns whether adding the period always moves a date forward.
func (p Period) IsPositive() bool {
	return p.Years >= 0 && p.Months >= 0 && p.Days >= 0 && (p.Years+p.Months+p.Days) > 0
}

// AddTo returns |d| moved forward by the period.
func (p Period) AddTo(d civil.Date) civil.Date {
	if p.Years != 0 || p.Months != 0 {
		m := int(d.Month) - 1 + p.Months + 12*p.Years
		y := d.Year + floorDiv(m, 12)
		month := time.Month(m - 12*floorDiv(m, 12) + 1)
		day := d.Day
		if last := daysIn(y, month); day > last {
			day = last
		}
		d = civil.Date{Year: y, Month: month, Day: day}
	}
	return d.AddDays(p.Days)
}

// SubtractFrom returns |d| moved back by the period, with the same month-end
// clamping as AddTo.
func (p Period) SubtractFrom(d civil.Date) civil.Date {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}.AddTo(d)
}

// WithPeriodAfter returns the interval from |start| to |start| plus |p|. Both
// bounds are included, so Days(7) yields eight days.
func WithPeriodAfter(start civil.Date, p Period) (Interval, error) {
	return New(start, p.AddTo(start))
}

// WithPeriodBefore returns the interval from |end| minus |p| to |end|.
func WithPeriodBefore(p Period, end civil.Date) (Interval, error) {
	return New(p.SubtractFrom(end), end)
}

func (p Period) String() string {
	var sb strings.Builder
	sb.WriteString("P")
	if p.Years != 0 {
		sb.WriteString(strconv.Itoa(p.Years) + "Y")
	}
	if p.Months != 0 {
		sb.WriteString(strconv.Itoa(p.Months) + "M")
	}
	if p.Days != 0 || (p.Years == 0 && p.Months == 0) {
		sb.WriteString(strconv.Itoa(p.Days) + "D")
	}
	return sb.String()
}

// ParsePeriod parses the short forms "10d", "2w", "3m" and "1y".
func ParsePeriod(s string) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 {
		return Period{}, ErrInvalidPeriod.New(s)
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n <= 0 {
		return Period{}, ErrInvalidPeriod.New(s)
	}
	switch s[len(s)-1] {
	case 'd':
		return Days(n), nil
	case 'w':
		return Weeks(n), nil
	case 'm':
		return Months(n), nil
	case 'y':
		return Years(n), nil
	}
	return Period{}, ErrInvalidPeriod.New(s)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
