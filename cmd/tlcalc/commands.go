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
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/attic-labs/kingpin"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/dolthub/timeline/interval"
	"github.com/dolthub/timeline/timeline"
	"github.com/dolthub/timeline/timelinejson"
)

func tlcalcShow(app *kingpin.Application, e *env) (*kingpin.CmdClause, kingpinHandler) {
	show := app.Command("show", "prints the segments of a timeline with their day counts")
	file := show.Arg("file", "JSON timeline file").Required().String()

	return show, func(string) error {
		tl, err := e.readTimeline(*file)
		if err != nil {
			return err
		}
		return e.show(tl)
	}
}

func tlcalcCompress(app *kingpin.Application, e *env) (*kingpin.CmdClause, kingpinHandler) {
	compress := app.Command("compress", "merges adjacent segments with equal values")
	file := compress.Arg("file", "JSON timeline file").Required().String()

	return compress, func(string) error {
		tl, err := e.readTimeline(*file)
		if err != nil {
			return err
		}
		res := tl.Compress()
		e.log.WithField("file", *file).Debugf("compressed %d segments into %d", tl.Size(), res.Size())
		return e.writeTimeline(res)
	}
}

func tlcalcCombine(app *kingpin.Application, e *env) (*kingpin.CmdClause, kingpinHandler) {
	combine := app.Command("combine", "combines two timelines")
	left := combine.Arg("left", "JSON timeline file").Required().String()
	right := combine.Arg("right", "JSON timeline file").Required().String()
	style := combine.Flag("style", "join style: cross, inner, left, right or disjoint").String()
	name := combine.Flag("combinator", "combinator: left, right, coalesce-left, coalesce-right, both, concat, sum, product, min or max").String()

	return combine, func(string) error {
		js := e.cfg.JoinStyle()
		if *style != "" {
			var err error
			if js, err = timeline.ParseJoinStyle(*style); err != nil {
				return err
			}
		}
		combinatorName := e.cfg.Combinator()
		if *name != "" {
			combinatorName = *name
		}
		c, err := lookupCombinator(combinatorName)
		if err != nil {
			return err
		}

		var l, r []byte
		eg, _ := errgroup.WithContext(context.Background())
		eg.Go(func() (err error) {
			l, err = e.readInput(*left)
			return err
		})
		eg.Go(func() (err error) {
			r, err = e.readInput(*right)
			return err
		})
		if err := eg.Wait(); err != nil {
			return err
		}
		e.log.WithField("style", js).WithField("combinator", combinatorName).Debug("combining")
		data, err := c(l, r, js)
		if err != nil {
			return err
		}
		return e.write(data)
	}
}

func tlcalcSplit(app *kingpin.Application, e *env) (*kingpin.CmdClause, kingpinHandler) {
	split := app.Command("split", "cuts a timeline into regular periods")
	file := split.Arg("file", "JSON timeline file").Required().String()
	start := split.Flag("start", "first day of the first period").Required().String()
	end := split.Flag("end", "last day a period may start on").Required().String()
	period := split.Flag("period", "period length such as 1y, 3m, 2w or 10d").Required().String()

	return split, func(string) error {
		from, err := interval.ParseDate(*start, interval.MinDate)
		if err != nil {
			return err
		}
		to, err := interval.ParseDate(*end, interval.MaxDate)
		if err != nil {
			return err
		}
		p, err := interval.ParsePeriod(*period)
		if err != nil {
			return err
		}

		tl, err := e.readTimeline(*file)
		if err != nil {
			return err
		}
		res, err := tl.SplitAtRegular(from, to, p)
		if err != nil {
			return err
		}
		return e.writeTimeline(res)
	}
}

// readInput returns the JSON timeline stored in |path|. With a --path set,
// only the matching element of the document is returned.
func (e *env) readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	if e.path == "" {
		return data, nil
	}
	res := gjson.GetBytes(data, e.path)
	if !res.Exists() {
		return nil, errors.Errorf("path '%s' not found in %s", e.path, path)
	}
	return []byte(res.Raw), nil
}

func (e *env) readTimeline(path string) (*timeline.Timeline[any], error) {
	data, err := e.readInput(path)
	if err != nil {
		return nil, err
	}
	tl, err := timelinejson.Unmarshal[any](data)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode %s", path)
	}
	e.log.WithField("file", path).Debugf("read %d segments", tl.Size())
	return tl, nil
}

func (e *env) writeTimeline(tl *timeline.Timeline[any]) error {
	data, err := timelinejson.Marshal(tl)
	if err != nil {
		return err
	}
	return e.write(data)
}

func (e *env) write(data []byte) error {
	if e.cfg.Indent() {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	_, err := fmt.Fprintln(e.out, string(data))
	return err
}

func (e *env) show(tl *timeline.Timeline[any]) error {
	ivColor := color.New(color.FgCyan).SprintFunc()
	gapColor := color.New(color.FgYellow).SprintFunc()

	var total int64
	bounded := true
	for _, s := range tl.Segments() {
		value := "(empty)"
		if s.HasValue() {
			b, err := json.Marshal(s.Value())
			if err != nil {
				return err
			}
			value = string(b)
		}

		days := "open"
		if n, err := s.Interval().Days(); err == nil {
			total += n
			days = humanize.Comma(n) + " " + plural(n, "day")
		} else {
			bounded = false
		}
		fmt.Fprintf(e.out, "%s  %s  %s\n", ivColor(fmt.Sprintf("%-26s", s.Interval())), value, days)
	}

	summary := humanize.Comma(int64(tl.Size())) + " " + plural(int64(tl.Size()), "segment")
	if bounded {
		summary += ", " + humanize.Comma(total) + " " + plural(total, "day")
	} else {
		summary += ", unbounded"
	}
	if before, after, found := tl.FirstDiscontinuity(); found {
		summary += ", " + gapColor(fmt.Sprintf("gap between %s and %s", before, after))
	} else {
		summary += ", continuous"
	}
	_, err := fmt.Fprintln(e.out, summary)
	return err
}

func plural(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
