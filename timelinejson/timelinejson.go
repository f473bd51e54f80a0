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

// Package timelinejson reads and writes intervals, segments and timelines as
// JSON arrays. An interval is ["2026-01-01", "-"], where "-" stands for an
// open bound. A segment adds its value as a third element, or leaves it out
// when it has none, and a timeline is an array of segments. A null value is
// read as no value.
package timelinejson

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/timeline/interval"
	"github.com/dolthub/timeline/timeline"
)

var ErrMalformedSegment = errors.NewKind("malformed segment %s: expected [from, to] or [from, to, value]")

// Interval wraps an interval.Interval with its JSON encoding.
type Interval struct {
	interval.Interval
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{interval.FormatDate(iv.From()), interval.FormatDate(iv.To())})
}

func (iv *Interval) UnmarshalJSON(data []byte) error {
	var bounds []string
	if err := json.Unmarshal(data, &bounds); err != nil {
		return err
	}
	if len(bounds) != 2 {
		return ErrMalformedSegment.New(string(data))
	}
	parsed, err := interval.Parse(bounds[0], bounds[1])
	if err != nil {
		return err
	}
	iv.Interval = parsed
	return nil
}

// Segment wraps a timeline.Segment with its JSON encoding.
type Segment[V any] struct {
	timeline.Segment[V]
}

func (s Segment[V]) MarshalJSON() ([]byte, error) {
	elems := []any{interval.FormatDate(s.From()), interval.FormatDate(s.To())}
	if s.HasValue() {
		elems = append(elems, s.Value())
	}
	return json.Marshal(elems)
}

func (s *Segment[V]) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return ErrMalformedSegment.Wrap(err, string(data))
	}
	if len(elems) != 2 && len(elems) != 3 {
		return ErrMalformedSegment.New(string(data))
	}

	var from, to string
	if err := json.Unmarshal(elems[0], &from); err != nil {
		return ErrMalformedSegment.Wrap(err, string(data))
	}
	if err := json.Unmarshal(elems[1], &to); err != nil {
		return ErrMalformedSegment.Wrap(err, string(data))
	}
	iv, err := interval.Parse(from, to)
	if err != nil {
		return err
	}

	if len(elems) == 2 || isNull(elems[2]) {
		s.Segment = timeline.EmptySegment[V](iv)
		return nil
	}
	var v V
	if err := json.Unmarshal(elems[2], &v); err != nil {
		return ErrMalformedSegment.Wrap(err, string(data))
	}
	s.Segment = timeline.NewSegment(iv, v)
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// Timeline wraps a timeline.Timeline with its JSON encoding. A nil Timeline
// encodes as an empty array.
type Timeline[V any] struct {
	*timeline.Timeline[V]
}

func (t Timeline[V]) MarshalJSON() ([]byte, error) {
	segs := []Segment[V]{}
	if t.Timeline != nil {
		for _, s := range t.Segments() {
			segs = append(segs, Segment[V]{s})
		}
	}
	return json.Marshal(segs)
}

func (t *Timeline[V]) UnmarshalJSON(data []byte) error {
	tl, err := Unmarshal[V](data)
	if err != nil {
		return err
	}
	t.Timeline = tl
	return nil
}

// Marshal encodes |t| as an array of segments.
func Marshal[V any](t *timeline.Timeline[V]) ([]byte, error) {
	return Timeline[V]{t}.MarshalJSON()
}

// Unmarshal decodes an array of segments into a Timeline built with |opts|.
// Segments may come in any order; overlapping ones need a combinator.
func Unmarshal[V any](data []byte, opts ...timeline.Option[V]) (*timeline.Timeline[V], error) {
	var segs []Segment[V]
	if err := json.Unmarshal(data, &segs); err != nil {
		return nil, err
	}
	res := make([]timeline.Segment[V], len(segs))
	for i, s := range segs {
		res[i] = s.Segment
	}
	return timeline.New(res, opts...)
}
