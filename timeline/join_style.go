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

import "strings"

// JoinStyle selects which sub-intervals of two timelines survive a Combine,
// depending on which of the two has a segment there.
type JoinStyle uint8

const (
	// CrossJoin keeps sub-intervals where either side has a segment.
	CrossJoin JoinStyle = iota
	// Disjoint keeps sub-intervals covered by the left side only.
	Disjoint
	// InnerJoin keeps sub-intervals covered by both sides.
	InnerJoin
	// LeftJoin keeps every sub-interval of the left side.
	LeftJoin
	// RightJoin keeps every sub-interval of the right side.
	RightJoin
)

var joinStyleNames = map[JoinStyle]string{
	CrossJoin: "CROSS_JOIN",
	Disjoint:  "DISJOINT",
	InnerJoin: "INNER_JOIN",
	LeftJoin:  "LEFT_JOIN",
	RightJoin: "RIGHT_JOIN",
}

// JoinStyles lists every join style.
var JoinStyles = []JoinStyle{CrossJoin, Disjoint, InnerJoin, LeftJoin, RightJoin}

func (js JoinStyle) Accept(hasLeft, hasRight bool) bool {
	switch js {
	case CrossJoin:
		return hasLeft || hasRight
	case Disjoint:
		return hasLeft && !hasRight
	case InnerJoin:
		return hasLeft && hasRight
	case LeftJoin:
		return hasLeft
	case RightJoin:
		return hasRight
	}
	return false
}

func (js JoinStyle) String() string {
	if name, ok := joinStyleNames[js]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseJoinStyle accepts the canonical names as well as short forms such as
// "cross", "inner-join" or "left".
func ParseJoinStyle(s string) (JoinStyle, error) {
	norm := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	if norm != "DISJOINT" && !strings.HasSuffix(norm, "_JOIN") {
		norm += "_JOIN"
	}
	for js, name := range joinStyleNames {
		if name == norm {
			return js, nil
		}
	}
	return 0, ErrUnknownJoinStyle.New(s)
}
