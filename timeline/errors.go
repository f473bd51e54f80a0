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

import "gopkg.in/src-d/go-errors.v1"

var (
	ErrOverlapWithoutCombinator = errors.NewKind("segment %s overlaps the timeline and no overlap combinator was given")
	ErrOverlappingSegments      = errors.NewKind("timeline segments overlap: %s and %s")
	ErrUnorderedSegments        = errors.NewKind("segment %s does not follow %s")
	ErrEmptyTimelineAccess      = errors.NewKind("timeline is empty")
	ErrInvalidSplitRange        = errors.NewKind("cannot split timeline between %s and %s with period %s")
	ErrCompressMerge            = errors.NewKind("independently compressed timelines cannot be merged")
	ErrUnknownJoinStyle         = errors.NewKind("unknown join style '%s'")
)
