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

import "gopkg.in/src-d/go-errors.v1"

var (
	ErrInvalidInterval           = errors.NewKind("invalid interval: to date %s is before from date %s")
	ErrInvalidDate               = errors.NewKind("invalid date '%s'")
	ErrUnsupportedOnOpenInterval = errors.NewKind("cannot safely count the days of open interval %s")
	ErrNonAdjacentExpand         = errors.NewKind("intervals neither overlap nor abut: %s <-> %s")
	ErrInvalidPeriod             = errors.NewKind("invalid period '%s': expected a positive count followed by d, w, m or y")
)
