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

// Package d holds checks for conditions that can only fail because of a bug
// in this module. Errors caused by caller input are returned, never raised here.
package d

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/assert"
)

// Chk panics with a descriptive message when an assertion fails.
var Chk = assert.New(&panicker{})

type panicker struct {
}

func (s panicker) Errorf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// PanicIfError panics if |err| is non-nil.
func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfTrue panics with |msg| if |b| is true.
func PanicIfTrue(b bool, msg ...string) {
	if b {
		panic(message("expected false", msg))
	}
}

// PanicIfFalse panics with |msg| if |b| is false.
func PanicIfFalse(b bool, msg ...string) {
	if !b {
		panic(message("expected true", msg))
	}
}

func message(def string, msg []string) string {
	if len(msg) == 0 {
		return def
	}
	return strings.Join(msg, " ")
}
