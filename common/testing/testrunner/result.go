// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testrunner

import (
	"go.chromium.org/testext/common/testing/match"
)

// Result is what a finished process produced.
type Result struct {
	Status int
	Stdout string
	Stderr string
}

// Expect returns a Result to match a real one against.
func Expect(status int, stdout, stderr string) Result {
	return Result{Status: status, Stdout: stdout, Stderr: stderr}
}

var resultFields = []match.Field[Result]{
	match.FieldOf("Status", func(r Result) int { return r.Status }, match.Integers[int]()),
	match.FieldOf("Stdout", func(r Result) string { return r.Stdout }, match.Strings()),
	match.FieldOf("Stderr", func(r Result) string { return r.Stderr }, match.Strings()),
}

// Matches implements match.Matchable.
//
// The status is compared first, then stdout, then stderr. The outputs are
// compared line by line, and honor match.Options.IgnoreWhitespace.
func (r Result) Matches(expected Result, ctx match.Context) *match.Failure {
	return match.CompositeWithMessage("process results differ", resultFields...)(r, expected, ctx)
}
