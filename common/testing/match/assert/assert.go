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

// Package assert contains test assertions which stop the test on the first
// mismatch.
//
// The check package has the same functions, but lets the test continue.
package assert

import (
	"go.chromium.org/testext/common/testing/match"
)

// Matches compares `actual` with `expected` using the matcher which
// match.For resolves for T.
//
// If they do not match, the failure is reported with match.Report and the
// test is stopped with t.FailNow().
//
// Example: `assert.Matches(t, got, []int{1, 2, 3})`
func Matches[T any](t match.TestingTB, actual, expected T, opts ...match.Option) {
	opts = append([]match.Option{match.WithOrigin(match.Here(1))}, opts...)
	if f := match.Match(actual, expected, opts...); f != nil {
		t.Helper()
		match.Report(t, "assert.Matches", f)
		t.FailNow()
	}
}

// MatchesWith compares `actual` with `expected` using `fn`.
//
// Example: `assert.MatchesWith(t, got, want, match.Strings(), match.IgnoringWhitespace())`
func MatchesWith[T any](t match.TestingTB, actual, expected T, fn match.Func[T], opts ...match.Option) {
	opts = append([]match.Option{match.WithOrigin(match.Here(1))}, opts...)
	if f := match.Compare(actual, expected, fn, opts...); f != nil {
		t.Helper()
		match.Report(t, "assert.MatchesWith", f)
		t.FailNow()
	}
}

// NoFailure stops the test if `f` is not nil.
//
// Useful when calling a Matches method directly.
func NoFailure(t match.TestingTB, f *match.Failure) {
	if f != nil {
		t.Helper()
		match.Report(t, "assert.NoFailure", f)
		t.FailNow()
	}
}
