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

// Package check contains test assertions which record a mismatch with
// t.Fail() and let the test continue.
package check

import (
	"go.chromium.org/testext/common/testing/match"
)

// Matches compares `actual` with `expected` using the matcher which
// match.For resolves for T.
//
// If they do not match, the failure is reported with match.Report and the
// test is failed with t.Fail().
//
// Returns true iff the values matched.
func Matches[T any](t match.TestingTB, actual, expected T, opts ...match.Option) bool {
	opts = append([]match.Option{match.WithOrigin(match.Here(1))}, opts...)
	if f := match.Match(actual, expected, opts...); f != nil {
		t.Helper()
		match.Report(t, "check.Matches", f)
		t.Fail()
		return false
	}
	return true
}

// MatchesWith compares `actual` with `expected` using `fn`.
//
// Returns true iff the values matched.
func MatchesWith[T any](t match.TestingTB, actual, expected T, fn match.Func[T], opts ...match.Option) bool {
	opts = append([]match.Option{match.WithOrigin(match.Here(1))}, opts...)
	if f := match.Compare(actual, expected, fn, opts...); f != nil {
		t.Helper()
		match.Report(t, "check.MatchesWith", f)
		t.Fail()
		return false
	}
	return true
}

// NoFailure fails the test if `f` is not nil.
//
// Returns true iff f is nil.
func NoFailure(t match.TestingTB, f *match.Failure) bool {
	if f != nil {
		t.Helper()
		match.Report(t, "check.NoFailure", f)
		t.Fail()
		return false
	}
	return true
}
