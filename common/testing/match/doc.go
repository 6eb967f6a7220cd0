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

// Package match implements structural matching of small test values with
// diagnostic reporting.
//
// A match compares an `actual` value with an `expected` value of the same
// type and either succeeds (returns a nil *Failure) or returns a *Failure
// describing the first disagreement it found. Failures found inside nested
// values (slice elements, composite fields) are wrapped by the enclosing
// value's failure, forming a chain which a Renderer unwinds so that the most
// specific mismatch is reported first.
//
// Every comparison runs with a Context, which carries the Origin (the source
// location of the assertion which started the comparison) and the Options in
// effect (e.g. ignoring leading/trailing whitespace on each line of a
// string). The Context never changes during a comparison.
//
// Matchers for the built-in value shapes are provided as small functions
// returning a Func:
//
//	f := match.Compare([]int{1, 2, 3}, []int{1, 5, 3}, match.Slices(match.Integers[int]()))
//	// f.Innermost().Detail == "2 != 5"
//
// Types which know how to compare themselves implement Matchable, and
// composite types usually do so by declaring the fields which take part in
// the match:
//
//	var personFields = match.Composite(
//	  match.FieldOf("Name", func(p Person) string { return p.Name }, match.Strings()),
//	  match.FieldOf("Age", func(p Person) int { return p.Age }, match.Integers[int]()),
//	)
//
//	func (p Person) Matches(expected Person, ctx match.Context) *match.Failure {
//	  return personFields(p, expected, ctx)
//	}
//
// Match resolves a Func for a type automatically (see For) and is what the
// assert and check packages use.
package match
