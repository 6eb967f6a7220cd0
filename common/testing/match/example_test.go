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

package match_test

import (
	"fmt"

	"go.chromium.org/testext/common/testing/match"
)

type Point struct {
	X, Y int
}

var pointFields = match.Composite(
	match.FieldOf("X", func(p Point) int { return p.X }, match.Integers[int]()),
	match.FieldOf("Y", func(p Point) int { return p.Y }, match.Integers[int]()),
)

func (p Point) Matches(expected Point, ctx match.Context) *match.Failure {
	return pointFields(p, expected, ctx)
}

func Example() {
	origin := match.WithOrigin(match.Origin{File: "/src/geo/path_test.go", Line: 12})

	f := match.Match(
		[]Point{{1, 2}, {3, 4}},
		[]Point{{1, 2}, {3, 5}},
		origin)
	fmt.Println(f.String())

	// Output:
	// ----------------------------------------
	// Check failed at line 12 of path_test.go.
	// ----------------------------------------
	//
	// 4 != 5
	//
	// was: 4
	// expected: 5
	// path: /src/geo/path_test.go
	//
	// while matching:
	//     Point instances failed to match
	//     []match_test.Point instances failed to match at index 1
}

func ExampleCompare() {
	f := match.Compare("alpha\n  beta", "alpha\nbeta", match.Strings(), match.IgnoringWhitespace())
	fmt.Println(f == nil)

	f = match.Compare("alpha\nbeta", "alpha\ngamma", match.Strings())
	fmt.Println(f.Detail)

	// Output:
	// true
	// strings different at line 1
}
