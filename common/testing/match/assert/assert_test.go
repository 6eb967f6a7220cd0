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

package assert_test

import (
	"fmt"
	"testing"

	"go.chromium.org/testext/common/testing/match"
	"go.chromium.org/testext/common/testing/match/assert"
	"go.chromium.org/testext/common/testing/match/internal/testhelper"
)

type version struct {
	Major, Minor int
}

func (v version) Matches(expected version, ctx match.Context) *match.Failure {
	return match.Composite(
		match.FieldOf("Major", func(v version) int { return v.Major }, match.Integers[int]()),
		match.FieldOf("Minor", func(v version) int { return v.Minor }, match.Integers[int]()),
	)(v, expected, ctx)
}

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.Matches(tb, []string{"a", "b"}, []string{"a", "b"})
		assert.Matches(tb, version{1, 2}, version{1, 2})
		tb.CheckPassed()
	})

	t.Run("fail", func(t *testing.T) {
		tb := testhelper.New(t)
		here := match.Here(0)
		assert.Matches(tb, version{1, 2}, version{1, 3})
		tb.CheckFailed(true,
			"assert.Matches failed:",
			fmt.Sprintf("Check failed at line %d of assert_test.go.", here.Line+1),
			"2 != 3",
			"was: 2",
			"expected: 3",
			"path: "+here.File,
			"    version instances failed to match",
		)
	})

	t.Run("origin override", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.Matches(tb, "x", "y", match.WithOrigin(match.Origin{File: "/golden/out.txt"}))
		tb.CheckFailed(true, "Check failed in out.txt.", "path: /golden/out.txt")
	})
}

func TestMatchesWith(t *testing.T) {
	t.Parallel()

	t.Run("pass", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.MatchesWith(tb, "a \n b", "a\nb", match.Strings(), match.IgnoringWhitespace())
		tb.CheckPassed()
	})

	t.Run("fail", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.MatchesWith(tb, "a\nb", "a", match.Strings())
		tb.CheckFailed(true, "assert.MatchesWith failed:", "1 extra lines in string", "assert_test.go")
	})
}

func TestNoFailure(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.NoFailure(tb, nil)
		tb.CheckPassed()
	})

	t.Run("failure", func(t *testing.T) {
		tb := testhelper.New(t)
		assert.NoFailure(tb, version{1, 0}.Matches(version{2, 0}, match.Context{}))
		tb.CheckFailed(true, "assert.NoFailure failed:", "1 != 2", "Check failed at an unknown location.")
	})
}
