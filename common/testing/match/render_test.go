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

package match

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderer(t *testing.T) {
	t.Parallel()

	header := "Check failed at line 42 of widget_test.go."
	sep := strings.Repeat("-", len(header))

	t.Run("nil", func(t *testing.T) {
		if got := (Renderer{}).Failure(nil); got != "" {
			t.Errorf("expected empty report, got %q", got)
		}
	})

	t.Run("leaf", func(t *testing.T) {
		got := Renderer{}.Failure(Integers[int]()(10, 20, testCtx))
		want := strings.Join([]string{
			sep,
			header,
			sep,
			"",
			"10 != 20",
			"",
			"was: 10",
			"expected: 20",
			"path: /src/widget/widget_test.go",
		}, "\n")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected report (-want +got): %s", diff)
		}
	})

	t.Run("innermost first", func(t *testing.T) {
		f := Slices(Integers[int]())([]int{1, 2, 3}, []int{1, 5, 3}, testCtx)
		f = Wrap(f, "scores differ", f.Actual, f.Expected, testCtx)
		got := Renderer{}.Failure(f)
		want := strings.Join([]string{
			sep,
			header,
			sep,
			"",
			"2 != 5",
			"",
			"was: 2",
			"expected: 5",
			"path: /src/widget/widget_test.go",
			"",
			"while matching:",
			"    []int instances failed to match at index 1",
			"    scores differ",
		}, "\n")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected report (-want +got): %s", diff)
		}
	})

	t.Run("origin without line", func(t *testing.T) {
		ctx := NewContext(Origin{File: "/data/golden.txt"}, Options{})
		got := Renderer{}.Failure(Bools()(true, false, ctx))
		h := "Check failed in golden.txt."
		if !strings.HasPrefix(got, strings.Repeat("-", len(h))+"\n"+h+"\n") {
			t.Errorf("unexpected header:\n%s", got)
		}
	})

	t.Run("unknown origin", func(t *testing.T) {
		got := Renderer{}.Failure(Bools()(true, false, Context{}))
		if !strings.Contains(got, "\nCheck failed at an unknown location.\n") {
			t.Errorf("unexpected header:\n%s", got)
		}
	})

	t.Run("verbose strings", func(t *testing.T) {
		got := Renderer{Verbose: true}.Failure(Strings()("a\nb\nc", "a\nB\nc", testCtx))
		for _, want := range []string{"\ndiff:\n", "    --- expected", "    +++ actual", "    -B", "    +b"} {
			if !strings.Contains(got, want) {
				t.Errorf("report does not contain %q:\n%s", want, got)
			}
		}
	})

	t.Run("verbose bytes", func(t *testing.T) {
		got := Renderer{Verbose: true}.Failure(Bytes()([]byte("ab"), []byte("ac"), testCtx))
		if !strings.Contains(got, "    actual:\n    00000000  61 62") {
			t.Errorf("report does not contain a hex dump:\n%s", got)
		}
	})

	t.Run("verbose composite", func(t *testing.T) {
		got := Renderer{Verbose: true}.Failure(
			person{Name: "a", Age: 1}.Matches(person{Name: "a", Age: 2}, testCtx))
		if !strings.Contains(got, "\ndiff:\n") || !strings.Contains(got, "Age:") {
			t.Errorf("report does not contain a cmp diff:\n%s", got)
		}
	})

	t.Run("colorize", func(t *testing.T) {
		got := Renderer{Verbose: true, Colorize: true}.Failure(Strings()("a\nb", "a\nc", testCtx))
		if !strings.Contains(got, "\033[") {
			t.Errorf("report has no ANSI codes:\n%q", got)
		}
		if strings.Contains(Renderer{}.Failure(Strings()("a", "b", testCtx)), "\033[") {
			t.Error("uncolorized report has ANSI codes")
		}
	})

	t.Run("String uses the zero renderer", func(t *testing.T) {
		f := Bools()(true, false, testCtx)
		if diff := cmp.Diff(Renderer{}.Failure(f), f.String()); diff != "" {
			t.Errorf("unexpected String (-want +got): %s", diff)
		}
	})
}

func TestColorMode(t *testing.T) {
	t.Parallel()

	yes := func() bool { return true }
	no := func() bool { return false }

	cases := []struct {
		value    string
		terminal func() bool
		want     bool
	}{
		{"always", no, true},
		{"ALWAYS", no, true},
		{"never", yes, false},
		{"0", yes, false},
		{"", yes, true},
		{"", no, false},
		{"auto", yes, true},
	}
	for _, tc := range cases {
		if got := colorMode(tc.value, tc.terminal); got != tc.want {
			t.Errorf("colorMode(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}
