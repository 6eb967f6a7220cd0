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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFailure(t *testing.T) {
	t.Parallel()

	leaf := NewFailure("2 != 5", 2, 5, testCtx)
	mid := Wrap(leaf, "[]int instances failed to match at index 1", []int{2}, []int{5}, testCtx)
	top := Wrap(mid, "scores differ", "s", "t", testCtx)

	t.Run("Wrap of nil", func(t *testing.T) {
		if f := Wrap(nil, "nothing", 1, 2, testCtx); f != nil {
			t.Errorf("expected nil, got %q", f.Detail)
		}
	})

	t.Run("Innermost", func(t *testing.T) {
		if top.Innermost() != leaf {
			t.Error("Innermost of the chain should be the leaf")
		}
		if leaf.Innermost() != leaf {
			t.Error("Innermost of a leaf is the leaf")
		}
		var nilFailure *Failure
		if nilFailure.Innermost() != nil {
			t.Error("Innermost of nil is nil")
		}
	})

	t.Run("Depth", func(t *testing.T) {
		var nilFailure *Failure
		for _, tc := range []struct {
			f    *Failure
			want int
		}{{nilFailure, 0}, {leaf, 1}, {mid, 2}, {top, 3}} {
			if got := tc.f.Depth(); got != tc.want {
				t.Errorf("Depth() = %d, want %d", got, tc.want)
			}
		}
	})

	t.Run("Error", func(t *testing.T) {
		want := "scores differ: []int instances failed to match at index 1: 2 != 5"
		if diff := cmp.Diff(want, top.Error()); diff != "" {
			t.Errorf("unexpected Error (-want +got): %s", diff)
		}
	})

	t.Run("Unwrap", func(t *testing.T) {
		if err := leaf.Unwrap(); err != nil {
			t.Errorf("leaf Unwrap should be an untyped nil, got %#v", err)
		}
		if errors.Unwrap(top) != error(mid) {
			t.Error("Unwrap should return the cause")
		}

		var err error = top
		var target *Failure
		if !errors.As(err, &target) || target != top {
			t.Error("errors.As should find the outermost failure")
		}
		if !errors.Is(err, leaf) {
			t.Error("errors.Is should find the leaf")
		}
	})
}
