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

var testCtx = NewContext(Origin{File: "/src/widget/widget_test.go", Line: 42}, Options{})

var wsCtx = NewContext(Origin{File: "/src/widget/widget_test.go", Line: 42}, Options{IgnoreWhitespace: true})

// cmpFailure lets cmp look inside Context.
var cmpFailure = cmp.AllowUnexported(Context{})

func shouldPass(f *Failure) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if f != nil {
			t.Fatalf("unexpected failure:\n%s", f)
		}
	}
}

// shouldFail checks that f is non-nil and that its innermost detail contains
// every one of `details`.
func shouldFail(f *Failure, details ...string) func(t *testing.T) {
	return func(t *testing.T) {
		t.Helper()
		if f == nil {
			t.Fatal("expected a failure, got nil")
		}
		inner := f.Innermost().Detail
		for _, d := range details {
			if !strings.Contains(inner, d) {
				t.Errorf("innermost detail %q does not contain %q", inner, d)
			}
		}
	}
}

// checkValues checks the Actual and Expected of f.
func checkValues(t *testing.T, f *Failure, actual, expected any) {
	t.Helper()
	if f == nil {
		t.Fatal("expected a failure, got nil")
	}
	if diff := cmp.Diff(actual, f.Actual); diff != "" {
		t.Errorf("unexpected Actual (-want +got): %s", diff)
	}
	if diff := cmp.Diff(expected, f.Expected); diff != "" {
		t.Errorf("unexpected Expected (-want +got): %s", diff)
	}
}
