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
	"testing"
)

// TestingTB is the subset of testing.TB which the assert and check packages
// need.
type TestingTB interface {
	Helper()
	Log(args ...any)
	Fail()
	FailNow()
}

var _ TestingTB = (testing.TB)(nil)

// Report logs f to t as a full report, prefixed with the name of the
// assertion which produced it.
//
// The report includes a diff when the test binary runs with -test.v, and is
// colorized according to ColorFromEnv.
//
// Report does not fail the test.
func Report(t TestingTB, name string, f *Failure) {
	t.Helper()
	r := Renderer{Verbose: testing.Verbose(), Colorize: ColorFromEnv()}
	t.Log(name + " failed:\n" + r.Failure(f))
}
