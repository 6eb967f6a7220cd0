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

// Package testhelper has a fake testing.TB for testing the assertion
// packages.
package testhelper

import (
	"fmt"
	"strings"
	"testing"
)

// FakeTB records Log calls and Fail/FailNow instead of acting on them.
//
// Everything else is forwarded to the real *testing.T.
type FakeTB struct {
	*testing.T

	logCalls []string
	fail     bool
	failNow  bool
}

var _ testing.TB = (*FakeTB)(nil)

// New returns a FakeTB wrapping t.
func New(t *testing.T) *FakeTB {
	return &FakeTB{T: t}
}

func (e *FakeTB) Log(args ...any) {
	// fmt.Sprint only adds spaces between operands when neither is a string;
	// TB.Log always does.
	formatted := make([]string, len(args))
	for i, arg := range args {
		formatted[i] = fmt.Sprint(arg)
	}
	e.logCalls = append(e.logCalls, strings.Join(formatted, " "))
}

func (e *FakeTB) Logf(format string, args ...any) {
	e.logCalls = append(e.logCalls, fmt.Sprintf(format, args...))
}

func (e *FakeTB) Fail() {
	e.fail = true
}

func (e *FakeTB) FailNow() {
	e.fail = true
	e.failNow = true
}

// Logs returns everything logged so far.
func (e *FakeTB) Logs() []string {
	return e.logCalls
}

// CheckPassed fails the real test if anything was logged or failed.
func (e *FakeTB) CheckPassed() {
	e.Helper()

	if e.fail {
		e.T.Log("FakeTB: test case called Fail/FailNow.")
		e.T.Fail()
	}
	for _, msg := range e.logCalls {
		e.T.Log("FakeTB: unexpected log:", msg)
		e.T.Fail()
	}
	if e.T.Failed() {
		e.T.FailNow()
	}
}

// CheckFailed fails the real test unless the fake was failed (fatally iff
// `fatal`), and each of `msgs` appears in some logged message.
func (e *FakeTB) CheckFailed(fatal bool, msgs ...string) {
	e.Helper()

	if !e.fail {
		e.T.Log("FakeTB: test case did not call Fail/FailNow.")
		e.T.Fail()
	}
	if e.failNow != fatal {
		e.T.Logf("FakeTB: FailNow called: %v, want %v.", e.failNow, fatal)
		e.T.Fail()
	}

	var missingMsgs []string
	for _, msg := range msgs {
		var ok bool
		for _, logged := range e.logCalls {
			if strings.Contains(logged, msg) {
				ok = true
				break
			}
		}
		if !ok {
			missingMsgs = append(missingMsgs, msg)
		}
	}
	if len(missingMsgs) > 0 {
		e.T.Log("FakeTB: missing messages:")
		for _, msg := range missingMsgs {
			e.T.Log(" *", msg)
		}

		e.T.Log("Actual logs:")
		for _, msg := range e.logCalls {
			e.T.Log(msg)
		}
		e.T.Fail()
	}
	if e.T.Failed() {
		e.T.FailNow()
	}
}
