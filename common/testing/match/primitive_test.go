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
	"time"
)

type port uint16

func TestBools(t *testing.T) {
	t.Parallel()

	t.Run("equal", shouldPass(Bools()(true, true, testCtx)))
	t.Run("differ", shouldFail(Bools()(true, false, testCtx), "bool values differ"))
	t.Run("values", func(t *testing.T) {
		checkValues(t, Bools()(false, true, testCtx), false, true)
	})
}

func TestIntegers(t *testing.T) {
	t.Parallel()

	t.Run("equal", shouldPass(Integers[int]()(10, 10, testCtx)))
	t.Run("differ", shouldFail(Integers[int]()(10, 100, testCtx), "10 != 100"))
	t.Run("negative", shouldFail(Integers[int64]()(-1, 1, testCtx), "-1 != 1"))
	t.Run("named type", shouldFail(Integers[port]()(80, 443, testCtx), "80 != 443"))
	t.Run("values", func(t *testing.T) {
		checkValues(t, Integers[port]()(80, 443, testCtx), port(80), port(443))
	})

	t.Run("all equal pairs pass", func(t *testing.T) {
		for _, v := range []int{-5, 0, 1, 1 << 30} {
			if f := Integers[int]()(v, v, testCtx); f != nil {
				t.Errorf("%d vs %d: %s", v, v, f.Detail)
			}
		}
	})
}

func TestTimes(t *testing.T) {
	t.Parallel()

	now := time.Date(2021, 4, 29, 12, 0, 0, 0, time.UTC)
	t.Run("equal", shouldPass(Times()(now, now, testCtx)))
	t.Run("same instant, other zone", shouldPass(
		Times()(now, now.In(time.FixedZone("BST", 3600)), testCtx)))
	t.Run("differ", shouldFail(Times()(now, now.Add(time.Second), testCtx), "times differ"))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("equal", shouldPass(Equal[float64]()(1.5, 1.5, testCtx)))
	t.Run("differ", shouldFail(Equal[float64]()(1.5, 2.5, testCtx), "values differ"))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("both nil", shouldPass(Errors()(nil, nil, testCtx)))
	t.Run("same text", shouldPass(Errors()(errors.New("boom"), errors.New("boom"), testCtx)))
	t.Run("different text", shouldFail(
		Errors()(errors.New("boom"), errors.New("bang"), testCtx), "error messages differ"))
	t.Run("unexpected", shouldFail(Errors()(errors.New("boom"), nil, testCtx), "unexpected error"))
	t.Run("missing", shouldFail(Errors()(nil, errors.New("boom"), testCtx), "expected an error"))
}
