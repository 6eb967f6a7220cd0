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
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
)

// Bools matches two bool values.
func Bools() Func[bool] {
	return func(actual, expected bool, ctx Context) *Failure {
		if actual != expected {
			return NewFailure("bool values differ", actual, expected, ctx)
		}
		return nil
	}
}

// Integers matches two integers of any integer type, including named types
// like `type Port uint16`.
func Integers[T constraints.Integer]() Func[T] {
	return func(actual, expected T, ctx Context) *Failure {
		if actual != expected {
			return NewFailure(fmt.Sprintf("%d != %d", actual, expected), actual, expected, ctx)
		}
		return nil
	}
}

// Times matches two time.Time values with time.Time.Equal, so the same
// instant in different locations matches.
func Times() Func[time.Time] {
	return func(actual, expected time.Time, ctx Context) *Failure {
		if !actual.Equal(expected) {
			return NewFailure("times differ", actual, expected, ctx)
		}
		return nil
	}
}

// Equal matches two values with ==.
func Equal[T comparable]() Func[T] {
	return func(actual, expected T, ctx Context) *Failure {
		if actual != expected {
			return NewFailure("values differ", actual, expected, ctx)
		}
		return nil
	}
}

// Errors matches two errors by their Error() text.
//
// Two nil errors match; a nil and a non-nil error never do.
func Errors() Func[error] {
	return func(actual, expected error, ctx Context) *Failure {
		switch {
		case actual == nil && expected == nil:
			return nil
		case expected == nil:
			return NewFailure("unexpected error", actual, expected, ctx)
		case actual == nil:
			return NewFailure("expected an error", actual, expected, ctx)
		case actual.Error() != expected.Error():
			return NewFailure("error messages differ", actual, expected, ctx)
		}
		return nil
	}
}
