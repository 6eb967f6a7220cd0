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
	"reflect"
)

// Func compares `actual` with `expected` and returns a *Failure if they do
// not match.
//
// Example:
//
//	func Bools() match.Func[bool] {
//	  return func(actual, expected bool, ctx match.Context) *match.Failure {
//	    if actual != expected {
//	      return match.NewFailure("bool values differ", actual, expected, ctx)
//	    }
//	    return nil
//	  }
//	}
//
// A Func must not modify its inputs, and must return the same result when
// called twice with the same arguments.
type Func[T any] func(actual, expected T, ctx Context) *Failure

// Matchable is implemented by types which compare themselves to another value
// of the same type.
type Matchable[T any] interface {
	Matches(expected T, ctx Context) *Failure
}

// Self returns a Func which calls actual.Matches(expected, ctx).
func Self[T Matchable[T]]() Func[T] {
	return func(actual, expected T, ctx Context) *Failure {
		return actual.Matches(expected, ctx)
	}
}

// Compare runs fn over actual and expected with a new Context.
//
// Unless an Option sets one, the Context's origin is the caller of Compare.
func Compare[T any](actual, expected T, fn Func[T], opts ...Option) *Failure {
	if fn == nil {
		panic("match.Compare: nil Func")
	}
	return fn(actual, expected, newContextFromOptions(Here(1), opts))
}

// Match compares actual with expected using the Func that For[T] resolves.
//
// Unless an Option sets one, the Context's origin is the caller of Match.
//
// Panics if no Func can be resolved for T; comparing values of an unsupported
// type is a programming error, not a mismatch.
func Match[T any](actual, expected T, opts ...Option) *Failure {
	fn, ok := For[T]()
	if !ok {
		panic(fmt.Errorf("match.Match: no matcher for %s; implement match.Matchable or call match.Register",
			reflect.TypeFor[T]()))
	}
	return fn(actual, expected, newContextFromOptions(Here(1), opts))
}
