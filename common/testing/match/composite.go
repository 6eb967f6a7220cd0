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

// Field is one field of a composite type T which takes part in matching.
type Field[T any] struct {
	// Name is the field's name. It is informational only.
	Name string

	match func(actual, expected T, ctx Context) *Failure
}

// FieldOf declares a field of T, read with `get` and matched with `fn`.
func FieldOf[T, F any](name string, get func(T) F, fn Func[F]) Field[T] {
	if get == nil || fn == nil {
		panic(fmt.Errorf("match.FieldOf(%q): nil accessor or Func", name))
	}
	return Field[T]{
		Name: name,
		match: func(actual, expected T, ctx Context) *Failure {
			return fn(get(actual), get(expected), ctx)
		},
	}
}

// Fields matches the given fields of actual and expected in order, and
// returns the first field failure as-is.
//
// Most callers want Composite, which wraps that failure in one describing the
// whole value.
func Fields[T any](actual, expected T, ctx Context, fields ...Field[T]) *Failure {
	for _, field := range fields {
		if f := field.match(actual, expected, ctx); f != nil {
			return f
		}
	}
	return nil
}

// Composite returns a Func matching the declared fields of T in order.
//
// The first field which fails stops the comparison; its failure becomes the
// Cause of a failure with detail "<TypeName> instances failed to match".
func Composite[T any](fields ...Field[T]) Func[T] {
	return CompositeWithMessage("", fields...)
}

// CompositeWithMessage is like Composite, but uses `message` as the detail of
// the wrapping failure (unless it is empty).
func CompositeWithMessage[T any](message string, fields ...Field[T]) Func[T] {
	return func(actual, expected T, ctx Context) *Failure {
		return Wrapping(actual, expected, ctx, message, func() *Failure {
			return Fields(actual, expected, ctx, fields...)
		})
	}
}

// Wrapping runs `checks` and, if it fails, wraps the failure in one for the
// whole of actual and expected.
//
// It is the building block for hand written Matchable implementations:
//
//	func (r Record) Matches(expected Record, ctx match.Context) *match.Failure {
//	  return match.Wrapping(r, expected, ctx, "", func() *match.Failure {
//	    if f := match.Strings()(r.Name, expected.Name, ctx); f != nil {
//	      return f
//	    }
//	    return match.Slices(match.Strings())(r.Tags, expected.Tags, ctx)
//	  })
//	}
//
// If message is empty, the detail is "<TypeName> instances failed to match".
func Wrapping[T any](actual, expected T, ctx Context, message string, checks func() *Failure) *Failure {
	cause := checks()
	if cause == nil {
		return nil
	}
	if message == "" {
		message = fmt.Sprintf("%s instances failed to match", typeName(reflect.TypeFor[T]()))
	}
	return Wrap(cause, message, actual, expected, ctx)
}

// Underlying returns a Func for a wrapper type T, which matches the raw
// values extracted by `raw` with `fn`.
//
// The failure is exactly the one produced by fn for the raw values.
func Underlying[T, R any](raw func(T) R, fn Func[R]) Func[T] {
	if raw == nil || fn == nil {
		panic("match.Underlying: nil accessor or Func")
	}
	return func(actual, expected T, ctx Context) *Failure {
		return fn(raw(actual), raw(expected), ctx)
	}
}

// typeName returns the unqualified name of t, or its full description for
// unnamed types (e.g. *Record, []int).
func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
