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
	"maps"
)

// Slices matches two slices element by element with `elem`.
//
// Slices of different lengths fail with "counts differ" without looking at
// any element. Otherwise the first element which fails to match stops the
// comparison, and its failure becomes the Cause of the slice's failure.
func Slices[E any](elem Func[E]) Func[[]E] {
	if elem == nil {
		panic("match.Slices: nil element Func")
	}
	return func(actual, expected []E, ctx Context) *Failure {
		return matchSequence(actual, expected, len(actual), len(expected), ctx, func(i int) *Failure {
			return elem(actual[i], expected[i], ctx)
		})
	}
}

// matchSequence implements the length-then-elements algorithm shared by
// Slices and the reflection based matchers.
func matchSequence(actual, expected any, n, m int, ctx Context, elem func(i int) *Failure) *Failure {
	if n != m {
		return NewFailure("counts differ", n, m, ctx)
	}
	for i := 0; i < n; i++ {
		if f := elem(i); f != nil {
			return Wrap(f, fmt.Sprintf("%T instances failed to match at index %d", actual, i), actual, expected, ctx)
		}
	}
	return nil
}

// Sets matches two sets, represented as map[K]struct{}.
//
// Sets are compared as a whole: the failure does not say which element is
// missing.
func Sets[K comparable]() Func[map[K]struct{}] {
	return func(actual, expected map[K]struct{}, ctx Context) *Failure {
		if !maps.Equal(actual, expected) {
			return NewFailure("contents differ", actual, expected, ctx)
		}
		return nil
	}
}

// Maps matches two maps whose values support ==.
//
// Maps are compared as a whole: values are not matched recursively, and the
// failure does not say which key differs.
func Maps[K, V comparable]() Func[map[K]V] {
	return func(actual, expected map[K]V, ctx Context) *Failure {
		if !maps.Equal(actual, expected) {
			return NewFailure("contents differ", actual, expected, ctx)
		}
		return nil
	}
}
