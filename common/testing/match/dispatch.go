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
	"sync"
)

// valueFunc is a type-erased Func, used when walking values whose element
// types are only known at run time.
type valueFunc func(actual, expected reflect.Value, ctx Context) *Failure

type registration struct {
	typed any // Func[T]
	value valueFunc
}

var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]registration{}

	contextType    = reflect.TypeFor[Context]()
	failurePtrType = reflect.TypeFor[*Failure]()
)

func init() {
	Register(Times())
	Register(Errors())
	Register(Bytes())
}

// Register installs fn as the matcher For[T] resolves, both for T itself and
// for T found inside slices, arrays and interfaces.
//
// Registering a type twice replaces the first registration. Register is
// usually called from an init function or TestMain.
func Register[T any](fn Func[T]) {
	if fn == nil {
		panic("match.Register: nil Func")
	}
	typ := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[typ] = registration{
		typed: fn,
		value: func(actual, expected reflect.Value, ctx Context) *Failure {
			a, _ := actual.Interface().(T)
			e, _ := expected.Interface().(T)
			return fn(a, e, ctx)
		},
	}
}

func lookup(typ reflect.Type) (registration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	r, ok := registry[typ]
	return r, ok
}

// For resolves a Func for T.
//
// In order, it uses:
//   - the Func installed for T with Register (time.Time, error and []byte are
//     registered by default);
//   - T's Matches method, if T implements Matchable[T];
//   - the built-in matcher for T's kind: bool, integers, floats, strings,
//     slices and arrays of resolvable elements, sets (map[K]struct{}) and
//     maps with comparable values.
//
// Named types with a basic underlying kind (e.g. `type Color string`) are
// matched as their underlying value.
//
// Structs, pointers, channels and functions without a registration or a
// Matches method cannot be resolved; For returns false for them.
func For[T any]() (Func[T], bool) {
	typ := reflect.TypeFor[T]()
	if r, ok := lookup(typ); ok {
		if fn, ok := r.typed.(Func[T]); ok {
			return fn, true
		}
	}
	vf := resolve(typ)
	if vf == nil {
		return nil, false
	}
	return func(actual, expected T, ctx Context) *Failure {
		return vf(reflect.ValueOf(&actual).Elem(), reflect.ValueOf(&expected).Elem(), ctx)
	}, true
}

// resolve returns a valueFunc for typ, or nil if typ is not supported.
//
// Element types are resolved lazily, when a container is actually matched, so
// recursive types resolve only as deep as the values go.
func resolve(typ reflect.Type) valueFunc {
	if r, ok := lookup(typ); ok {
		return r.value
	}
	if isMatchable(typ) {
		return matchMethod
	}

	switch typ.Kind() {
	case reflect.Bool:
		return func(a, e reflect.Value, ctx Context) *Failure {
			return Bools()(a.Bool(), e.Bool(), ctx)
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, e reflect.Value, ctx Context) *Failure {
			return Integers[int64]()(a.Int(), e.Int(), ctx)
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, e reflect.Value, ctx Context) *Failure {
			return Integers[uint64]()(a.Uint(), e.Uint(), ctx)
		}

	case reflect.Float32, reflect.Float64:
		return func(a, e reflect.Value, ctx Context) *Failure {
			return Equal[float64]()(a.Float(), e.Float(), ctx)
		}

	case reflect.String:
		return func(a, e reflect.Value, ctx Context) *Failure {
			return matchStrings(a.String(), e.String(), ctx)
		}

	case reflect.Slice:
		if typ.Elem().Kind() == reflect.Uint8 {
			return func(a, e reflect.Value, ctx Context) *Failure {
				return Bytes()(a.Bytes(), e.Bytes(), ctx)
			}
		}
		return sequenceFunc(typ)

	case reflect.Array:
		return sequenceFunc(typ)

	case reflect.Map:
		switch elem := typ.Elem(); {
		case elem.Kind() == reflect.Interface:
			// Comparable as a type, but the dynamic values may not be.
			return matchDynamicContents
		case elem.Comparable():
			// Covers sets too: struct{} is comparable.
			return matchContents
		}
		return nil

	case reflect.Interface:
		return matchDynamic
	}

	return nil
}

func sequenceFunc(typ reflect.Type) valueFunc {
	elemType := typ.Elem()
	return func(a, e reflect.Value, ctx Context) *Failure {
		elem := resolve(elemType)
		if elem == nil {
			panic(fmt.Errorf("match: no matcher for %s (element of %s)", elemType, typ))
		}
		return matchSequence(a.Interface(), e.Interface(), a.Len(), e.Len(), ctx, func(i int) *Failure {
			return elem(a.Index(i), e.Index(i), ctx)
		})
	}
}

// matchContents compares two maps as a whole, with == on the values.
func matchContents(a, e reflect.Value, ctx Context) *Failure {
	if !mapsEqual(a, e) {
		return NewFailure("contents differ", a.Interface(), e.Interface(), ctx)
	}
	return nil
}

// matchDynamicContents compares two maps with interface values as a whole,
// matching each pair of values by their dynamic type.
func matchDynamicContents(a, e reflect.Value, ctx Context) *Failure {
	same := mapsEqualFunc(a, e, func(av, ev reflect.Value) bool {
		return matchDynamic(av, ev, ctx) == nil
	})
	if !same {
		return NewFailure("contents differ", a.Interface(), e.Interface(), ctx)
	}
	return nil
}

func mapsEqual(a, e reflect.Value) bool {
	return mapsEqualFunc(a, e, reflect.Value.Equal)
}

func mapsEqualFunc(a, e reflect.Value, eq func(a, e reflect.Value) bool) bool {
	if a.Len() != e.Len() {
		return false
	}
	iter := a.MapRange()
	for iter.Next() {
		ev := e.MapIndex(iter.Key())
		if !ev.IsValid() || !eq(iter.Value(), ev) {
			return false
		}
	}
	return true
}

// matchDynamic matches two values held in interfaces by their dynamic type.
func matchDynamic(a, e reflect.Value, ctx Context) *Failure {
	switch {
	case a.IsNil() && e.IsNil():
		return nil
	case a.IsNil() || e.IsNil():
		return NewFailure("values differ", a.Interface(), e.Interface(), ctx)
	}
	a, e = a.Elem(), e.Elem()
	if a.Type() != e.Type() {
		return NewFailure(fmt.Sprintf("types differ: %s vs %s", a.Type(), e.Type()), a.Interface(), e.Interface(), ctx)
	}
	fn := resolve(a.Type())
	if fn == nil {
		panic(fmt.Errorf("match: no matcher for %s", a.Type()))
	}
	return fn(a, e, ctx)
}

// isMatchable returns true if typ has a method `Matches(typ, Context) *Failure`.
func isMatchable(typ reflect.Type) bool {
	m, ok := typ.MethodByName("Matches")
	if !ok {
		return false
	}
	mt := m.Type
	in := 0
	if typ.Kind() != reflect.Interface {
		in = 1 // skip the receiver
	}
	return mt.NumIn() == in+2 && mt.In(in) == typ && mt.In(in+1) == contextType &&
		mt.NumOut() == 1 && mt.Out(0) == failurePtrType
}

func matchMethod(a, e reflect.Value, ctx Context) *Failure {
	out := a.MethodByName("Matches").Call([]reflect.Value{e, reflect.ValueOf(ctx)})
	f, _ := out[0].Interface().(*Failure)
	return f
}
