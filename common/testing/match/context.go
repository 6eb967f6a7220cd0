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
	"path/filepath"
	"runtime"
)

// Origin is the source location where a top-level comparison was started.
//
// The zero Origin means "unknown".
type Origin struct {
	File string
	Line int
}

// Here returns the Origin of the caller of Here, plus `skip` frames.
//
// Here(0) is the line calling Here, Here(1) is the line calling the function
// which called Here, and so on.
func Here(skip int) Origin {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Origin{}
	}
	return Origin{File: file, Line: line}
}

// Base returns the last path element of File.
func (o Origin) Base() string {
	if o.File == "" {
		return ""
	}
	return filepath.Base(o.File)
}

// IsZero returns true if the origin is unknown.
func (o Origin) IsZero() bool {
	return o.File == "" && o.Line == 0
}

func (o Origin) String() string {
	if o.Line <= 0 {
		return o.File
	}
	return fmt.Sprintf("%s:%d", o.File, o.Line)
}

// Options is the set of flags which adjust how values are compared.
//
// The zero value has no special behavior.
type Options struct {
	// IgnoreWhitespace makes string matching trim leading and trailing
	// whitespace from every line before comparing it.
	IgnoreWhitespace bool
}

// Context is the immutable state threaded through a single comparison.
//
// Build one with NewContext. Nested matchers receive exactly the Context
// given to the top-level matcher.
type Context struct {
	origin  Origin
	options Options
}

// NewContext returns a Context for a comparison started at `origin`.
func NewContext(origin Origin, options Options) Context {
	return Context{origin: origin, options: options}
}

// Origin returns the location where the comparison was started.
func (c Context) Origin() Origin { return c.origin }

// Options returns the comparison options.
func (c Context) Options() Options { return c.options }

// Option adjusts how Match and Compare build their Context.
type Option func(*settings)

type settings struct {
	origin  Origin
	options Options
}

// IgnoringWhitespace sets Options.IgnoreWhitespace.
func IgnoringWhitespace() Option {
	return func(s *settings) { s.options.IgnoreWhitespace = true }
}

// WithOptions replaces the Options wholesale.
func WithOptions(opts Options) Option {
	return func(s *settings) { s.options = opts }
}

// WithOrigin overrides the origin which would otherwise be computed from the
// caller's location.
func WithOrigin(origin Origin) Option {
	return func(s *settings) { s.origin = origin }
}

// newContextFromOptions applies opts. `caller` is only used if none of the
// opts set an origin.
func newContextFromOptions(caller Origin, opts []Option) Context {
	s := settings{origin: caller}
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}
	return NewContext(s.origin, s.options)
}
