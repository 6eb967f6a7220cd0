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
)

// Failure describes a disagreement between two values.
//
// A nil *Failure means the values matched.
//
// When a composite value (a slice, a struct) fails because one of its parts
// failed, the composite's Failure holds the part's Failure as Cause. Each link
// in the chain corresponds to a strictly smaller part of the compared values,
// so the chain always ends.
type Failure struct {
	// Detail is a human readable description of what disagreed.
	Detail string

	// Actual and Expected are the two values which disagreed. They always have
	// the same type.
	Actual   any
	Expected any

	// Context is the context active when the disagreement was found.
	Context Context

	// Cause is the failure of a nested value which produced this one, if any.
	Cause *Failure
}

var _ error = (*Failure)(nil)

// NewFailure returns a leaf Failure.
func NewFailure(detail string, actual, expected any, ctx Context) *Failure {
	return &Failure{
		Detail:   detail,
		Actual:   actual,
		Expected: expected,
		Context:  ctx,
	}
}

// Wrap returns a Failure for a composite value which failed because of
// `cause`.
//
// If cause is nil, returns nil: there is nothing to wrap.
func Wrap(cause *Failure, detail string, actual, expected any, ctx Context) *Failure {
	if cause == nil {
		return nil
	}
	ret := NewFailure(detail, actual, expected, ctx)
	ret.Cause = cause
	return ret
}

// Innermost follows the Cause chain and returns its last link.
//
// Returns f itself if f has no Cause, and nil if f is nil.
func (f *Failure) Innermost() *Failure {
	if f == nil {
		return nil
	}
	for f.Cause != nil {
		f = f.Cause
	}
	return f
}

// Chain returns the failures in the Cause chain, outermost first.
func (f *Failure) Chain() []*Failure {
	var ret []*Failure
	for ; f != nil; f = f.Cause {
		ret = append(ret, f)
	}
	return ret
}

// Depth returns the number of links in the chain (0 for nil).
func (f *Failure) Depth() int {
	n := 0
	for ; f != nil; f = f.Cause {
		n++
	}
	return n
}

// Error implements error.
//
// It joins all the details from the outermost to the innermost failure.
func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	chain := f.Chain()
	details := make([]string, len(chain))
	for i, link := range chain {
		details[i] = link.Detail
	}
	return strings.Join(details, ": ")
}

// Unwrap returns the Cause as an error, so that errors.As can walk the chain.
func (f *Failure) Unwrap() error {
	if f == nil || f.Cause == nil {
		return nil
	}
	return f.Cause
}

// String renders the failure with the zero Renderer.
func (f *Failure) String() string {
	return Renderer{}.Failure(f)
}
