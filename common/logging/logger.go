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

// Package logging defines a context-bound logging interface.
//
// A Logger is installed into a context.Context with SetFactory (usually
// through a backend, e.g. gologger.Use) and retrieved with Get. The
// package-level functions (Infof, Errorf, ...) log through the context's
// Logger, dropping messages below the context's Level.
//
// With no Logger installed, messages are discarded.
package logging

import (
	"context"
)

// Logger is a logging backend.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)

	// LogCall logs a message at `l`. `calldepth` is the number of stack
	// frames between the caller of the logging function and LogCall.
	LogCall(l Level, calldepth int, format string, args []any)
}

// Factory returns a Logger bound to a context.
type Factory func(context.Context) Logger

type factoryKeyType int

var factoryKey factoryKeyType

// SetFactory returns a context which uses `f` to build its Logger.
func SetFactory(ctx context.Context, f Factory) context.Context {
	return context.WithValue(ctx, &factoryKey, f)
}

// GetFactory returns the Factory installed in the context, or nil.
func GetFactory(ctx context.Context) Factory {
	if f, ok := ctx.Value(&factoryKey).(Factory); ok {
		return f
	}
	return nil
}

// Get returns the Logger bound to the context.
//
// Returns a Logger which discards everything if there is none.
func Get(ctx context.Context) Logger {
	if f := GetFactory(ctx); f != nil {
		if l := f(ctx); l != nil {
			return l
		}
	}
	return Null
}

// Null is a Logger which discards everything.
var Null Logger = nullLogger{}

type nullLogger struct{}

func (nullLogger) Debugf(string, ...any) {}
func (nullLogger) Infof(string, ...any) {}
func (nullLogger) Warningf(string, ...any) {}
func (nullLogger) Errorf(string, ...any) {}
func (nullLogger) LogCall(Level, int, string, []any) {}
