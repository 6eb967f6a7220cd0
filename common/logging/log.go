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

package logging

import "context"

// logAt sends a message to the context's Logger. Debugf and friends call it,
// so LogCall sees two frames between itself and the original caller.
func logAt(ctx context.Context, l Level, format string, args []any) {
	Get(ctx).LogCall(l, 2, format, args)
}

// Debugf logs at Debug through the context's Logger.
func Debugf(ctx context.Context, format string, args ...any) { logAt(ctx, Debug, format, args) }

// Infof logs at Info through the context's Logger.
func Infof(ctx context.Context, format string, args ...any) { logAt(ctx, Info, format, args) }

// Warningf logs at Warning through the context's Logger.
func Warningf(ctx context.Context, format string, args ...any) { logAt(ctx, Warning, format, args) }

// Errorf logs at Error through the context's Logger.
func Errorf(ctx context.Context, format string, args ...any) { logAt(ctx, Error, format, args) }
