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

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrorKey is the Fields key for an error value.
const ErrorKey = "error"

// Fields is a set of key/value pairs attached to every message logged
// through a context.
type Fields map[string]any

type fieldsKeyType int

var fieldsKey fieldsKeyType

// SetField returns a context with the field `key` set to `value`.
func SetField(ctx context.Context, key string, value any) context.Context {
	return SetFields(ctx, Fields{key: value})
}

// SetFields returns a context with `fields` added to the context's fields.
//
// Keys in `fields` override existing keys.
func SetFields(ctx context.Context, fields Fields) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	existing := GetFields(ctx)
	merged := make(Fields, len(existing)+len(fields))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, &fieldsKey, merged)
}

// GetFields returns the fields of the context. The result must not be
// modified.
func GetFields(ctx context.Context) Fields {
	if ctx == nil {
		return nil
	}
	f, _ := ctx.Value(&fieldsKey).(Fields)
	return f
}

// String renders the fields as `{"key":value, ...}` in key order.
func (f Fields) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Quote(k) + ":" + formatFieldValue(f[k])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatFieldValue(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case error:
		return strconv.Quote(x.Error())
	case fmt.Stringer:
		return strconv.Quote(x.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}
