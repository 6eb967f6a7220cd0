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

package testfiles

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// Decode unmarshals the JSON or YAML fixture `name` into `v`.
//
// YAML is converted to JSON first, so `v` is populated according to its
// `json` struct tags either way.
func Decode(t testing.TB, name string, v any) {
	t.Helper()
	if err := yaml.Unmarshal(Data(t, name), v); err != nil {
		t.Fatal(errors.Wrapf(err, "decoding fixture %q", name))
	}
}

// AsJSON returns `v` as indented JSON.
//
// Map keys are sorted, so the result is stable and can be compared with a
// golden file.
func AsJSON(t testing.TB, v any) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatal(errors.Wrapf(err, "encoding %T", v))
	}
	return string(data)
}

// FromJSON decodes `s` into a new T.
func FromJSON[T any](t testing.TB, s string) T {
	t.Helper()
	var ret T
	if err := json.Unmarshal([]byte(s), &ret); err != nil {
		t.Fatal(errors.Wrapf(err, "decoding %T", ret))
	}
	return ret
}
