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
	"encoding/hex"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/mgutz/ansi"
	"github.com/pmezard/go-difflib/difflib"
)

// Renderer formats a Failure as a multi-line report.
//
// The report describes the innermost failure of the chain, since it is the
// most specific, and then lists the enclosing failures which led to it.
type Renderer struct {
	// If true, a diff of the two outermost values is appended to the report.
	Verbose bool

	// If true, will add ANSI color codes to the header and to diff lines.
	Colorize bool
}

// Failure renders f. Returns "" for a nil failure.
func (r Renderer) Failure(f *Failure) string {
	if f == nil {
		return ""
	}
	inner := f.Innermost()
	origin := inner.Context.Origin()

	header := headerLine(origin)
	sep := strings.Repeat("-", utf8.RuneCountInString(header))
	if r.Colorize {
		header = ansi.Color(header, "red+b")
	}

	lines := []string{
		sep,
		header,
		sep,
		"",
		inner.Detail,
		"",
		"was: " + formatValue(inner.Actual),
		"expected: " + formatValue(inner.Expected),
		"path: " + origin.File,
	}

	if chain := f.Chain(); len(chain) > 1 {
		lines = append(lines, "", "while matching:")
		for i := len(chain) - 2; i >= 0; i-- {
			lines = append(lines, "    "+chain[i].Detail)
		}
	}

	if r.Verbose {
		if diff := r.diff(f.Actual, f.Expected); len(diff) > 0 {
			lines = append(lines, "", "diff:")
			for _, line := range diff {
				lines = append(lines, "    "+line)
			}
		}
	}

	return strings.Join(lines, "\n")
}

func headerLine(origin Origin) string {
	switch {
	case origin.File == "":
		return "Check failed at an unknown location."
	case origin.Line <= 0:
		return fmt.Sprintf("Check failed in %s.", origin.Base())
	}
	return fmt.Sprintf("Check failed at line %d of %s.", origin.Line, origin.Base())
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// diff returns the lines of a diff between actual and expected, or nil if no
// useful diff could be produced.
func (r Renderer) diff(actual, expected any) []string {
	var raw string
	switch a := actual.(type) {
	case string:
		e, _ := expected.(string)
		var err error
		raw, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(e),
			B:        difflib.SplitLines(a),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  3,
		})
		if err != nil {
			return nil
		}

	case []byte:
		e, _ := expected.([]byte)
		raw = "actual:\n" + hex.Dump(a) + "expected:\n" + hex.Dump(e)

	default:
		raw = cmpDiff(actual, expected)
	}

	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")
	if r.Colorize {
		colorizeDiff(lines)
	}
	return lines
}

// cmpDiff returns cmp.Diff of the two values, or "" if cmp cannot handle them.
func cmpDiff(actual, expected any) (ret string) {
	defer func() {
		if recover() != nil {
			ret = ""
		}
	}()
	return cmp.Diff(expected, actual, cmp.Exporter(func(reflect.Type) bool { return true }))
}

func colorizeDiff(lines []string) {
	for i, line := range lines {
		code := ""
		switch {
		case strings.HasPrefix(line, "--- "):
			code = ansi.LightGreen
		case strings.HasPrefix(line, "-"):
			code = ansi.Green
		case strings.HasPrefix(line, "+++ "):
			code = ansi.LightRed
		case strings.HasPrefix(line, "+"), strings.HasPrefix(line, "@@ "):
			code = ansi.Red
		}
		if code != "" {
			lines[i] = code + line + ansi.Reset
		}
	}
}
