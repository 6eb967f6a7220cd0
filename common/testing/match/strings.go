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
	"strings"
)

// Strings matches two strings line by line.
//
// The first line which differs is reported, with just the two differing lines
// as the failure's Actual and Expected values. If the common lines all match
// but one string has more lines than the other, the surplus lines are
// reported.
//
// With Options.IgnoreWhitespace, leading and trailing whitespace is trimmed
// from each line before it is compared.
func Strings() Func[string] {
	return matchStrings
}

func matchStrings(actual, expected string, ctx Context) *Failure {
	if actual == expected {
		return nil
	}

	lines := strings.Split(actual, "\n")
	expectedLines := strings.Split(expected, "\n")
	common := min(len(lines), len(expectedLines))
	trim := ctx.Options().IgnoreWhitespace

	for n := 0; n < common; n++ {
		line, expectedLine := lines[n], expectedLines[n]
		if trim {
			line = strings.TrimSpace(line)
			expectedLine = strings.TrimSpace(expectedLine)
		}
		if line != expectedLine {
			return NewFailure(fmt.Sprintf("strings different at line %d", n), line, expectedLine, ctx)
		}
	}

	switch {
	case len(lines) < len(expectedLines):
		missing := surplus(expectedLines[common:])
		return NewFailure(
			fmt.Sprintf("%d lines missing from string\n\n%s", len(expectedLines)-common, missing),
			actual, expected, ctx)

	case len(lines) > len(expectedLines):
		extra := surplus(lines[common:])
		return NewFailure(
			fmt.Sprintf("%d extra lines in string\n\n%s", len(lines)-common, extra),
			actual, expected, ctx)
	}

	// Only reachable with IgnoreWhitespace: every line matched once trimmed.
	return nil
}

// surplus renders the lines one string has beyond the other. Lines which are
// all blank (typically from a trailing newline) would render as nothing, so
// they are named instead.
func surplus(lines []string) string {
	joined := strings.Join(lines, "\n")
	if strings.TrimSpace(joined) == "" {
		return "(blank lines only)"
	}
	return joined
}
