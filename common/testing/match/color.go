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
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorEnvVar selects whether reports are colorized: "always", "never" or
// "auto" (the default, colorize when stdout is a terminal).
const ColorEnvVar = "TESTEXT_COLOR"

// ColorFromEnv interprets ColorEnvVar.
func ColorFromEnv() bool {
	return colorMode(os.Getenv(ColorEnvVar), func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}

func colorMode(value string, isTerminal func() bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "always", "1", "true", "yes":
		return true
	case "never", "0", "false", "no":
		return false
	}
	return isTerminal()
}
