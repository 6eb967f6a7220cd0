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

// Command matchtext compares files the way match.Strings and match.Bytes
// compare values in tests, and prints the same failure report.
//
// Exit status is 0 if the files match, 1 if they do not and 2 if they could
// not be compared.
package main

import (
	"os"

	"github.com/maruel/subcommands"
)

var application = &subcommands.DefaultApplication{
	Name:  "matchtext",
	Title: "Compares files and reports the first mismatch.",
	// Keep in alphabetical order of their name.
	Commands: []*subcommands.Command{
		cmdBytes,
		subcommands.CmdHelp,
		cmdLines,
	},
}

func main() {
	os.Exit(subcommands.Run(application, nil))
}
