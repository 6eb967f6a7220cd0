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

package main

import (
	"github.com/maruel/subcommands"

	"go.chromium.org/testext/common/testing/match"
)

var cmdLines = &subcommands.Command{
	UsageLine: "lines <options> ACTUAL EXPECTED",
	ShortDesc: "compares two text files line by line",
	LongDesc: `Compares two text files line by line.

Reports the first line which differs, or how many lines are missing or extra
once all the common lines match.`,
	CommandRun: func() subcommands.CommandRun {
		c := &linesRun{}
		c.Init()
		c.Flags.BoolVar(&c.ignoreWhitespace, "ignore-whitespace", false,
			"Ignore leading and trailing whitespace on each line.")
		return c
	},
}

type linesRun struct {
	commonFlags
	ignoreWhitespace bool
}

func (c *linesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.compareFiles(a, args, func(actual, expected []byte, opts ...match.Option) *match.Failure {
		opts = append(opts, match.WithOptions(match.Options{IgnoreWhitespace: c.ignoreWhitespace}))
		return match.Compare(string(actual), string(expected), match.Strings(), opts...)
	})
}
