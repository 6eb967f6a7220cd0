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

var cmdBytes = &subcommands.Command{
	UsageLine: "bytes <options> ACTUAL EXPECTED",
	ShortDesc: "compares two files byte by byte",
	LongDesc:  "Compares two files byte by byte and reports the first byte which differs.",
	CommandRun: func() subcommands.CommandRun {
		c := &bytesRun{}
		c.Init()
		return c
	},
}

type bytesRun struct {
	commonFlags
}

func (c *bytesRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	return c.compareFiles(a, args, func(actual, expected []byte, opts ...match.Option) *match.Failure {
		return match.Compare(actual, expected, match.Bytes(), opts...)
	})
}
