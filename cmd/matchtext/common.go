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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/maruel/subcommands"
	gol "github.com/op/go-logging"
	"github.com/pkg/errors"

	"go.chromium.org/testext/common/logging"
	"go.chromium.org/testext/common/logging/gologger"
	"go.chromium.org/testext/common/testing/match"
)

const (
	exitMatch    = 0
	exitMismatch = 1
	exitError    = 2
)

type commonFlags struct {
	subcommands.CommandRunBase
	verbose  bool
	logLevel logging.Level
}

func (c *commonFlags) Init() {
	c.logLevel = logging.Warning
	c.Flags.BoolVar(&c.verbose, "v", false, "Append a diff of the two files to the report.")
	c.Flags.Var(&c.logLevel, "log-level", "Log level: debug, info, warning or error.")
}

// newContext returns a context logging to the application's stderr.
func (c *commonFlags) newContext(a subcommands.Application) context.Context {
	ctx := (&gologger.LoggerConfig{Out: a.GetErr(), Level: gol.DEBUG}).Use(context.Background())
	return logging.SetLevel(ctx, c.logLevel)
}

// parsePaths returns the absolute paths of the ACTUAL and EXPECTED
// arguments.
func parsePaths(args []string) (actual, expected string, err error) {
	if len(args) != 2 {
		return "", "", errors.Errorf("expected 2 positional arguments, got %d", len(args))
	}
	if actual, err = filepath.Abs(args[0]); err != nil {
		return "", "", errors.Wrap(err, "resolving ACTUAL")
	}
	if expected, err = filepath.Abs(args[1]); err != nil {
		return "", "", errors.Wrap(err, "resolving EXPECTED")
	}
	return actual, expected, nil
}

func readInputs(ctx context.Context, actualPath, expectedPath string) (actual, expected []byte, err error) {
	if actual, err = os.ReadFile(actualPath); err != nil {
		return nil, nil, errors.Wrap(err, "reading ACTUAL")
	}
	if expected, err = os.ReadFile(expectedPath); err != nil {
		return nil, nil, errors.Wrap(err, "reading EXPECTED")
	}
	logging.Debugf(ctx, "comparing %s (%s) with %s (%s)",
		actualPath, humanize.Bytes(uint64(len(actual))),
		expectedPath, humanize.Bytes(uint64(len(expected))))
	return actual, expected, nil
}

// report prints f, if any, and returns the exit status for it.
func (c *commonFlags) report(out io.Writer, f *match.Failure) int {
	if f == nil {
		return exitMatch
	}
	r := match.Renderer{Verbose: c.verbose, Colorize: match.ColorFromEnv()}
	fmt.Fprintln(out, r.Failure(f))
	return exitMismatch
}

// compareFiles reads the two files named by `args` and compares them with
// `compare`, which gets a Context whose origin is the EXPECTED file.
func (c *commonFlags) compareFiles(a subcommands.Application, args []string,
	compare func(actual, expected []byte, opts ...match.Option) *match.Failure) int {
	ctx := c.newContext(a)
	actualPath, expectedPath, err := parsePaths(args)
	if err != nil {
		logging.Errorf(logging.SetField(ctx, logging.ErrorKey, err), "bad arguments")
		return exitError
	}
	actual, expected, err := readInputs(ctx, actualPath, expectedPath)
	if err != nil {
		logging.Errorf(logging.SetField(ctx, logging.ErrorKey, err), "cannot compare files")
		return exitError
	}
	f := compare(actual, expected, match.WithOrigin(match.Origin{File: expectedPath}))
	if f != nil {
		logging.Infof(ctx, "%s does not match %s", actualPath, expectedPath)
	}
	return c.report(a.GetOut(), f)
}
