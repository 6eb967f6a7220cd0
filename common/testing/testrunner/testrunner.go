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

// Package testrunner runs an executable from a test and captures its exit
// status and output for matching.
//
// Example:
//
//	r, err := testrunner.InProductsDir("mytool")
//	if err != nil {
//	  t.Fatal(err)
//	}
//	res, err := r.Run(ctx, "--version")
//	if err != nil {
//	  t.Fatal(err)
//	}
//	assert.Matches(t, *res, testrunner.Expect(0, "mytool 1.0\n", ""), match.IgnoringWhitespace())
package testrunner

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"go.chromium.org/testext/common/logging"
)

// Runner launches one executable.
type Runner struct {
	// Executable is the path of the program to run.
	Executable string

	// Dir is the working directory. Empty means the caller's.
	Dir string

	// Env is the environment of the process. Nil means the caller's.
	Env []string
}

// New returns a Runner for `executable`.
func New(executable string) *Runner {
	return &Runner{Executable: executable}
}

// InProductsDir returns a Runner for the executable `name` found next to the
// running test binary.
func InProductsDir(name string) (*Runner, error) {
	me, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(err, "resolving test executable")
	}
	return New(filepath.Join(filepath.Dir(me), name)), nil
}

// Run runs the executable with `args` and waits for it to exit.
//
// The returned error is only about failing to run the process (it could not
// be started, or ctx was done first); a non-zero exit status is reported in
// the Result.
func (r *Runner) Run(ctx context.Context, args ...string) (*Result, error) {
	ctx = logging.SetField(ctx, "exe", filepath.Base(r.Executable))

	cmd := exec.CommandContext(ctx, r.Executable, args...)
	cmd.Dir = r.Dir
	cmd.Env = r.Env
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Debugf(ctx, "running %q in %q", args, r.Dir)
	err := cmd.Run()
	if err := ctx.Err(); err != nil {
		logging.Warningf(ctx, "stopped before exiting: %s", err)
		return nil, errors.Wrapf(err, "running %s", r.Executable)
	}

	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	switch e := err.(type) {
	case nil:
	case *exec.ExitError:
		res.Status = e.ExitCode()
	default:
		return nil, errors.Wrapf(err, "running %s", r.Executable)
	}

	logging.Debugf(ctx, "exit status %d, %s of stdout, %s of stderr",
		res.Status, humanize.Bytes(uint64(stdout.Len())), humanize.Bytes(uint64(stderr.Len())))
	return res, nil
}
