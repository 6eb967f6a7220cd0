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

// Package testfiles locates test fixtures and test output files.
//
// Fixtures are looked up in the package's testdata/ directory first, then in
// the directory named by $TEST_RESOURCES. Output files go to a per-test
// directory under $TEST_OUTPUT, so that they survive the test run for later
// inspection, or to a temporary directory if $TEST_OUTPUT is not set.
package testfiles

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	// OutputEnvVar names the root directory for test output files.
	OutputEnvVar = "TEST_OUTPUT"

	// ResourcesEnvVar names an extra directory to search for fixtures.
	ResourcesEnvVar = "TEST_RESOURCES"
)

// OutputDir returns a directory for the output files of the running test.
//
// With $TEST_OUTPUT set, this is $TEST_OUTPUT/<package dir>/<test name>,
// created if needed and left in place after the test. Otherwise it is
// t.TempDir().
func OutputDir(t testing.TB) string {
	t.Helper()
	root := os.Getenv(OutputEnvVar)
	if root == "" {
		return t.TempDir()
	}
	dir, err := outputDir(root, t.Name())
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func outputDir(root, testName string) (string, error) {
	root, err := homedir.Expand(root)
	if err != nil {
		return "", errors.Wrapf(err, "expanding $%s", OutputEnvVar)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "getting working directory")
	}
	dir := filepath.Join(root, filepath.Base(cwd), sanitize(testName))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating output directory %q", dir)
	}
	return dir, nil
}

// sanitize turns a subtest name into a single path element.
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}

// OutputFile returns the path of a file named `name`.`ext` in OutputDir.
//
// An empty name means "test". Any file left there by a previous run is
// removed. The file itself is not created.
func OutputFile(t testing.TB, name, ext string) string {
	t.Helper()
	path := filepath.Join(OutputDir(t), fileName(name, ext))
	if err := removeStale(path); err != nil {
		t.Fatal(err)
	}
	return path
}

// TempFile is like OutputFile, but always uses a fresh temporary directory.
func TempFile(t testing.TB, name, ext string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), fileName(name, ext))
}

func fileName(name, ext string) string {
	if name == "" {
		name = "test"
	}
	if ext == "" {
		return name
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

func removeStale(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing stale output %q", path)
	}
	return nil
}

// Path returns the path of the fixture `name`.
//
// Fails the test if it cannot be found.
func Path(t testing.TB, name string) string {
	t.Helper()
	path, err := lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func lookup(name string) (string, error) {
	candidates := []string{filepath.Join("testdata", name)}
	if res := os.Getenv(ResourcesEnvVar); res != "" {
		res, err := homedir.Expand(res)
		if err != nil {
			return "", errors.Wrapf(err, "expanding $%s", ResourcesEnvVar)
		}
		candidates = append(candidates, filepath.Join(res, name))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return filepath.Abs(c)
		}
	}
	return "", errors.Errorf("fixture %q not found in %s", name, strings.Join(candidates, ", "))
}

// Data returns the contents of the fixture `name`.
func Data(t testing.TB, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(Path(t, name))
	if err != nil {
		t.Fatal(errors.Wrapf(err, "reading fixture %q", name))
	}
	return data
}

// String returns the contents of the fixture `name` as a string.
func String(t testing.TB, name string) string {
	t.Helper()
	return string(Data(t, name))
}

// Flag returns true if the environment variable `name` holds a true value as
// understood by strconv.ParseBool.
//
// Unset and unparsable values are false.
func Flag(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
