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

// Package gologger is a logging.Logger backed by the go-logging library.
package gologger

import (
	"context"
	"io"
	"os"

	gol "github.com/op/go-logging"

	"go.chromium.org/testext/common/logging"
)

// StandardFormat first prints process ID, time, filename, logging level
// and sequence number, all colored. Then the message.
const StandardFormat = `%{color} [P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]` +
	`%{color:reset} %{message}`

// StdConfig is the LoggerConfig used by the package-level functions.
//
// It writes messages of all levels to stderr.
var StdConfig = LoggerConfig{
	Format: StandardFormat,
	Out:    os.Stderr,
	Level:  gol.DEBUG,
}

// New creates new logging.Logger backed by go-logging library. The new logger
// writes (to the provided writer) messages of a given log level (or above).
// A caller is still responsible for closing the writer when no longer needed.
func New(w io.Writer, level gol.Level) logging.Logger {
	lc := &LoggerConfig{
		Format: StdConfig.Format,
		Out:    w,
		Level:  level,
	}
	return lc.getImpl()
}

// Get returns default global go-logging based logger. It writes >=DEBUG message
// to stderr.
func Get() logging.Logger {
	return StdConfig.getImpl()
}

// Use adds a default go-logging logger to the context.
func Use(c context.Context) context.Context {
	return StdConfig.Use(c)
}
