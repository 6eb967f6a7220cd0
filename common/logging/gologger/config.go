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

package gologger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	gol "github.com/op/go-logging"

	"go.chromium.org/testext/common/logging"
)

// LoggerConfig owns a go-logging Logger configuration.
type LoggerConfig struct {
	Format string    // see go-logging formatting, defaults to StandardFormat
	Out    io.Writer // where to write the log to, defaults to os.Stderr
	Level  gol.Level // the go-logging level; the zero value is gol.CRITICAL

	once sync.Once
	w    *goLoggerWrapper
}

// NewLogger returns a new logging.Logger instance bound to `c`, which may be
// nil.
func (lc *LoggerConfig) NewLogger(c context.Context) logging.Logger {
	lc.once.Do(func() {
		lc.w = &goLoggerWrapper{l: lc.newGoLogger()}
	})
	return &loggerImpl{lc.w, c}
}

// Use registers a go-logging based logger as the default logger of the
// context.
func (lc *LoggerConfig) Use(c context.Context) context.Context {
	return logging.SetFactory(c, lc.NewLogger)
}

func (lc *LoggerConfig) getImpl() logging.Logger {
	return lc.NewLogger(nil)
}

func (lc *LoggerConfig) newGoLogger() *gol.Logger {
	format := lc.Format
	if format == "" {
		format = StandardFormat
	}
	out := lc.Out
	if out == nil {
		out = os.Stderr
	}
	// Leveled formatted file backend.
	backend := gol.AddModuleLevel(
		gol.NewBackendFormatter(
			gol.NewLogBackend(out, "", 0),
			gol.MustStringFormatter(format)))
	backend.SetLevel(lc.Level, "")

	logger := gol.MustGetLogger("")
	logger.SetBackend(backend)
	return logger
}

// goLoggerWrapper serializes access to a go-logging Logger, whose
// ExtraCalldepth is adjusted for each call.
type goLoggerWrapper struct {
	sync.Mutex
	l *gol.Logger
}

type loggerImpl struct {
	w   *goLoggerWrapper
	ctx context.Context
}

func (li *loggerImpl) Debugf(format string, args ...any) {
	li.LogCall(logging.Debug, 1, format, args)
}

func (li *loggerImpl) Infof(format string, args ...any) {
	li.LogCall(logging.Info, 1, format, args)
}

func (li *loggerImpl) Warningf(format string, args ...any) {
	li.LogCall(logging.Warning, 1, format, args)
}

func (li *loggerImpl) Errorf(format string, args ...any) {
	li.LogCall(logging.Error, 1, format, args)
}

func (li *loggerImpl) LogCall(l logging.Level, calldepth int, format string, args []any) {
	if li.ctx != nil && !logging.IsLogging(li.ctx, l) {
		return
	}

	text := fmt.Sprintf(format, args...)
	if fields := logging.GetFields(li.ctx); len(fields) > 0 {
		text = fmt.Sprintf("%-44s %s", text, fields)
	}

	li.w.Lock()
	defer li.w.Unlock()

	// One frame for LogCall itself.
	li.w.l.ExtraCalldepth = calldepth + 1
	switch l {
	case logging.Debug:
		li.w.l.Debugf("%s", text)
	case logging.Info:
		li.w.l.Infof("%s", text)
	case logging.Warning:
		li.w.l.Warningf("%s", text)
	default:
		li.w.l.Errorf("%s", text)
	}
}
