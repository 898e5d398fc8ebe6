// Package logging builds the zerolog logger shared by the CLI commands.
//
// Timestamp and caller fields are added by a per-logger hook, so importing
// this package leaves the zerolog globals untouched.
package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

const callerWidth = 24

// Frames between the hook and the logging call site: the hook itself,
// HookFunc.Run, Event.msg and Event.Msg (or Msgf, Send).
const callerSkip = 4

// New returns a logger writing to w at the given level. Unknown levels fall
// back to info; format is "json" or "console".
func New(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if strings.ToLower(format) != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: milliTimeFormat, NoColor: true}
	}

	return zerolog.New(out).
		Level(lvl).
		Hook(zerolog.HookFunc(stamp))
}

func stamp(e *zerolog.Event, _ zerolog.Level, _ string) {
	e.Str(zerolog.TimestampFieldName, time.Now().Format(milliTimeFormat))
	if _, file, line, ok := runtime.Caller(callerSkip); ok {
		e.Str(zerolog.CallerFieldName, caller(file, line))
	}
}

// caller renders file:line at a fixed width so console columns line up.
func caller(file string, line int) string {
	path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
	if len(path) >= callerWidth {
		return path[len(path)-callerWidth:]
	}
	return path + strings.Repeat(" ", callerWidth-len(path))
}

// Timer logs msg with the elapsed time when the returned func is called.
func Timer(logger zerolog.Logger, msg string) func() {
	start := time.Now()
	return func() {
		logger.Info().Dur("elapsed", time.Since(start)).Msg(msg)
	}
}
