// Package logging configures slog for the example programs.
package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelFlag is a flag.Value holding a log level name.
type LevelFlag struct {
	Value slog.Level
	set   bool
}

func (l *LevelFlag) String() string {
	return l.Value.String()
}

func (l *LevelFlag) Set(value string) error {
	m := map[string]slog.Level{"DEBUG": slog.LevelDebug, "INFO": slog.LevelInfo, "WARN": slog.LevelWarn, "ERROR": slog.LevelError}
	v, ok := m[strings.ToUpper(value)]
	if !ok {
		return fmt.Errorf("unknown log level")
	}
	l.Value = v
	l.set = true
	return nil
}

// Or returns the flag's level when it was given on the command line and
// fallback otherwise.
func (l *LevelFlag) Or(fallback slog.Level) slog.Level {
	if l.set {
		return l.Value
	}
	return fallback
}

// Setup installs a default slog logger at level. With a non-empty file
// name, output goes to a rotated log file instead of stderr. The returned
// closer releases the file.
func Setup(level slog.Level, file string) (*slog.Logger, io.Closer) {
	var w io.WriteCloser = nopCloser{os.Stderr}
	if file != "" {
		w = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		}
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	log.SetOutput(w)
	return logger, w
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
