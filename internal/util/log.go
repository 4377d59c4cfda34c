// Package util holds small helpers shared across the order tools.
package util

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the process logger: human-readable console output on
// stdout plus JSON lines appended to a rotating file (5 MB per file, 3
// backups). An empty path disables the file sink.
func NewLogger(level, path string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	var w zerolog.LevelWriter = zerolog.MultiLevelWriter(console)
	if path != "" {
		file := &lumberjack.Logger{Filename: path, MaxSize: 5, MaxBackups: 3}
		w = zerolog.MultiLevelWriter(console, file)
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(lvl)
}
