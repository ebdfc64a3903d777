package main

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

// newLogger builds the process logger. format "console" forces human-readable
// output, "json" forces JSON; otherwise console is used only on a terminal.
func newLogger(level, format string, out *os.File) *log.Logger {
	logger := &log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}

	console := format == "console" || (format != "json" && log.IsTerminal(out.Fd()))
	var w io.Writer = out
	if console {
		logger.Writer = &log.ConsoleWriter{
			ColorOutput:    true,
			QuoteString:    true,
			EndWithMessage: true,
			Writer:         w,
		}
	} else {
		logger.Writer = &log.IOWriter{Writer: w}
	}
	return logger
}
