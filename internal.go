package glog

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// handlerState is one named output handler: its configuration, the
// destination writer after console wrapping, the rolling file when
// file-backed, and the zerolog threshold derived from cfg.Level.
type handlerState struct {
	cfg    HandlerConfig
	writer io.Writer
	file   *lumberjack.Logger
	level  zerolog.Level
}

// newHandlerState validates cfg and builds the handler's destination.
// Precedence: custom Writer, then rolling file, then stderr. Console
// wrapping applies to whichever destination was picked.
func newHandlerState(cfg HandlerConfig) (*handlerState, error) {
	if err := validateHandlerConfig(&cfg); err != nil {
		return nil, err
	}

	h := &handlerState{
		cfg:   cfg,
		level: configLevelToZerolog(cfg.Level),
	}

	dest := cfg.Writer
	if dest == nil && cfg.FilePath != emptyString {
		h.file = newRollingFileWriter(cfg)
		dest = h.file
	}
	if dest == nil {
		dest = os.Stderr
	}
	if cfg.Console {
		dest = newConsoleWriter(dest, cfg)
	}
	h.writer = dest

	return h, nil
}

// leveled wraps the handler's destination so the composed logger can
// apply the per-handler threshold on every write.
func (h *handlerState) leveled() io.Writer {
	return &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: h.writer},
		Level:  h.level,
	}
}

func newRollingFileWriter(cfg HandlerConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxBackups: cfg.FileMaxBackups,
		MaxAge:     cfg.FileMaxAgeDays,
		MaxSize:    cfg.FileMaxSizeMB,
		Compress:   cfg.FileCompress,
	}
}

func newConsoleWriter(out io.Writer, cfg HandlerConfig) zerolog.ConsoleWriter {
	w := zerolog.ConsoleWriter{Out: out, NoColor: cfg.ConsoleNoColor}
	if cfg.ConsoleTimeFormat != emptyString {
		w.TimeFormat = cfg.ConsoleTimeFormat
	}
	return w
}

// stderrIsTerminal reports whether stderr is attached to a terminal,
// which gates color in the default formatting preset.
func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
