package glog

import "io"

// PrimaryConfig is the backend-wide configuration applied through
// SetPrimaryConfig. The zero value (ConfigAll, no timestamp, no caller)
// is valid.
type PrimaryConfig struct {
	// Level is the global severity threshold. Records below it never
	// reach any handler.
	Level ConfigLevel
	// WithTimestamp stamps every record at emission time.
	WithTimestamp bool
	// SkipFrameCount enables caller annotation, skipping that many
	// stack frames above the emission call.
	SkipFrameCount int `validate:"gte=0"`
}

// DefaultPrimaryConfig is the primary configuration a ZerologBackend
// starts with: everything passes the global threshold and records carry
// timestamps.
func DefaultPrimaryConfig() PrimaryConfig {
	return PrimaryConfig{
		Level:         ConfigAll,
		WithTimestamp: true,
	}
}

// HandlerConfig describes one named output handler. Exactly one
// destination applies: a custom Writer, a rolling file at FilePath, or
// stderr when neither is set. Setting both Writer and FilePath is
// rejected. Console wraps the destination in human-readable single-line
// formatting instead of JSON.
type HandlerConfig struct {
	// Level is the handler-scoped severity threshold.
	Level ConfigLevel

	// Writer receives the handler's output when set.
	Writer io.Writer

	// FilePath routes output to a size-rotated log file.
	FilePath string
	// FileMaxBackups is the number of rotated files to retain.
	FileMaxBackups int `validate:"gte=0"`
	// FileMaxAgeDays is the retention age for rotated files.
	FileMaxAgeDays int `validate:"gte=0"`
	// FileMaxSizeMB is the size at which the file rotates.
	FileMaxSizeMB int `validate:"gte=0"`
	// FileCompress gzips rotated files.
	FileCompress bool

	// Console selects human-readable single-line output.
	Console bool
	// ConsoleNoColor disables ANSI colors in console output.
	ConsoleNoColor bool
	// ConsoleTimeFormat overrides the console timestamp layout.
	ConsoleTimeFormat string
}
