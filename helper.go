package glog

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// levelToZerolog maps an emission severity onto zerolog's scale. The
// mapping is monotone: Notice collapses into Info, Critical and Alert
// into Fatal, Emergency into Panic. Records always go out through
// WithLevel, so the fatal and panic mappings never terminate the
// process.
func levelToZerolog(level Level) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo, LevelNotice:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelCritical, LevelAlert:
		return zerolog.FatalLevel
	case LevelEmergency:
		return zerolog.PanicLevel
	default:
		return zerolog.NoLevel
	}
}

// configLevelToZerolog maps a threshold onto zerolog's scale with the
// same collapsing as levelToZerolog. A ConfigNotice threshold therefore
// also admits Info records; the two severities are indistinguishable
// once mapped. Sentinels map to the open and closed ends of the scale.
func configLevelToZerolog(level ConfigLevel) zerolog.Level {
	switch level {
	case ConfigAll:
		return zerolog.TraceLevel
	case ConfigDebug:
		return zerolog.DebugLevel
	case ConfigInfo, ConfigNotice:
		return zerolog.InfoLevel
	case ConfigWarning:
		return zerolog.WarnLevel
	case ConfigError:
		return zerolog.ErrorLevel
	case ConfigCritical, ConfigAlert:
		return zerolog.FatalLevel
	case ConfigEmergency:
		return zerolog.PanicLevel
	case ConfigNone:
		return zerolog.Disabled
	default:
		return zerolog.TraceLevel
	}
}

// buildErrorChain walks an error's cause chain via errors.Unwrap and
// returns the messages outermost -> innermost plus the root message.
// It guards against excessive depth and repeated messages to avoid
// cycles.
func buildErrorChain(err error) (chain []string, root string) {
	const maxDepth = 50

	seen := map[string]bool{}
	for err != nil && len(chain) < maxDepth {
		msg := err.Error()
		// avoid infinite loops if messages repeat due to unusual cycles
		if seen[msg] {
			break
		}
		seen[msg] = true
		chain = append(chain, msg)
		err = errors.Unwrap(err)
	}

	if len(chain) > 0 {
		root = chain[len(chain)-1]
	}
	return
}

// joinChain returns a single string for the error chain separated by " -> ".
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return emptyString
	}
	return strings.Join(chain, " -> ")
}
