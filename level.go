package glog

import (
	"fmt"
	"strings"
)

// Level ranks the importance of a single log record. The severity set
// and its ordering follow syslog: Emergency > Alert > Critical > Error >
// Warning > Notice > Info > Debug. Numeric values ascend with severity,
// so Go's comparison operators agree with that ordering.
type Level uint8

const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelNotice
	LevelWarning
	LevelError
	LevelCritical
	LevelAlert
	LevelEmergency
)

// ConfigLevel is the threshold type used when configuring the backend.
// It widens the emission severities with two sentinels: ConfigAll admits
// every record and ConfigNone suppresses all of them. Sentinels are
// valid only for thresholds, never for emission, which is why this is a
// distinct type rather than a reuse of Level.
type ConfigLevel uint8

const (
	ConfigAll ConfigLevel = iota
	ConfigDebug
	ConfigInfo
	ConfigNotice
	ConfigWarning
	ConfigError
	ConfigCritical
	ConfigAlert
	ConfigEmergency
	ConfigNone
)

var (
	levelNames = map[Level]string{
		LevelDebug:     "debug",
		LevelInfo:      "info",
		LevelNotice:    "notice",
		LevelWarning:   "warning",
		LevelError:     "error",
		LevelCritical:  "critical",
		LevelAlert:     "alert",
		LevelEmergency: "emergency",
	}
	levelByName = make(map[string]Level, len(levelNames))

	configLevelNames = map[ConfigLevel]string{
		ConfigAll:       "all",
		ConfigDebug:     "debug",
		ConfigInfo:      "info",
		ConfigNotice:    "notice",
		ConfigWarning:   "warning",
		ConfigError:     "error",
		ConfigCritical:  "critical",
		ConfigAlert:     "alert",
		ConfigEmergency: "emergency",
		ConfigNone:      "none",
	}
	configLevelByName = make(map[string]ConfigLevel, len(configLevelNames))
)

func init() {
	for l, name := range levelNames {
		levelByName[name] = l
	}
	for l, name := range configLevelNames {
		configLevelByName[name] = l
	}
}

// String returns the level's lowercase name.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

func (l Level) valid() bool {
	_, ok := levelNames[l]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("unknown level: %d", uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseLevel parses a level name into a Level. Matching is
// case-insensitive. Returns an error for names outside the severity set.
func ParseLevel(name string) (Level, error) {
	if level, ok := levelByName[strings.ToLower(name)]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("unknown level: %q", name)
}

// String returns the config level's lowercase name.
func (l ConfigLevel) String() string {
	if name, ok := configLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("ConfigLevel(%d)", uint8(l))
}

func (l ConfigLevel) valid() bool {
	_, ok := configLevelNames[l]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (l ConfigLevel) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("unknown config level: %d", uint8(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *ConfigLevel) UnmarshalText(text []byte) error {
	level, err := ParseConfigLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// ParseConfigLevel parses a threshold name, including the "all" and
// "none" sentinels. Matching is case-insensitive.
func ParseConfigLevel(name string) (ConfigLevel, error) {
	if level, ok := configLevelByName[strings.ToLower(name)]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("unknown config level: %q", name)
}
