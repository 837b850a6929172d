package glog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// UnknownHandlerError reports a configuration call naming a handler the
// backend does not have.
type UnknownHandlerError struct {
	Name string
}

func (e *UnknownHandlerError) Error() string {
	return fmt.Sprintf("unknown log handler %q", e.Name)
}

// ZerologBackend routes records to a set of named output handlers
// composed into a single zerolog logger. Each handler carries its own
// severity threshold on top of the primary threshold. Configuration
// calls rebuild the composed logger and swap it in atomically, so they
// are safe to interleave with concurrent Emit calls. The closed flag
// is re-checked under the mutex, so a configuration call racing Close
// can never rebuild the logger or reopen files once Close has run.
type ZerologBackend struct {
	mu       sync.Mutex
	handlers map[string]*handlerState
	primary  PrimaryConfig
	logger   atomic.Pointer[zerolog.Logger]
	closed   atomic.Bool
}

// NewZerologBackend returns a backend with a single stderr JSON handler
// named DefaultHandler and the default primary configuration.
func NewZerologBackend() *ZerologBackend {
	b := &ZerologBackend{
		handlers: make(map[string]*handlerState),
		primary:  DefaultPrimaryConfig(),
	}
	// a bare stderr handler config cannot fail validation
	h, _ := newHandlerState(HandlerConfig{Level: ConfigAll})
	b.handlers[DefaultHandler] = h
	b.rebuild()
	return b
}

// Emit forwards one record. The reserved MessageKey field becomes the
// record's message (zerolog renders it under its own message slot); the
// remaining fields are attached as-is, with zerolog sorting keys in the
// output. Every field holding an error additionally gets the derived
// <key>_chain, <key>_root and <key>_history fields. Records at
// Critical, Alert and Emergency go out through WithLevel mappings that
// never terminate the process. Emitting on a closed backend drops the
// record.
func (b *ZerologBackend) Emit(level Level, fields map[string]interface{}) {
	logger := b.logger.Load()
	if logger == nil {
		return
	}

	msg := emptyString
	if raw, ok := fields[MessageKey]; ok {
		if s, isString := raw.(string); isString {
			msg = s
		} else {
			msg = fmt.Sprint(raw)
		}
	}

	rest := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if k == MessageKey {
			continue
		}
		rest[k] = v
		if err, isErr := v.(error); isErr && err != nil {
			if chain, root := buildErrorChain(err); len(chain) > 0 {
				rest[k+"_chain"] = chain
				rest[k+"_root"] = root
				rest[k+"_history"] = joinChain(chain)
			}
		}
	}

	logger.WithLevel(levelToZerolog(level)).Fields(rest).Msg(msg)
}

// SetPrimaryLevel sets the global severity threshold.
func (b *ZerologBackend) SetPrimaryLevel(level ConfigLevel) error {
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	if !level.valid() {
		return fmt.Errorf("%s: %s", errMsgBadConfigLevel, level)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	b.primary.Level = level
	b.rebuild()
	return nil
}

// SetHandlerLevel sets the severity threshold of one named handler.
// Returns *UnknownHandlerError when no handler has that name.
func (b *ZerologBackend) SetHandlerLevel(handler string, level ConfigLevel) error {
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	if !level.valid() {
		return fmt.Errorf("%s: %s", errMsgBadConfigLevel, level)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	h, ok := b.handlers[handler]
	if !ok {
		return &UnknownHandlerError{Name: handler}
	}
	h.cfg.Level = level
	h.level = configLevelToZerolog(level)
	b.rebuild()
	return nil
}

// SetDefaultFormatting switches the default handler to single-line
// console output with time-only timestamps, keeping its destination and
// threshold. Color stays on only when the destination is a terminal.
func (b *ZerologBackend) SetDefaultFormatting() error {
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	h, ok := b.handlers[DefaultHandler]
	if !ok {
		return &UnknownHandlerError{Name: DefaultHandler}
	}

	cfg := h.cfg
	cfg.Console = true
	cfg.ConsoleTimeFormat = time.TimeOnly
	cfg.ConsoleNoColor = true
	if cfg.Writer == nil && cfg.FilePath == emptyString {
		cfg.ConsoleNoColor = !stderrIsTerminal()
	}

	next, err := newHandlerState(cfg)
	if err != nil {
		return err
	}
	b.replaceHandler(DefaultHandler, next)
	return nil
}

// SetPrimaryConfig replaces the backend-wide configuration.
func (b *ZerologBackend) SetPrimaryConfig(cfg PrimaryConfig) error {
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	if err := validatePrimaryConfig(&cfg); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	b.primary = cfg
	b.rebuild()
	return nil
}

// SetHandlerConfig replaces the configuration of one named handler,
// creating the handler when it does not exist yet.
func (b *ZerologBackend) SetHandlerConfig(handler string, cfg HandlerConfig) error {
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	if handler == emptyString {
		return errors.New(errMsgEmptyHandlerName)
	}

	next, err := newHandlerState(cfg)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed.Load() {
		return errors.New(errMsgClosed)
	}
	b.replaceHandler(handler, next)
	return nil
}

// Handlers returns the names of the configured handlers, sorted.
func (b *ZerologBackend) Handlers() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close drops the composed logger so emission becomes a no-op, then
// closes every file-backed handler. It's safe to call Close multiple
// times; later configuration calls fail with a closed-backend error.
func (b *ZerologBackend) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger.Store(nil)

	var firstErr error
	for _, h := range b.handlers {
		if h.file == nil {
			continue
		}
		if err := h.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// replaceHandler swaps in a rebuilt handler, closing the previous
// rolling file if there was one. Callers must hold b.mu.
func (b *ZerologBackend) replaceHandler(name string, next *handlerState) {
	if prev, ok := b.handlers[name]; ok && prev.file != nil {
		_ = prev.file.Close()
	}
	b.handlers[name] = next
	b.rebuild()
}

// rebuild recomposes the zerolog logger from the handler set and the
// primary configuration, then swaps it in atomically. Handlers are
// composed in sorted name order so output interleaving is stable.
// Callers must hold b.mu.
func (b *ZerologBackend) rebuild() {
	names := make([]string, 0, len(b.handlers))
	for name := range b.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	writers := make([]io.Writer, 0, len(names))
	for _, name := range names {
		writers = append(writers, b.handlers[name].leveled())
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(configLevelToZerolog(b.primary.Level))
	if b.primary.WithTimestamp {
		logger = logger.With().Timestamp().Logger()
	}
	if b.primary.SkipFrameCount > 0 {
		logger = logger.With().CallerWithSkipFrameCount(b.primary.SkipFrameCount).Logger()
	}

	b.logger.Store(&logger)
}
