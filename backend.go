package glog

import "go.uber.org/atomic"

// Backend is the narrow adapter contract to the platform logging
// facility. Emit hands over one composed record; the remaining
// operations are thin configuration pass-throughs. Any failure signal a
// configuration call produces comes from the backend itself and is
// returned unmodified; this core adds no retries or fallbacks.
type Backend interface {
	Emit(level Level, fields map[string]interface{})
	SetPrimaryLevel(level ConfigLevel) error
	SetHandlerLevel(handler string, level ConfigLevel) error
	SetDefaultFormatting() error
	SetPrimaryConfig(cfg PrimaryConfig) error
	SetHandlerConfig(handler string, cfg HandlerConfig) error
}

// current holds the process-wide default backend. Swapped atomically so
// emission never observes a torn value.
var current atomic.Pointer[Backend]

func init() {
	b := Backend(NewZerologBackend())
	current.Store(&b)
}

// CurrentBackend returns the backend emission and the package-level
// configuration functions delegate to.
func CurrentBackend() Backend {
	if p := current.Load(); p != nil {
		return *p
	}
	return nopBackend{}
}

// SetBackend installs b as the default backend and returns the previous
// one. Passing nil installs a no-op backend that drops every record.
func SetBackend(b Backend) Backend {
	if b == nil {
		b = nopBackend{}
	}
	prev := current.Swap(&b)
	if prev == nil {
		return nopBackend{}
	}
	return *prev
}

// SetPrimaryLevel sets the default backend's global severity threshold.
func SetPrimaryLevel(level ConfigLevel) error {
	return CurrentBackend().SetPrimaryLevel(level)
}

// SetHandlerLevel sets the severity threshold of one named output
// handler on the default backend.
func SetHandlerLevel(handler string, level ConfigLevel) error {
	return CurrentBackend().SetHandlerLevel(handler, level)
}

// SetDefaultFormatting installs the opinionated single-line console
// preset on the default backend's default handler.
func SetDefaultFormatting() error {
	return CurrentBackend().SetDefaultFormatting()
}

// SetPrimaryConfig applies a full primary configuration to the default
// backend.
func SetPrimaryConfig(cfg PrimaryConfig) error {
	return CurrentBackend().SetPrimaryConfig(cfg)
}

// SetHandlerConfig applies a full handler configuration to one named
// output handler on the default backend.
func SetHandlerConfig(handler string, cfg HandlerConfig) error {
	return CurrentBackend().SetHandlerConfig(handler, cfg)
}

// nopBackend drops records and accepts configuration silently.
type nopBackend struct{}

func (nopBackend) Emit(Level, map[string]interface{})           {}
func (nopBackend) SetPrimaryLevel(ConfigLevel) error            { return nil }
func (nopBackend) SetHandlerLevel(string, ConfigLevel) error    { return nil }
func (nopBackend) SetDefaultFormatting() error                  { return nil }
func (nopBackend) SetPrimaryConfig(PrimaryConfig) error         { return nil }
func (nopBackend) SetHandlerConfig(string, HandlerConfig) error { return nil }
