package glog

// Context is an immutable accumulator of named fields. Every mutator
// returns a new Context and leaves the receiver untouched, so a Context
// value may be shared and extended concurrently without coordination.
// The zero value is usable and equivalent to New().
//
// Emission operations forward the accumulated fields plus the message
// (under MessageKey) to the current Backend and return a fresh empty
// Context. The receiver stays valid: callers may keep extending or
// re-emitting it afterwards.
type Context struct {
	fields map[string]interface{}
}

// New returns a Context with an empty field mapping.
func New() Context {
	return Context{}
}

// Add returns a new Context whose mapping equals the receiver's with
// key set to value. An existing field with the same key is overwritten,
// including the reserved MessageKey (the emission operations will
// overwrite it again in turn). Values are taken as-is; no validation.
func (c Context) Add(key string, value interface{}) Context {
	next := make(map[string]interface{}, len(c.fields)+1)
	for k, v := range c.fields {
		next[k] = v
	}
	next[key] = value
	return Context{fields: next}
}

// AddField returns a new Context with the given field merged in.
func (c Context) AddField(f Field) Context {
	return c.Add(f.Key, f.Value)
}

// AddFields returns a new Context with all given fields merged in, in
// sequence order. Later duplicates within the sequence win, as do
// duplicates against the receiver's existing fields.
func (c Context) AddFields(fields ...Field) Context {
	if len(fields) == 0 {
		return c
	}
	next := make(map[string]interface{}, len(c.fields)+len(fields))
	for k, v := range c.fields {
		next[k] = v
	}
	for _, f := range fields {
		next[f.Key] = f.Value
	}
	return Context{fields: next}
}

// Fields returns a copy of the accumulated field mapping.
func (c Context) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(c.fields))
	for k, v := range c.fields {
		out[k] = v
	}
	return out
}

// Len returns the number of accumulated fields.
func (c Context) Len() int {
	return len(c.fields)
}

// Emergency emits the record at Emergency severity and returns a fresh
// empty Context. The receiver is unaffected and remains usable.
func (c Context) Emergency(msg string) Context { return c.emit(LevelEmergency, msg) }

// Alert emits the record at Alert severity.
func (c Context) Alert(msg string) Context { return c.emit(LevelAlert, msg) }

// Critical emits the record at Critical severity.
func (c Context) Critical(msg string) Context { return c.emit(LevelCritical, msg) }

// Error emits the record at Error severity.
func (c Context) Error(msg string) Context { return c.emit(LevelError, msg) }

// Warning emits the record at Warning severity.
func (c Context) Warning(msg string) Context { return c.emit(LevelWarning, msg) }

// Notice emits the record at Notice severity.
func (c Context) Notice(msg string) Context { return c.emit(LevelNotice, msg) }

// Info emits the record at Info severity.
func (c Context) Info(msg string) Context { return c.emit(LevelInfo, msg) }

// Debug emits the record at Debug severity.
func (c Context) Debug(msg string) Context { return c.emit(LevelDebug, msg) }

// Emergencyf formats the template with the given args and emits at
// Emergency severity. On a formatting error nothing is emitted and the
// receiver is returned unchanged alongside the error.
func (c Context) Emergencyf(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelEmergency, template, args)
}

// Alertf formats and emits at Alert severity.
func (c Context) Alertf(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelAlert, template, args)
}

// Criticalf formats and emits at Critical severity.
func (c Context) Criticalf(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelCritical, template, args)
}

// Errorf formats and emits at Error severity.
func (c Context) Errorf(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelError, template, args)
}

// Warningf formats and emits at Warning severity.
func (c Context) Warningf(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelWarning, template, args)
}

// Noticef formats and emits at Notice severity.
func (c Context) Noticef(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelNotice, template, args)
}

// Infof formats and emits at Info severity.
func (c Context) Infof(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelInfo, template, args)
}

// Debugf formats and emits at Debug severity.
func (c Context) Debugf(template string, args ...Arg) (Context, error) {
	return c.emitf(LevelDebug, template, args)
}

// emit snapshots the receiver's fields, writes the message under the
// reserved key last so it wins any collision, and hands exactly one
// record to the current backend.
func (c Context) emit(level Level, msg string) Context {
	fields := make(map[string]interface{}, len(c.fields)+1)
	for k, v := range c.fields {
		fields[k] = v
	}
	fields[MessageKey] = msg
	CurrentBackend().Emit(level, fields)
	return New()
}

func (c Context) emitf(level Level, template string, args []Arg) (Context, error) {
	msg, err := Format(template, args...)
	if err != nil {
		return c, err
	}
	return c.emit(level, msg), nil
}
