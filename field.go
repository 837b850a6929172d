package glog

import "time"

// Field is a single named, typed value destined for structured output.
// Fields are immutable; merge identity is the Key, so adding a field
// whose key already exists in a Context overwrites the previous value.
type Field struct {
	Key   string
	Value interface{}
}

// Str returns a string field.
func Str(key, val string) Field { return Field{Key: key, Value: val} }

// Strs returns a string-slice field.
func Strs(key string, vals []string) Field { return Field{Key: key, Value: vals} }

// Int returns an int field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Int64 returns an int64 field.
func Int64(key string, val int64) Field { return Field{Key: key, Value: val} }

// Uint returns a uint field.
func Uint(key string, val uint) Field { return Field{Key: key, Value: val} }

// Uint64 returns a uint64 field.
func Uint64(key string, val uint64) Field { return Field{Key: key, Value: val} }

// Float64 returns a float64 field.
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }

// Bool returns a bool field.
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

// Time returns a time field.
func Time(key string, val time.Time) Field { return Field{Key: key, Value: val} }

// Dur returns a duration field.
func Dur(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Err returns an error field under the reserved "error" key.
func Err(err error) Field { return Field{Key: ErrorKey, Value: err} }

// AnErr returns an error field under the given key.
func AnErr(key string, err error) Field { return Field{Key: key, Value: err} }

// Interface returns a field holding an arbitrary value.
func Interface(key string, val interface{}) Field { return Field{Key: key, Value: val} }
