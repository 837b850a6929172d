package glog

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Limit the number of elements taken from large slices/arrays
const maxDumpElements = 10

// Dump flattens v into a field mapping on a fresh Context so a single
// emission carries the whole structure. Struct fields become dotted
// paths (Outer.Inner.Value), map entries become bracketed keys (m[k]),
// slice elements become indexed keys (s[0]). A basic value at the root
// lands under the key "value". Recursion is depth-capped and guarded
// against pointer cycles; unexported struct fields are skipped.
func Dump(v interface{}) Context {
	visited := make(map[uintptr]bool)
	fields := dumpValue(nil, v, emptyString, visited, 0)
	return New().AddFields(fields...)
}

// dumpValue is a recursive helper function for Dump
func dumpValue(fields []Field, v interface{}, prefix string, visited map[uintptr]bool, depth int) []Field {
	if depth > maxDumpDepth {
		return append(fields, Field{Key: dumpKey(prefix), Value: "<max depth reached>"})
	}

	if v == nil {
		return append(fields, Field{Key: dumpKey(prefix), Value: "<nil>"})
	}

	val := reflect.ValueOf(v)

	// Safely unwrap interfaces and handle pointers, with cycle detection.
	// Avoid calling Pointer() on unsupported kinds.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				return append(fields, Field{Key: dumpKey(prefix), Value: "<nil>"})
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				return append(fields, Field{Key: dumpKey(prefix), Value: "<nil>"})
			}
			ptr := val.Pointer()
			if visited[ptr] {
				return append(fields, Field{Key: dumpKey(prefix), Value: "<circular reference>"})
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)

			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}

			fields = dumpValue(fields, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

	case reflect.Map:
		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			fields = dumpValue(fields, iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1)
		}

	case reflect.Slice, reflect.Array:
		n := val.Len()
		for i := 0; i < n && i < maxDumpElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			elem := val.Index(i)
			if elem.CanInterface() {
				fields = dumpValue(fields, elem.Interface(), elemPrefix, visited, depth+1)
			}
		}
		if n > maxDumpElements {
			fields = append(fields, Field{Key: dumpKey(prefix), Value: fmt.Sprintf("... (%d more elements)", n-maxDumpElements)})
		}

	default:
		if val.IsValid() && val.CanInterface() {
			fields = append(fields, Field{Key: dumpKey(prefix), Value: val.Interface()})
		} else {
			fields = append(fields, Field{Key: dumpKey(prefix), Value: fmt.Sprintf("%v", v)})
		}
	}

	return fields
}

// dumpKey names a value that has no path of its own yet.
func dumpKey(prefix string) string {
	if prefix == emptyString {
		return "value"
	}
	return prefix
}
