package glog

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// sprintPool is a buffer pool for template assembly to reduce allocations
var sprintPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// FormatError reports a mismatch between a template's positional
// placeholders and the supplied arguments. Placeholder holds the
// offending placeholder digits as written in the template; Index holds
// their parsed value, or -1 when the digits overflow int. Both stay
// empty and -1 when the failure is one or more unreferenced arguments.
type FormatError struct {
	Template    string
	Args        int
	Index       int
	Placeholder string
}

func (e *FormatError) Error() string {
	if e.Placeholder != emptyString {
		return fmt.Sprintf("format %q: placeholder {%s} out of range for %d argument(s)", e.Template, e.Placeholder, e.Args)
	}
	return fmt.Sprintf("format %q: not all of the %d argument(s) are referenced", e.Template, e.Args)
}

// Format substitutes the positional placeholders {0}, {1}, ... in
// template with the stringified Arg at that index. A placeholder may be
// repeated. The referenced indices must cover the argument sequence
// exactly: an index at or beyond len(args), or an argument no
// placeholder references, yields a *FormatError and no partial output.
// Brace sequences that are not {digits} pass through untouched.
func Format(template string, args ...Arg) (string, error) {
	if !strings.Contains(template, "{") {
		if len(args) > 0 {
			return emptyString, &FormatError{Template: template, Args: len(args), Index: -1}
		}
		return template, nil
	}

	buf := sprintPool.Get().(*strings.Builder)
	buf.Reset()
	defer sprintPool.Put(buf)

	referenced := make([]bool, len(args))
	for i := 0; i < len(template); {
		if template[i] != '{' {
			buf.WriteByte(template[i])
			i++
			continue
		}

		j := i + 1
		for j < len(template) && template[j] >= '0' && template[j] <= '9' {
			j++
		}
		if j == i+1 || j >= len(template) || template[j] != '}' {
			// not a placeholder, keep the brace literally
			buf.WriteByte(template[i])
			i++
			continue
		}

		digits := template[i+1 : j]
		idx, err := strconv.Atoi(digits)
		if err != nil {
			// Atoi fails only on overflow here, certainly out of range
			return emptyString, &FormatError{Template: template, Args: len(args), Index: -1, Placeholder: digits}
		}
		if idx >= len(args) {
			return emptyString, &FormatError{Template: template, Args: len(args), Index: idx, Placeholder: digits}
		}
		referenced[idx] = true
		buf.WriteString(args[idx].String())
		i = j + 1
	}

	for _, ok := range referenced {
		if !ok {
			return emptyString, &FormatError{Template: template, Args: len(args), Index: -1}
		}
	}
	return buf.String(), nil
}
