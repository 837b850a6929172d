package glog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []Arg
		want     string
	}{
		{"positional substitution", "{0} is the new {1}", []Arg{NewArg("foo"), NewArg("bar")}, "foo is the new bar"},
		{"reversed order", "{1} before {0}", []Arg{NewArg("a"), NewArg("b")}, "b before a"},
		{"repeated placeholder", "{0} and {0} again", []Arg{NewArg("x")}, "x and x again"},
		{"no placeholders no args", "plain text", nil, "plain text"},
		{"empty template no args", "", nil, ""},
		{"adjacent placeholders", "{0}{1}", []Arg{NewArg(1), NewArg(2)}, "12"},
		{"non-string values", "count={0} ok={1}", []Arg{NewArg(42), NewArg(true)}, "count=42 ok=true"},
		{"nil value", "v={0}", []Arg{NewArg(nil)}, "v=<nil>"},
		{"empty braces are literal", "a {} b", nil, "a {} b"},
		{"named braces are literal", "a {name} b", nil, "a {name} b"},
		{"unterminated brace is literal", "a {0", nil, "a {0"},
		{"brace then placeholder", "{{0}", []Arg{NewArg("x")}, "{x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.template, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_ArityErrors(t *testing.T) {
	t.Run("placeholder beyond argument count", func(t *testing.T) {
		got, err := Format("{0} and {1}", NewArg("only-one"))
		require.Error(t, err)
		assert.Equal(t, "", got)

		var fmtErr *FormatError
		require.ErrorAs(t, err, &fmtErr)
		assert.Equal(t, "{0} and {1}", fmtErr.Template)
		assert.Equal(t, 1, fmtErr.Args)
		assert.Equal(t, 1, fmtErr.Index)
		assert.Equal(t, "1", fmtErr.Placeholder)
	})

	t.Run("placeholder digits overflow int", func(t *testing.T) {
		got, err := Format("{99999999999999999999}", NewArg("x"))
		require.Error(t, err)
		assert.Equal(t, "", got)

		var fmtErr *FormatError
		require.ErrorAs(t, err, &fmtErr)
		assert.Equal(t, -1, fmtErr.Index)
		assert.Equal(t, "99999999999999999999", fmtErr.Placeholder)
		// the message carries the placeholder as written, not a clamped number
		assert.Contains(t, err.Error(), "{99999999999999999999}")
	})

	t.Run("unreferenced argument", func(t *testing.T) {
		got, err := Format("{0}", NewArg("a"), NewArg("b"))
		require.Error(t, err)
		assert.Equal(t, "", got)

		var fmtErr *FormatError
		require.ErrorAs(t, err, &fmtErr)
		assert.Equal(t, -1, fmtErr.Index)
		assert.Equal(t, "", fmtErr.Placeholder)
		assert.Equal(t, 2, fmtErr.Args)
	})

	t.Run("args but no placeholders", func(t *testing.T) {
		_, err := Format("no placeholders", NewArg("orphan"))
		require.Error(t, err)
	})

	t.Run("no partial output on failure", func(t *testing.T) {
		got, err := Format("{0} then {2}", NewArg("a"), NewArg("b"))
		require.Error(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("error message names the template", func(t *testing.T) {
		_, err := Format("{3}", NewArg("a"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "{3}")
	})
}

func TestArg_String(t *testing.T) {
	assert.Equal(t, "foo", NewArg("foo").String())
	assert.Equal(t, "42", NewArg(42).String())
	assert.Equal(t, "3.14", NewArg(3.14).String())
	assert.Equal(t, "true", NewArg(true).String())
	assert.Equal(t, "[1 2]", NewArg([]int{1, 2}).String())
}
