package strutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripWS(t *testing.T) {
	require.Equal(t, "hello", StripWS(" \t hello\r\n"))
	require.Equal(t, "hello world", StripWS("hello world"))
	require.Equal(t, "", StripWS(" \t\r\n"))
	require.Equal(t, "", StripWS(""))
	require.Equal(t, "a ", LStripWS("  a "))
	require.Equal(t, "  a", RStripWS("  a "))
}

func TestCutField(t *testing.T) {
	var fields []string
	for rest := "  GET\t/index.html   HTTP/1.1  "; ; {
		var field string
		field, rest = CutField(rest)
		if len(field) == 0 {
			break
		}

		fields = append(fields, field)
	}

	require.Equal(t, []string{"GET", "/index.html", "HTTP/1.1"}, fields)

	field, rest := CutField("")
	require.Empty(t, field)
	require.Empty(t, rest)
}

func TestTrimLineTerminator(t *testing.T) {
	for input, want := range map[string]string{
		"Host: a\r\n": "Host: a",
		"Host: a\n":   "Host: a",
		"Host: a":     "Host: a",
		"\r\n":        "",
		"\n":          "",
		"a\r":         "a",
	} {
		require.Equal(t, want, string(TrimLineTerminator([]byte(input))), "%q", input)
	}
}
