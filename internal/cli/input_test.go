package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		sep   string
		want  string
	}{
		{name: "double enter", input: "a\nb\n\n\n", sep: "\n", want: "a\nb"},
		{name: "joined without separator", input: "SGVs\nbG8=\n\n", sep: "", want: "SGVsbG8="},
		{name: "crlf", input: "a\r\nb\r\n\r\n", sep: "\n", want: "a\nb"},
		{name: "eof without blank line", input: "abc", sep: "", want: "abc"},
		{name: "immediate blank", input: "\nrest\n", sep: "", want: ""},
		{name: "surrounding spaces kept", input: " abc \n\n", sep: "", want: " abc "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tt.input), "Paste", tt.sep, &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Paste")
		})
	}
}
