package examples

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_FullForm(t *testing.T) {
	raw := "title: Basic usage\ndesc: Converts a record.\njs:\nconst out = convert(input);"
	ex := Parse(raw, nil)
	require.Equal(t, "Basic usage", ex.Title)
	require.Equal(t, "Converts a record.", ex.Desc)
	require.Equal(t, "js", ex.Lang)
	require.Equal(t, "const out = convert(input);", ex.Code)
}

func TestParse_CodeOnly(t *testing.T) {
	ex := Parse("convert(input)", nil)
	require.Empty(t, ex.Title)
	require.Empty(t, ex.Lang)
	require.Equal(t, "convert(input)", ex.Code)
}

func TestParse_LanguageTagOnly(t *testing.T) {
	ex := Parse("shell:\ncodedoc generate", nil)
	require.Equal(t, "shell", ex.Lang)
	require.Equal(t, "codedoc generate", ex.Code)
}

func TestParse_UnknownLanguageIsCode(t *testing.T) {
	ex := Parse("ruby:\nputs 1", nil)
	require.Empty(t, ex.Lang)
	require.Equal(t, "ruby:\nputs 1", ex.Code)
}

func TestParse_FileReference(t *testing.T) {
	ex := Parse("js:\n./snippets/demo.js", func(path string) (string, error) {
		require.Equal(t, "./snippets/demo.js", path)
		return "console.log('demo')", nil
	})
	require.Equal(t, "console.log('demo')", ex.Code)
}

func TestParse_FileReadFailureDegradesToEmpty(t *testing.T) {
	ex := Parse("./missing.js", func(string) (string, error) {
		return "", errors.New("no such file")
	})
	require.Empty(t, ex.Code)
	require.True(t, ex.Empty())
}

func TestParseAll_DropsEmpty(t *testing.T) {
	out := ParseAll([]string{"", "   \n", "code here"}, nil)
	require.Len(t, out, 1)
	require.Equal(t, "code here", out[0].Code)
}
