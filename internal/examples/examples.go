// Package examples parses the example-text mini-format attached to raw
// records: an optional "title:" line, an optional "desc:" line, an
// optional language tag, then code. A code body starting with "." is a
// relative file reference resolved through a caller-supplied reader.
package examples

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/codedoc/internal/logfields"
)

// Languages recognized as code fence tags.
var languages = map[string]struct{}{
	"shell":      {},
	"json":       {},
	"javascript": {},
	"typescript": {},
	"js":         {},
	"ts":         {},
}

// FileReader resolves a relative example-file reference to its contents.
type FileReader func(path string) (string, error)

// Example is one parsed example block.
type Example struct {
	Title string
	Desc  string
	Lang  string
	Code  string
}

// Empty reports whether the example carries nothing renderable.
func (e Example) Empty() bool {
	return e.Title == "" && e.Desc == "" && strings.TrimSpace(e.Code) == ""
}

// Parse decodes one raw example string. A failed file read degrades to an
// empty code body for that example only; readFile may be nil when file
// references are not supported by the caller.
func Parse(raw string, readFile FileReader) Example {
	var ex Example
	rest := raw

	if line, tail, ok := prefixedLine(rest, "title:"); ok {
		ex.Title = line
		rest = tail
	}
	if line, tail, ok := prefixedLine(rest, "desc:"); ok {
		ex.Desc = line
		rest = tail
	}
	if lang, tail, ok := languageTag(rest); ok {
		ex.Lang = lang
		rest = tail
	}

	ex.Code = strings.TrimLeft(rest, "\n")
	if strings.HasPrefix(ex.Code, ".") {
		ref := strings.TrimSpace(firstLine(ex.Code))
		if readFile == nil {
			ex.Code = ""
			return ex
		}
		content, err := readFile(ref)
		if err != nil {
			slog.Warn("example file read failed", logfields.File(ref), logfields.Error(err))
			ex.Code = ""
			return ex
		}
		ex.Code = content
	}
	return ex
}

// ParseAll parses every raw example and drops the ones with no content.
func ParseAll(raws []string, readFile FileReader) []Example {
	var out []Example
	for _, raw := range raws {
		if ex := Parse(raw, readFile); !ex.Empty() {
			out = append(out, ex)
		}
	}
	return out
}

// prefixedLine returns the value of a "key:"-prefixed first line and the
// remaining text after it.
func prefixedLine(text, prefix string) (string, string, bool) {
	trimmed := strings.TrimLeft(text, "\n")
	if !strings.HasPrefix(trimmed, prefix) {
		return "", text, false
	}
	line := firstLine(trimmed)
	value := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	return value, strings.TrimPrefix(trimmed, line), true
}

// languageTag matches a bare "<lang>:" line or a "<lang>:" prefix on the
// first code line.
func languageTag(text string) (string, string, bool) {
	trimmed := strings.TrimLeft(text, "\n")
	idx := strings.Index(trimmed, ":")
	if idx <= 0 {
		return "", text, false
	}
	candidate := trimmed[:idx]
	if _, ok := languages[candidate]; !ok {
		return "", text, false
	}
	return candidate, trimmed[idx+1:], true
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
