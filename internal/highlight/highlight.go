// Package highlight wraps the syntax-highlighting engine used for example
// code blocks in HTML output. The engine sits behind an interface so
// rendering stays testable without styled markup in expectations.
package highlight

import (
	"bytes"
	stdhtml "html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter turns example code into styled HTML markup plus one CSS
// stylesheet shared by every block on a page.
type Highlighter interface {
	Highlight(code, lang string) (string, error)
	CSS() string
}

// Chroma is the production Highlighter.
type Chroma struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChroma builds a class-based chroma highlighter for the named style.
// Unknown style names fall back to chroma's default.
func NewChroma(styleName string) *Chroma {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Chroma{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Highlight tokenizes code with the lexer registered for lang and emits
// class-annotated HTML. Unknown languages degrade to the plaintext lexer.
func (c *Chroma) Highlight(code, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := c.formatter.Format(&buf, c.style, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CSS returns the stylesheet matching the class names Highlight emits.
func (c *Chroma) CSS() string {
	var buf bytes.Buffer
	if err := c.formatter.WriteCSS(&buf, c.style); err != nil {
		return ""
	}
	return buf.String()
}

// Noop wraps escaped code in a plain pre/code pair. Used in tests and
// for Markdown output where fencing replaces styling.
type Noop struct{}

func (Noop) Highlight(code, lang string) (string, error) {
	var b strings.Builder
	b.WriteString("<pre><code>")
	b.WriteString(stdhtml.EscapeString(code))
	b.WriteString("</code></pre>")
	return b.String(), nil
}

func (Noop) CSS() string { return "" }
