// Package markdown renders a content tree to Markdown text via a
// depth-first, string-accumulating walk.
package markdown

import (
	"strings"

	"git.home.luguber.info/inful/codedoc/internal/content"
)

// headingPrefix maps heading tags to their symbol prefix.
var headingPrefix = map[string]string{
	"h1": "# ", "h2": "## ", "h3": "### ",
	"h4": "#### ", "h5": "##### ", "h6": "###### ",
}

// Render walks the tree and concatenates Markdown output. It is total
// over well-formed trees; unknown tags render their content undecorated.
func Render(nodes []content.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		walk(&b, n)
	}
	return b.String()
}

func walk(b *strings.Builder, n content.Node) {
	if prefix, ok := headingPrefix[n.Tag]; ok {
		b.WriteString(prefix)
		walkContent(b, n)
		b.WriteString("\n\n")
		return
	}

	switch n.Tag {
	case "p":
		walkContent(b, n)
		b.WriteString("\n\n")
	case "strong":
		b.WriteString("**")
		walkContent(b, n)
		b.WriteString("**")
	case "em":
		b.WriteString("*")
		walkContent(b, n)
		b.WriteString("*")
	case "code":
		b.WriteString("`")
		walkContent(b, n)
		b.WriteString("`")
	case "a":
		if n.Link != "" {
			b.WriteString("[")
			walkContent(b, n)
			b.WriteString("](")
			b.WriteString(n.Link)
			b.WriteString(")")
			return
		}
		walkContent(b, n)
	case "li":
		b.WriteString("- ")
		walkContent(b, n)
		b.WriteString("\n")
	case "ul", "dl":
		walkContent(b, n)
		b.WriteString("\n")
	case "codeblock":
		b.WriteString("```")
		b.WriteString(n.Link)
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(n.Text, "\n"))
		b.WriteString("\n```\n\n")
	case "br":
		b.WriteString("\n")
	default:
		walkContent(b, n)
	}
}

// walkContent appends string content as-is and recurses per child for
// array content.
func walkContent(b *strings.Builder, n content.Node) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		walk(b, c)
	}
}
