// Package content builds the format-agnostic tagged content tree that
// both renderers consume, resolving cross-references between entities
// while it does so.
package content

// Format selects renderer-specific tree shapes where the two outputs
// genuinely differ (definition lists, example code blocks). It is
// threaded explicitly; there is no process-wide format state.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// PageToken returns the cross-file page component of a link for this
// format: Markdown links point at README.md, HTML links at the directory.
func (f Format) PageToken() string {
	if f == FormatMarkdown {
		return "README.md"
	}
	return ""
}

// Node is the universal content element. Content is either Text or
// Children, discriminated by Children being non-nil. Tag names follow
// HTML element names; Link is honored only on the anchor tag.
type Node struct {
	Text     string
	Children []Node
	Tag      string
	Link     string
}

// IsText reports whether the node carries string content.
func (n Node) IsText() bool { return n.Children == nil }

// Empty reports whether the node would render nothing: empty string
// content, or children that are all empty themselves.
func (n Node) Empty() bool {
	if n.IsText() {
		return n.Text == ""
	}
	for _, c := range n.Children {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// PlainText flattens the node's content to unstyled text.
func (n Node) PlainText() string {
	if n.IsText() {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		out += c.PlainText()
	}
	return out
}

// Text returns a bare text node.
func Text(s string) Node { return Node{Text: s} }

// Tagged wraps children in a tag.
func Tagged(tag string, children ...Node) Node {
	if children == nil {
		children = []Node{}
	}
	return Node{Tag: tag, Children: children}
}

// TaggedText wraps string content in a tag.
func TaggedText(tag, text string) Node { return Node{Tag: tag, Text: text} }

// Anchor returns a link node. An empty link renders as plain content.
func Anchor(text, link string) Node { return Node{Tag: "a", Text: text, Link: link} }
