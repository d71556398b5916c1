// Package html renders a content tree to HTML, assigning deduplicated
// heading anchors, a nested heading index and permalink self-links.
package html

import (
	"fmt"
	stdhtml "html"
	"sort"
	"strings"

	"git.home.luguber.info/inful/codedoc/internal/content"
	"git.home.luguber.info/inful/codedoc/internal/slug"
)

// AttrFilter is invoked for every tag before serialization, allowing
// attribute injection or mutation without altering tree structure.
type AttrFilter func(attrs map[string]string, node content.Node, parentTag string) map[string]string

// Heading is one entry of the page's heading index.
type Heading struct {
	ID       string
	Text     string
	Level    int
	Children []*Heading
}

// Result is the HTML walk output: the body markup, the page title taken
// from the first h1, and the nested heading index.
type Result struct {
	Body     string
	Title    string
	Headings []*Heading
}

type walker struct {
	filter   AttrFilter
	ids      map[string]bool
	lastSeen map[int]*Heading
	title    string
	titleSet bool
	index    []*Heading
	b        strings.Builder
}

// Render walks the tree once. filter may be nil.
func Render(nodes []content.Node, filter AttrFilter) *Result {
	w := &walker{
		filter:   filter,
		ids:      make(map[string]bool),
		lastSeen: make(map[int]*Heading),
	}
	for _, n := range nodes {
		w.walk(n, "")
	}
	return &Result{Body: w.b.String(), Title: w.title, Headings: w.index}
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func (w *walker) walk(n content.Node, parentTag string) {
	// Empty string content and empty-array content emit nothing; this is
	// what makes absent optional sections disappear.
	if n.Empty() {
		return
	}

	if n.Tag == "raw" {
		w.b.WriteString(n.Text)
		return
	}

	if level := headingLevel(n.Tag); level > 0 && n.IsText() {
		w.writeHeading(n, level, parentTag)
		return
	}

	switch n.Tag {
	case "":
		w.writeContent(n, parentTag)
	case "a":
		attrs := map[string]string{}
		if n.Link != "" {
			attrs["href"] = n.Link
		}
		attrs = w.applyFilter(attrs, n, parentTag)
		if attrs["href"] == "" {
			// A link-less anchor degrades to plain content.
			w.writeContent(n, parentTag)
			return
		}
		w.writeElement("a", attrs, n)
	case "codeblock":
		attrs := w.applyFilter(map[string]string{}, n, parentTag)
		w.b.WriteString("<pre><code")
		w.writeAttrs(attrs)
		w.b.WriteString(">")
		w.b.WriteString(stdhtml.EscapeString(n.Text))
		w.b.WriteString("</code></pre>")
	case "br":
		w.b.WriteString("<br/>")
	default:
		attrs := w.applyFilter(map[string]string{}, n, parentTag)
		w.writeElement(n.Tag, attrs, n)
	}
}

func (w *walker) writeHeading(n content.Node, level int, parentTag string) {
	id := w.dedupeID(slug.Make(n.Text))
	attrs := w.applyFilter(map[string]string{"id": id}, n, parentTag)

	w.b.WriteString("<")
	w.b.WriteString(n.Tag)
	w.writeAttrs(attrs)
	w.b.WriteString(">")
	w.b.WriteString(stdhtml.EscapeString(n.Text))
	// Adjacent permalink self-link, immediately after the heading text.
	fmt.Fprintf(&w.b, `<a class="permalink" href="#%s">#</a>`, id)
	w.b.WriteString("</")
	w.b.WriteString(n.Tag)
	w.b.WriteString(">")

	if level == 1 && !w.titleSet {
		// The first h1 sets the page title instead of indexing.
		w.title = n.Text
		w.titleSet = true
		return
	}
	if level >= 2 {
		w.register(&Heading{ID: id, Text: n.Text, Level: level})
	}
}

// register attaches a heading to the index, nesting a level-N entry under
// the nearest preceding still-open heading above it (skip-level tolerant).
func (w *walker) register(h *Heading) {
	for parentLevel := h.Level - 1; parentLevel >= 2; parentLevel-- {
		if parent, ok := w.lastSeen[parentLevel]; ok {
			parent.Children = append(parent.Children, h)
			w.record(h)
			return
		}
	}
	w.index = append(w.index, h)
	w.record(h)
}

// record marks the heading open at its level and closes deeper ones.
func (w *walker) record(h *Heading) {
	w.lastSeen[h.Level] = h
	for l := h.Level + 1; l <= 6; l++ {
		delete(w.lastSeen, l)
	}
}

// dedupeID suffixes -1, -2, ... in first-seen order until unique.
func (w *walker) dedupeID(base string) string {
	if base == "" {
		base = "section"
	}
	id := base
	for i := 1; w.ids[id]; i++ {
		id = fmt.Sprintf("%s-%d", base, i)
	}
	w.ids[id] = true
	return id
}

func (w *walker) writeElement(tag string, attrs map[string]string, n content.Node) {
	w.b.WriteString("<")
	w.b.WriteString(tag)
	w.writeAttrs(attrs)
	w.b.WriteString(">")
	w.writeContent(n, tag)
	w.b.WriteString("</")
	w.b.WriteString(tag)
	w.b.WriteString(">")
}

func (w *walker) writeContent(n content.Node, parentTag string) {
	if n.IsText() {
		w.b.WriteString(stdhtml.EscapeString(n.Text))
		return
	}
	for _, c := range n.Children {
		w.walk(c, parentTag)
	}
}

func (w *walker) writeAttrs(attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&w.b, ` %s="%s"`, k, stdhtml.EscapeString(attrs[k]))
	}
}

func (w *walker) applyFilter(attrs map[string]string, n content.Node, parentTag string) map[string]string {
	if w.filter == nil {
		return attrs
	}
	return w.filter(attrs, n, parentTag)
}
