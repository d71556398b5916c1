// Package linkcheck verifies that anchors in generated output resolve:
// in-page fragments against the page's own headings, cross-page links
// against the target page's headings.
package linkcheck

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	xhtml "golang.org/x/net/html"

	"git.home.luguber.info/inful/codedoc/internal/slug"
)

// Page is one generated output unit to verify. HTML is the body markup,
// Markdown the full page text; either may be empty.
type Page struct {
	Slug     string
	Markdown string
	HTML     string
}

// Issue is one unresolved link.
type Issue struct {
	Page   string
	Link   string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s (%s)", i.Page, i.Link, i.Reason)
}

// Verify checks every intra-site link on every page. External links are
// not checked.
func Verify(pages []Page) []Issue {
	anchorsBySlug := make(map[string]map[string]bool, len(pages))
	for _, p := range pages {
		anchorsBySlug[p.Slug] = pageAnchors(p)
	}

	var issues []Issue
	for _, p := range pages {
		for _, link := range pageLinks(p) {
			if issue := check(p, link, anchorsBySlug); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}
	return issues
}

func check(p Page, link string, anchorsBySlug map[string]map[string]bool) *Issue {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return nil
	}

	if strings.HasPrefix(link, "#") {
		if !anchorsBySlug[p.Slug][strings.TrimPrefix(link, "#")] {
			return &Issue{Page: p.Slug, Link: link, Reason: "missing in-page anchor"}
		}
		return nil
	}

	target, fragment, _ := strings.Cut(link, "#")
	target = strings.TrimPrefix(target, "/")
	target = strings.TrimSuffix(strings.TrimSuffix(target, "README.md"), "/")
	anchors, ok := anchorsBySlug[target]
	if !ok {
		return &Issue{Page: p.Slug, Link: link, Reason: "unknown target page"}
	}
	if fragment != "" && !anchors[fragment] {
		return &Issue{Page: p.Slug, Link: link, Reason: "missing anchor on target page"}
	}
	return nil
}

// pageAnchors collects the heading ids a page exposes. HTML bodies carry
// explicit ids; Markdown anchors are derived from heading text the same
// way the HTML walker assigns them.
func pageAnchors(p Page) map[string]bool {
	anchors := make(map[string]bool)
	if p.HTML != "" {
		collectHTMLIDs(p.HTML, anchors)
		return anchors
	}
	for _, heading := range markdownHeadings(p.Markdown) {
		base := slug.Make(heading)
		id := base
		for i := 1; anchors[id]; i++ {
			id = fmt.Sprintf("%s-%d", base, i)
		}
		anchors[id] = true
	}
	return anchors
}

func collectHTMLIDs(body string, into map[string]bool) {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(body))
	for {
		tt := tokenizer.Next()
		if tt == xhtml.ErrorToken {
			return
		}
		if tt != xhtml.StartTagToken && tt != xhtml.SelfClosingTagToken {
			continue
		}
		token := tokenizer.Token()
		for _, attr := range token.Attr {
			if attr.Key == "id" {
				into[attr.Val] = true
			}
		}
	}
}

// pageLinks extracts intra-document links from whichever format the page
// carries. HTML wins when both are present since it is a superset.
func pageLinks(p Page) []string {
	if p.HTML != "" {
		return htmlLinks(p.HTML)
	}
	return markdownLinks(p.Markdown)
}

func htmlLinks(body string) []string {
	var links []string
	tokenizer := xhtml.NewTokenizer(strings.NewReader(body))
	for {
		tt := tokenizer.Next()
		if tt == xhtml.ErrorToken {
			return links
		}
		if tt != xhtml.StartTagToken {
			continue
		}
		token := tokenizer.Token()
		if token.Data != "a" {
			continue
		}
		for _, attr := range token.Attr {
			if attr.Key == "href" {
				links = append(links, attr.Val)
			}
		}
	}
}

func markdownLinks(body string) []string {
	src := []byte(body)
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(src))

	var links []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if link, ok := n.(*gmast.Link); ok {
			links = append(links, string(link.Destination))
		}
		return gmast.WalkContinue, nil
	})
	return links
}

func markdownHeadings(body string) []string {
	src := []byte(body)
	md := goldmark.New()
	root := md.Parser().Parse(gmtext.NewReader(src))

	var headings []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			headings = append(headings, string(h.Lines().Value(src)))
		}
		return gmast.WalkContinue, nil
	})
	return headings
}
