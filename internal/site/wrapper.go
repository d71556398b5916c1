package site

import (
	"fmt"
	stdhtml "html"

	renderhtml "git.home.luguber.info/inful/codedoc/internal/render/html"
)

// PageContext is everything a caller-supplied output filter receives for
// one HTML page.
type PageContext struct {
	Body     string
	ID       string
	Title    string
	Slug     string
	Nav      []*NavEntry
	Headings []*renderhtml.Heading
	CSS      string
}

// OutputFilter replaces the default HTML document wrapper entirely.
type OutputFilter func(page PageContext) string

// defaultWrapper is the minimal document used when no output filter is
// supplied: title from the page h1 and a style block with highlighter CSS.
func defaultWrapper(page PageContext) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s</style>
</head>
<body>
%s
</body>
</html>
`, stdhtml.EscapeString(page.Title), page.CSS, page.Body)
}
