// Package site turns the entity registries into rendered output units:
// one Markdown and/or HTML page per documented directory, a synthetic
// index page, and the site navigation forest.
package site

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"git.home.luguber.info/inful/codedoc/internal/content"
	cderrors "git.home.luguber.info/inful/codedoc/internal/errors"
	"git.home.luguber.info/inful/codedoc/internal/examples"
	"git.home.luguber.info/inful/codedoc/internal/highlight"
	"git.home.luguber.info/inful/codedoc/internal/logfields"
	"git.home.luguber.info/inful/codedoc/internal/model"
	renderhtml "git.home.luguber.info/inful/codedoc/internal/render/html"
	rendermd "git.home.luguber.info/inful/codedoc/internal/render/markdown"
	"git.home.luguber.info/inful/codedoc/internal/slug"
)

// Cache lets the generator skip writing units whose content is unchanged
// since the previous run.
type Cache interface {
	Unchanged(slug, hash string) bool
	Store(slug, hash string) error
}

// Options configures one generation run.
type Options struct {
	OutDir         string
	BaseURL        string
	Title          string // site title, used by the synthetic index unit
	Formats        []content.Format
	IndexUnit      bool
	HighlightStyle string
	SourceRoot     string // base for example file references
	AttrFilter     renderhtml.AttrFilter
	OutputFilter   OutputFilter
	Cache          Cache
	Logger         *slog.Logger
}

// Page is one rendered output unit.
type Page struct {
	Dir      string
	Slug     string
	Title    string
	Markdown string
	HTML     *renderhtml.Result
}

// Generator renders and writes the whole site.
type Generator struct {
	opts Options
	hl   highlight.Highlighter
	log  *slog.Logger
}

func New(opts Options) *Generator {
	if len(opts.Formats) == 0 {
		opts.Formats = []content.Format{content.FormatMarkdown, content.FormatHTML}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Generator{
		opts: opts,
		hl:   highlight.NewChroma(opts.HighlightStyle),
		log:  log,
	}
}

func (g *Generator) wants(f content.Format) bool {
	return slices.Contains(g.opts.Formats, f)
}

// Run builds every output unit, assembles navigation, writes files and
// returns the rendered pages. Units are processed strictly in sequence;
// per-unit state (used sets, heading ids) never crosses unit boundaries.
func (g *Generator) Run(reader model.Reader) ([]Page, []*NavEntry, error) {
	readFile := g.exampleReader()

	var pages []Page
	for _, dir := range reader.Dirs() {
		page := Page{Dir: dir, Slug: DirSlug(dir)}

		if g.wants(content.FormatMarkdown) {
			unit := content.BuildUnit(reader, dir, content.UnitOptions{
				BaseURL:     g.opts.BaseURL,
				Format:      content.FormatMarkdown,
				Highlighter: g.hl,
				ReadFile:    readFile,
			})
			if unit == nil {
				continue
			}
			page.Title = unit.Title
			page.Markdown = rendermd.Render(unit.Tree)
		}
		if g.wants(content.FormatHTML) {
			unit := content.BuildUnit(reader, dir, content.UnitOptions{
				BaseURL:     g.opts.BaseURL,
				Format:      content.FormatHTML,
				Highlighter: g.hl,
				ReadFile:    readFile,
			})
			if unit == nil {
				continue
			}
			page.HTML = renderhtml.Render(unit.Tree, g.opts.AttrFilter)
			if page.Title == "" {
				page.Title = unit.Title
			}
		}
		pages = append(pages, page)
		g.log.Debug("unit rendered", logfields.Unit(page.Slug), logfields.Entity(page.Title))
	}

	nav := g.assembleNav(pages)

	if g.opts.IndexUnit {
		// Entities documented at the repository root already own the root
		// output paths; writing the synthetic index would destroy them.
		if slices.ContainsFunc(pages, func(p Page) bool { return p.Slug == "" }) {
			g.log.Warn("root directory already documented, skipping synthetic index unit")
		} else {
			pages = append(pages, g.indexPage(nav))
		}
	}

	for _, page := range pages {
		if err := g.write(page, nav); err != nil {
			return nil, nil, err
		}
	}
	return pages, nav, nil
}

func (g *Generator) assembleNav(pages []Page) []*NavEntry {
	var navPages []NavPage
	for _, p := range pages {
		link := strings.TrimSuffix(g.opts.BaseURL+"/"+p.Slug, "/") + "/"
		navPages = append(navPages, NavPage{Slug: p.Slug, Title: p.Title, Link: link})
	}
	return AssembleNav(navPages)
}

// indexPage builds the synthetic root unit listing every top-level nav
// entry with its children.
func (g *Generator) indexPage(nav []*NavEntry) Page {
	title := g.opts.Title
	if title == "" {
		title = "Documentation"
	}
	tree := []content.Node{content.TaggedText("h1", title)}
	var items []content.Node
	for _, e := range nav {
		entry := []content.Node{content.Anchor(e.Title, e.Link)}
		if len(e.Children) > 0 {
			var sub []content.Node
			for _, c := range e.Children {
				sub = append(sub, content.Tagged("li", content.Anchor(c.Title, c.Link)))
			}
			entry = append(entry, content.Tagged("ul", sub...))
		}
		items = append(items, content.Tagged("li", entry...))
	}
	if len(items) > 0 {
		tree = append(tree, content.Tagged("ul", items...))
	}

	page := Page{Dir: "", Slug: "", Title: title}
	if g.wants(content.FormatMarkdown) {
		page.Markdown = rendermd.Render(tree)
	}
	if g.wants(content.FormatHTML) {
		page.HTML = renderhtml.Render(tree, g.opts.AttrFilter)
	}
	return page
}

func (g *Generator) write(page Page, nav []*NavEntry) error {
	// Written paths follow the slug, matching navigation links and
	// cross-reference URLs.
	outDir := filepath.Join(g.opts.OutDir, filepath.FromSlash(page.Slug))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return cderrors.WriteFailed(outDir, err)
	}

	if page.Markdown != "" {
		if err := g.writeCached(filepath.Join(outDir, "README.md"), page.Slug+"/md", page.Markdown); err != nil {
			return err
		}
	}
	if page.HTML != nil {
		ctx := PageContext{
			Body:     page.HTML.Body,
			ID:       page.Slug,
			Title:    page.HTML.Title,
			Slug:     page.Slug,
			Nav:      nav,
			Headings: page.HTML.Headings,
			CSS:      g.hl.CSS(),
		}
		if ctx.Title == "" {
			ctx.Title = page.Title
		}
		wrap := g.opts.OutputFilter
		if wrap == nil {
			wrap = defaultWrapper
		}
		if err := g.writeCached(filepath.Join(outDir, "index.html"), page.Slug+"/html", wrap(ctx)); err != nil {
			return err
		}
	}
	return nil
}

// writeCached skips the write when the cache remembers an identical
// content hash for this unit.
func (g *Generator) writeCached(path, cacheKey, data string) error {
	sum := sha256.Sum256([]byte(data))
	hash := hex.EncodeToString(sum[:])
	if g.opts.Cache != nil && g.opts.Cache.Unchanged(cacheKey, hash) {
		if _, err := os.Stat(path); err == nil {
			g.log.Debug("unit unchanged, skipping write", logfields.File(path))
			return nil
		}
	}
	// Unrecoverable write failures surface to the caller unmodified.
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return cderrors.WriteFailed(path, err)
	}
	if g.opts.Cache != nil {
		if err := g.opts.Cache.Store(cacheKey, hash); err != nil {
			g.log.Warn("cache store failed", logfields.File(path), logfields.Error(err))
		}
	}
	return nil
}

// exampleReader resolves example file references relative to the source root.
func (g *Generator) exampleReader() examples.FileReader {
	root := g.opts.SourceRoot
	return func(ref string) (string, error) {
		b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(ref)))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// DirSlug converts a source directory path into its output slug, slugging
// each path segment independently.
func DirSlug(dir string) string {
	return slug.Path(dir)
}
