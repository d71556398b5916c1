package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/codedoc/internal/content"
	"git.home.luguber.info/inful/codedoc/internal/normalize"
	"git.home.luguber.info/inful/codedoc/internal/record"
)

func decodeRecords(t *testing.T, input string) []record.Raw {
	t.Helper()
	recs, err := record.Decode(strings.NewReader(input), "test")
	require.NoError(t, err)
	return recs
}

// Scenario: a single exported function with one required string parameter
// and a string return renders signature, Parameters and Returns sections.
func TestRun_SingleFunctionMarkdown(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "greet", "description": "Greets someone.",
		 "params": [{"name": "who", "type": {"names": ["string"]}}],
		 "returns": [{"type": {"names": ["string"]}}],
		 "meta": {"path": "src"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{OutDir: outDir, Formats: []content.Format{content.FormatMarkdown}})
	pages, _, err := g.Run(reader)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	md, err := os.ReadFile(filepath.Join(outDir, "src", "README.md"))
	require.NoError(t, err)
	text := string(md)
	require.Contains(t, text, "# greet")
	require.Contains(t, text, "greet(who: string): string")
	require.Contains(t, text, "## Parameters")
	require.Contains(t, text, "(required)")
	require.Contains(t, text, "## Returns")
}

// Scenario: mutually referencing types across two directories appear in
// the Types section exactly once each, linking to in-page anchors.
func TestRun_CircularTypesMaterializeOnce(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "start", "params": [{"name": "foo", "type": {"names": ["Foo"]}}], "meta": {"path": "app"}},
		{"kind": "typedef", "name": "Foo", "properties": [{"name": "bar", "type": {"names": ["Bar"]}}], "meta": {"path": "app"}},
		{"kind": "typedef", "name": "Bar", "properties": [{"name": "foo", "type": {"names": ["Foo"]}}], "meta": {"path": "app"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{OutDir: outDir, Formats: []content.Format{content.FormatMarkdown}})
	_, _, err := g.Run(reader)
	require.NoError(t, err)

	md, err := os.ReadFile(filepath.Join(outDir, "app", "README.md"))
	require.NoError(t, err)
	text := string(md)
	require.Equal(t, 1, strings.Count(text, "## Types"))
	require.Equal(t, 1, strings.Count(text, "### Foo"))
	require.Equal(t, 1, strings.Count(text, "### Bar"))
	// Mutual references link to the already-materialized sections.
	require.Contains(t, text, "[Bar](#bar)")
	require.Contains(t, text, "[Foo](#foo)")
}

// Scenario: only private/undocumented records in a directory produce no
// output file and no navigation entry.
func TestRun_SuppressedDirectoryOmitted(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "pub", "meta": {"path": "visible"}},
		{"kind": "function", "name": "priv", "access": "private", "meta": {"path": "hidden"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{OutDir: outDir, Formats: []content.Format{content.FormatMarkdown}})
	pages, nav, err := g.Run(reader)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Len(t, nav, 1)
	require.Equal(t, "visible", nav[0].ID)

	_, statErr := os.Stat(filepath.Join(outDir, "hidden"))
	require.True(t, os.IsNotExist(statErr))
}

// Scenario: a mixed-case directory name slugs to the same path
// everywhere: the written files, the navigation link and the page key.
func TestRun_MixedCaseDirectoryWritesSluggedPath(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "helper", "meta": {"path": "src/Utils"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{OutDir: outDir})
	pages, nav, err := g.Run(reader)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	require.Equal(t, "src/utils", pages[0].Slug)

	require.FileExists(t, filepath.Join(outDir, "src", "utils", "README.md"))
	require.FileExists(t, filepath.Join(outDir, "src", "utils", "index.html"))
	require.Len(t, nav, 1)
	require.Equal(t, "/src/utils/", nav[0].Link)
}

// Scenario: entities documented at the repository root own the root
// output paths; the synthetic index steps aside instead of overwriting.
func TestRun_RootUnitNotOverwrittenByIndex(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "convert",
		 "params": [{"name": "input", "type": {"names": ["string"]}}],
		 "meta": {"filename": "convert.js"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{OutDir: outDir, Formats: []content.Format{content.FormatMarkdown}, IndexUnit: true})
	pages, _, err := g.Run(reader)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	md, err := os.ReadFile(filepath.Join(outDir, "README.md"))
	require.NoError(t, err)
	require.Contains(t, string(md), "convert(input: string)")
}

func TestRun_HTMLWrapperAndIndexUnit(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "greet", "meta": {"path": "src"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{
		OutDir:    outDir,
		Title:     "My Docs",
		Formats:   []content.Format{content.FormatHTML},
		IndexUnit: true,
	})
	_, _, err := g.Run(reader)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(outDir, "src", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "<!DOCTYPE html>")
	require.Contains(t, string(page), "<title>greet</title>")

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "<title>My Docs</title>")
	require.Contains(t, string(index), ">greet<")
}

func TestRun_OutputFilterReplacesWrapper(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "greet", "meta": {"path": "src"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{
		OutDir:  outDir,
		Formats: []content.Format{content.FormatHTML},
		OutputFilter: func(page PageContext) string {
			return "CUSTOM:" + page.Title
		},
	})
	_, _, err := g.Run(reader)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(outDir, "src", "index.html"))
	require.NoError(t, err)
	require.Equal(t, "CUSTOM:greet", string(page))
}

// Format parity: both walkers agree on which optional sections exist.
func TestRun_FormatParityOnSections(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "greet",
		 "params": [{"name": "who", "type": {"names": ["string"]}}],
		 "meta": {"path": "src"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	g := New(Options{OutDir: outDir})
	pages, _, err := g.Run(reader)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	md := pages[0].Markdown
	body := pages[0].HTML.Body
	require.Contains(t, md, "## Parameters")
	require.Contains(t, body, ">Parameters<")
	require.NotContains(t, md, "## Returns")
	require.NotContains(t, body, ">Returns<")
}

type memCache map[string]string

func (m memCache) Unchanged(slug, hash string) bool { return m[slug] == hash }
func (m memCache) Store(slug, hash string) error    { m[slug] = hash; return nil }

func TestRun_CacheSkipsUnchangedWrites(t *testing.T) {
	recs := decodeRecords(t, `[
		{"kind": "function", "name": "greet", "meta": {"path": "src"}}
	]`)
	reader := normalize.Run(recs)

	outDir := t.TempDir()
	cache := memCache{}
	g := New(Options{OutDir: outDir, Formats: []content.Format{content.FormatMarkdown}, Cache: cache})

	_, _, err := g.Run(reader)
	require.NoError(t, err)
	path := filepath.Join(outDir, "src", "README.md")
	first, err := os.Stat(path)
	require.NoError(t, err)

	_, _, err = g.Run(reader)
	require.NoError(t, err)
	second, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, first.ModTime(), second.ModTime())
}
