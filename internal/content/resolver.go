package content

import (
	"strings"

	"git.home.luguber.info/inful/codedoc/internal/examples"
	"git.home.luguber.info/inful/codedoc/internal/highlight"
	"git.home.luguber.info/inful/codedoc/internal/model"
	"git.home.luguber.info/inful/codedoc/internal/slug"
)

// builtins are primitive and generic wrapper keywords that are never
// reference candidates, even when an entity shares the name.
var builtins = map[string]struct{}{
	"string": {}, "number": {}, "boolean": {}, "void": {},
	"null": {}, "undefined": {}, "object": {}, "Object": {},
	"any": {}, "function": {}, "symbol": {}, "bigint": {},
	"Array": {}, "Promise": {}, "Map": {}, "Set": {},
}

// Context carries everything one output unit's tree construction needs.
// Used and Types are per-unit; leaking them across units would break the
// materialize-once invariant.
type Context struct {
	Registry model.Reader
	Dir      string // directory owning the current unit
	BaseURL  string
	Format   Format

	// Used tracks entities whose full content has been materialized (or
	// that are primary on this page), keyed by entity name.
	Used map[string]bool
	// Types accumulates the trailing "Types" section of the unit.
	Types *[]Node
	// Current names the entity being rendered right now; a reference to
	// it links without re-triggering expansion.
	Current string

	Highlighter highlight.Highlighter
	ReadFile    examples.FileReader
}

// NewContext prepares a fresh per-unit context.
func NewContext(reg model.Reader, dir string, baseURL string, format Format, hl highlight.Highlighter) *Context {
	if hl == nil {
		hl = highlight.Noop{}
	}
	return &Context{
		Registry:    reg,
		Dir:         dir,
		BaseURL:     baseURL,
		Format:      format,
		Used:        make(map[string]bool),
		Types:       &[]Node{},
		Highlighter: hl,
	}
}

// Resolve turns a flattened type expression into content nodes: links for
// registry hits, literal text for everything else. Union fragments keep
// declaration order joined by " | ".
func (ctx *Context) Resolve(expr []string) []Node {
	var out []Node
	for i, frag := range expr {
		if i > 0 {
			out = append(out, Text(" | "))
		}
		out = append(out, ctx.resolveFragment(frag))
	}
	return out
}

func (ctx *Context) resolveFragment(frag string) Node {
	base := strings.TrimSuffix(frag, strings.Repeat("[]", strings.Count(frag, "[]")))
	if _, isBuiltin := builtins[base]; isBuiltin {
		return Text(frag)
	}
	entity, ok := ctx.Registry.Lookup(base)
	if !ok {
		// Missing referenced entity: plain text, never fatal.
		return Text(frag)
	}

	link := ctx.linkTo(entity)
	ctx.materialize(entity)
	return Anchor(frag, link)
}

// linkTo computes the anchor target: same-page references use a bare
// fragment, cross-directory ones a full site-relative URL.
func (ctx *Context) linkTo(e model.Entity) string {
	anchor := "#" + e.AnchorID()
	if e.Dir == ctx.Dir {
		return anchor
	}
	// Pages are written under slugged paths; link the same way.
	parts := []string{ctx.BaseURL, slug.Path(e.Dir)}
	if token := ctx.Format.PageToken(); token != "" {
		parts = append(parts, token)
	}
	return strings.TrimPrefix(strings.Join(parts, "/"), "/") + anchor
}

// materialize appends the entity's full content to the unit's trailing
// Types section the first time it is referenced anywhere in the unit.
// Marking the name used before building guards circular references.
func (ctx *Context) materialize(e model.Entity) {
	if ctx.Used[e.Name] || e.Name == ctx.Current {
		return
	}
	ctx.Used[e.Name] = true
	// Build may materialize further references into ctx.Types; finish it
	// before appending so nested sections are never lost.
	nodes := ctx.Build(e, materializedDepth)
	*ctx.Types = append(*ctx.Types, nodes...)
}
