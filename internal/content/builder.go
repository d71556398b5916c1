package content

import (
	"fmt"

	"git.home.luguber.info/inful/codedoc/internal/examples"
	"git.home.luguber.info/inful/codedoc/internal/model"
)

// materializedDepth is where referenced entities land inside the trailing
// "Types" section: the section heading is an h2, entries start at h3.
const materializedDepth = 2

// heading returns an hN node for a zero-based depth: depth 0 is the page
// h1, depth 1 an h2, clamped at h6.
func heading(depth int, text string) Node {
	level := depth + 1
	if level > 6 {
		level = 6
	}
	return TaggedText(fmt.Sprintf("h%d", level), text)
}

func para(children ...Node) Node { return Tagged("p", children...) }

// Build produces the content tree for one entity, with its heading at
// depth and section headings one level below.
func (ctx *Context) Build(e model.Entity, depth int) []Node {
	prev := ctx.Current
	ctx.Current = e.Name
	defer func() { ctx.Current = prev }()

	switch e.Kind {
	case model.KindType:
		return ctx.buildType(e.Type, depth)
	case model.KindFunction:
		return ctx.buildFunction(e.Function, depth)
	case model.KindClass:
		return ctx.buildClass(e.Class, depth)
	}
	return nil
}

func (ctx *Context) buildType(t *model.Type, depth int) []Node {
	nodes := []Node{heading(depth, t.Name)}
	if t.Description != "" {
		nodes = append(nodes, para(Text(t.Description)))
	}
	if len(t.Expr) > 0 {
		line := append([]Node{TaggedText("strong", "Type:"), Text(" ")}, ctx.Resolve(t.Expr)...)
		nodes = append(nodes, para(line...))
	}
	if len(t.Augments) > 0 {
		line := []Node{TaggedText("strong", "Augments:"), Text(" ")}
		for i, aug := range t.Augments {
			if i > 0 {
				line = append(line, Text(", "))
			}
			line = append(line, ctx.Resolve([]string{aug})...)
		}
		nodes = append(nodes, para(line...))
	}
	if len(t.Properties) > 0 {
		nodes = append(nodes, heading(depth+1, "Properties"), ctx.fieldList(t.Properties))
	}
	nodes = append(nodes, ctx.buildExamples(t.Examples, depth+1)...)
	return nodes
}

func (ctx *Context) buildFunction(f *model.Function, depth int) []Node {
	nodes := []Node{
		heading(depth, f.Name),
		para(ctx.signature(f.Name, f.Params, returnExpr(f))...),
	}
	if f.Description != "" {
		nodes = append(nodes, para(Text(f.Description)))
	}
	if len(f.Params) > 0 {
		nodes = append(nodes, heading(depth+1, "Parameters"), ctx.fieldList(f.Params))
	}
	nodes = append(nodes, ctx.returnSection(f.Returns, "Returns", depth+1)...)
	nodes = append(nodes, ctx.returnSection(f.Yields, "Yields", depth+1)...)
	nodes = append(nodes, ctx.buildExamples(f.Examples, depth+1)...)
	return nodes
}

func (ctx *Context) buildClass(c *model.Class, depth int) []Node {
	nodes := []Node{heading(depth, c.Name)}
	if c.Description != "" {
		nodes = append(nodes, para(Text(c.Description)))
	}
	nodes = append(nodes,
		heading(depth+1, "Constructor"),
		para(ctx.signature("new "+c.Name, c.CtorParams, []string{c.Name})...),
	)
	if c.CtorDescription != "" {
		nodes = append(nodes, para(Text(c.CtorDescription)))
	}
	if c.Extends != "" {
		line := append([]Node{TaggedText("strong", "Augments:"), Text(" ")}, ctx.Resolve([]string{c.Extends})...)
		nodes = append(nodes, para(line...))
	}
	if len(c.CtorParams) > 0 {
		// Constructor parameter headings sit one level deeper than a
		// plain function's, under the Constructor sub-heading.
		nodes = append(nodes, heading(depth+2, "Parameters"), ctx.fieldList(c.CtorParams))
	}

	var props, methods []model.Member
	for _, m := range c.Members {
		if m.Method != nil {
			methods = append(methods, m)
		} else if m.Property != nil {
			props = append(props, m)
		}
	}
	if len(props) > 0 {
		nodes = append(nodes, heading(depth+1, "Properties"))
		for _, m := range props {
			e := model.Entity{Kind: model.KindType, Name: m.Property.Name, Dir: m.Property.Dir, Type: m.Property}
			nodes = append(nodes, ctx.Build(e, depth+2)...)
		}
	}
	if len(methods) > 0 {
		nodes = append(nodes, heading(depth+1, "Methods"))
		for _, m := range methods {
			e := model.Entity{Kind: model.KindFunction, Name: m.Method.Name, Dir: m.Method.Dir, Function: m.Method}
			nodes = append(nodes, ctx.Build(e, depth+2)...)
		}
	}

	nodes = append(nodes, ctx.buildExamples(c.Examples, depth+1)...)
	return nodes
}

// signature renders `name(param: Type, ...): ReturnType` with type
// expressions resolved to links where possible.
func (ctx *Context) signature(name string, params []model.Field, ret []string) []Node {
	nodes := []Node{Text(name + "(")}
	for i, p := range params {
		if i > 0 {
			nodes = append(nodes, Text(", "))
		}
		nodes = append(nodes, Text(p.Name+": "))
		nodes = append(nodes, ctx.Resolve(p.Expr)...)
	}
	nodes = append(nodes, Text("): "))
	if len(ret) == 0 {
		ret = []string{"void"}
	}
	nodes = append(nodes, ctx.Resolve(ret)...)
	return nodes
}

func returnExpr(f *model.Function) []string {
	if f.Returns != nil {
		return f.Returns.Expr
	}
	return nil
}

func (ctx *Context) returnSection(r *model.ReturnSpec, title string, depth int) []Node {
	if r == nil {
		return nil
	}
	line := append([]Node{TaggedText("strong", "Type:"), Text(" ")}, ctx.Resolve(r.Expr)...)
	nodes := []Node{heading(depth, title), para(line...)}
	if r.Description != "" {
		nodes = append(nodes, para(Text(r.Description)))
	}
	return nodes
}

// fieldList renders a parameter/property list. HTML gets a definition
// list; Markdown gets a flat bullet list.
func (ctx *Context) fieldList(fields []model.Field) Node {
	if ctx.Format == FormatHTML {
		var children []Node
		for _, f := range fields {
			children = append(children, Tagged("dt", ctx.fieldTerm(f)...))
			children = append(children, Tagged("dd", ctx.fieldDetails(f)...))
		}
		return Tagged("dl", children...)
	}

	var items []Node
	for _, f := range fields {
		entry := ctx.fieldTerm(f)
		entry = append(entry, ctx.fieldDetails(f)...)
		items = append(items, Tagged("li", entry...))
	}
	return Tagged("ul", items...)
}

func (ctx *Context) fieldTerm(f model.Field) []Node {
	nodes := []Node{TaggedText("strong", f.Name), Text(": ")}
	nodes = append(nodes, ctx.Resolve(f.Expr)...)
	if f.Optional {
		nodes = append(nodes, Text(" (optional)"))
	} else {
		nodes = append(nodes, Text(" (required)"))
	}
	return nodes
}

func (ctx *Context) fieldDetails(f model.Field) []Node {
	var nodes []Node
	if f.Description != "" {
		nodes = append(nodes, Text(" - "+f.Description))
	}
	if f.HasDefault {
		nodes = append(nodes, Text(" Default: "), TaggedText("code", f.Default))
	}
	return nodes
}

// buildExamples parses raw example strings and emits the Examples section
// when at least one example has content. Markdown gets fenced blocks, HTML
// gets highlighter markup.
func (ctx *Context) buildExamples(raws []string, depth int) []Node {
	parsed := examples.ParseAll(raws, ctx.ReadFile)
	if len(parsed) == 0 {
		return nil
	}
	nodes := []Node{heading(depth, "Examples")}
	for _, ex := range parsed {
		if ex.Title != "" {
			nodes = append(nodes, para(TaggedText("strong", ex.Title)))
		}
		if ex.Desc != "" {
			nodes = append(nodes, para(Text(ex.Desc)))
		}
		if ex.Code == "" {
			continue
		}
		if ctx.Format == FormatHTML {
			markup, err := ctx.Highlighter.Highlight(ex.Code, ex.Lang)
			if err != nil {
				nodes = append(nodes, Tagged("pre", TaggedText("code", ex.Code)))
				continue
			}
			nodes = append(nodes, Node{Tag: "raw", Text: markup})
			continue
		}
		nodes = append(nodes, Node{Tag: "codeblock", Text: ex.Code, Link: ex.Lang})
	}
	return nodes
}
