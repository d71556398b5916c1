package content

import (
	"path"

	"git.home.luguber.info/inful/codedoc/internal/examples"
	"git.home.luguber.info/inful/codedoc/internal/highlight"
	"git.home.luguber.info/inful/codedoc/internal/model"
)

// Unit is one logical documentation unit: a directory page ready for
// rendering in one format.
type Unit struct {
	Dir   string
	Title string
	Tree  []Node
}

// UnitOptions configures unit construction.
type UnitOptions struct {
	BaseURL     string
	Format      Format
	Highlighter highlight.Highlighter
	ReadFile    examples.FileReader
}

// BuildUnit composes the content tree for one directory. Directories with
// zero documented entities yield nil. A single-entity directory renders
// the entity as the page h1; with more entities the directory title is
// the h1 and each entity starts at h2.
func BuildUnit(reg model.Reader, dir string, opts UnitOptions) *Unit {
	entities := reg.InDir(dir)
	if len(entities) == 0 {
		return nil
	}

	ctx := NewContext(reg, dir, opts.BaseURL, opts.Format, opts.Highlighter)
	ctx.ReadFile = opts.ReadFile

	// Typedef-shaped types are not primary page content; they render in
	// the trailing "Types" section through the materialization path, so
	// every reference to them links the same way.
	var primary, deferred []model.Entity
	for _, e := range entities {
		if e.Kind == model.KindType && e.Type.Typedef {
			deferred = append(deferred, e)
			continue
		}
		primary = append(primary, e)
	}
	for _, e := range primary {
		ctx.Used[e.Name] = true
	}

	unit := &Unit{Dir: dir}
	switch len(primary) {
	case 0:
		unit.Title = DirTitle(dir)
		unit.Tree = []Node{heading(0, unit.Title)}
	case 1:
		unit.Title = primary[0].Name
		unit.Tree = ctx.Build(primary[0], 0)
	default:
		unit.Title = DirTitle(dir)
		unit.Tree = []Node{heading(0, unit.Title)}
		for _, e := range primary {
			unit.Tree = append(unit.Tree, ctx.Build(e, 1)...)
		}
	}

	// Seed the unit's own typedefs into the Types section; ones already
	// pulled in by a reference stay where first use put them.
	for _, e := range deferred {
		ctx.materialize(e)
	}

	if len(*ctx.Types) > 0 {
		unit.Tree = append(unit.Tree, heading(1, "Types"))
		unit.Tree = append(unit.Tree, *ctx.Types...)
	}
	return unit
}

// DirTitle derives a page title from a directory path.
func DirTitle(dir string) string {
	if dir == "" {
		return "Reference"
	}
	return path.Base(dir)
}
