// Package normalize converts heterogeneous raw comment records into the
// closed set of canonical entities: Type, Function, Class. It strips
// unused fields, flattens type-name syntax and extracts default values.
package normalize

import (
	"fmt"

	"git.home.luguber.info/inful/codedoc/internal/model"
	"git.home.luguber.info/inful/codedoc/internal/record"
)

// Run populates a fresh registry from an ordered record stream and
// returns the read-only view. Suppressed records are assumed to be
// filtered already (record.Decode does that).
func Run(records []record.Raw) model.Reader {
	reg := model.NewRegistry()
	for _, raw := range records {
		Apply(reg, raw)
	}
	mergeAliases(reg)
	return reg.Freeze()
}

// Apply normalizes one raw record into reg. Records whose kind carries no
// documentation shape (file) are ignored.
func Apply(reg *model.Registry, raw record.Raw) {
	switch raw.Kind {
	case record.KindFunction:
		if raw.Memberof != "" {
			cls := reg.EnsureClass(raw.Memberof, raw.Dir())
			cls.Members = append(cls.Members, model.Member{Method: newFunction(raw)})
			return
		}
		reg.AddFunction(newFunction(raw))
	case record.KindTypedef:
		if isFunctionTypedef(raw) {
			reg.AddFunction(newFunction(raw))
			return
		}
		t := newType(raw)
		t.Typedef = true
		reg.AddType(t)
	case record.KindClass:
		reg.DeclareClass(raw.Name, raw.Dir(), func(c *model.Class) {
			c.Description = raw.Classdesc
			c.CtorDescription = raw.Description
			c.CtorParams = fields(raw.Params)
			if len(raw.Augments) > 0 {
				c.Extends = FlattenTypeName(raw.Augments[0])
			}
			c.Examples = raw.Examples
		})
	case record.KindMember, record.KindConstant:
		if raw.Memberof != "" {
			cls := reg.EnsureClass(raw.Memberof, raw.Dir())
			cls.Members = append(cls.Members, model.Member{Property: newType(raw)})
			return
		}
		reg.AddType(newType(raw))
	case record.KindFile:
		// File-level records carry no entity shape.
	}
}

// isFunctionTypedef reports whether a typedef declares a callable
// signature rather than an object shape.
func isFunctionTypedef(raw record.Raw) bool {
	if len(raw.Params) > 0 || len(raw.Returns) > 0 || len(raw.Yields) > 0 {
		return true
	}
	for _, n := range raw.Type.Names {
		if n == "function" {
			return true
		}
	}
	return false
}

func newType(raw record.Raw) *model.Type {
	t := model.NewType(raw.Name, raw.Dir())
	t.Expr = FlattenExpr(raw.Type.Names)
	t.Description = raw.Description
	t.Properties = fields(raw.Properties)
	t.Augments = FlattenExpr(raw.Augments)
	t.Examples = raw.Examples
	return t
}

func newFunction(raw record.Raw) *model.Function {
	f := &model.Function{
		Name:        raw.Name,
		Dir:         raw.Dir(),
		Description: raw.Description,
		Params:      fields(raw.Params),
		Examples:    raw.Examples,
	}
	if len(raw.Returns) > 0 {
		f.Returns = &model.ReturnSpec{
			Expr:        FlattenExpr(raw.Returns[0].Type.Names),
			Description: raw.Returns[0].Description,
		}
	}
	if len(raw.Yields) > 0 {
		f.Yields = &model.ReturnSpec{
			Expr:        FlattenExpr(raw.Yields[0].Type.Names),
			Description: raw.Yields[0].Description,
		}
	}
	// A function whose signature is declared through a referenced type
	// alias carries no inline params; remember the alias for the merge pass.
	if len(raw.Params) == 0 && len(raw.Type.Names) == 1 && raw.Type.Names[0] != "function" {
		f.TypeAlias = FlattenTypeName(raw.Type.Names[0])
	}
	return f
}

func fields(params []record.Param) []model.Field {
	if len(params) == 0 {
		return nil
	}
	out := make([]model.Field, 0, len(params))
	for _, p := range params {
		f := model.Field{
			Name:        p.Name,
			Expr:        FlattenExpr(p.Type.Names),
			Optional:    p.Optional,
			Description: p.Description,
		}
		// Presence, not truthiness: 0, false and "" are real defaults.
		if p.DefaultSet {
			f.Default = defaultString(p.Default)
			f.HasDefault = true
		}
		out = append(out, f)
	}
	return out
}

func defaultString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case float64:
		// json numbers decode as float64; keep integral values unpadded.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// mergeAliases resolves typedef-as-function-signature references: a
// function that declared its shape through an alias inherits the alias's
// params, returns and yields, with the function's own fields winning.
func mergeAliases(reg *model.Registry) {
	reader := reg.Freeze()
	for _, dir := range reader.Dirs() {
		for _, e := range reader.InDir(dir) {
			if e.Kind != model.KindFunction || e.Function.TypeAlias == "" {
				continue
			}
			alias, ok := reader.Function(e.Function.TypeAlias)
			if !ok {
				continue
			}
			f := e.Function
			if len(f.Params) == 0 {
				f.Params = alias.Params
			}
			if f.Returns == nil {
				f.Returns = alias.Returns
			}
			if f.Yields == nil {
				f.Yields = alias.Yields
			}
		}
	}
}
