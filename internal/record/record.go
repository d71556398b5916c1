// Package record defines the raw comment-record contract produced by the
// external source parser, and the ingestion/filtering applied before
// normalization. The parser emits one JSON array of records per run.
package record

import (
	"encoding/json"
	"path"
	"strings"
)

// Kind tags a raw record.
type Kind string

const (
	KindFunction Kind = "function"
	KindTypedef  Kind = "typedef"
	KindClass    Kind = "class"
	KindMember   Kind = "member"
	KindFile     Kind = "file"
	KindConstant Kind = "constant"
)

// TypeExpr is an ordered set of type-name fragments; more than one
// fragment means a union.
type TypeExpr struct {
	Names []string `json:"names"`
}

// IsZero reports whether no type names are declared.
func (t TypeExpr) IsZero() bool { return len(t.Names) == 0 }

// Param is one parameter or property declaration on a raw record.
//
// DefaultSet distinguishes an explicitly falsy default (0, false, "")
// from an absent one; json decoding alone cannot tell those apart.
type Param struct {
	Name        string   `json:"name"`
	Type        TypeExpr `json:"type"`
	Optional    bool     `json:"optional"`
	Description string   `json:"description"`
	Default     any      `json:"defaultvalue"`
	DefaultSet  bool     `json:"-"`
}

// UnmarshalJSON probes for key presence so that explicit falsy defaults
// survive decoding.
func (p *Param) UnmarshalJSON(data []byte) error {
	type alias Param
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	*p = Param(a)
	_, p.DefaultSet = probe["defaultvalue"]
	return nil
}

// Return describes a return or yield declaration.
type Return struct {
	Type        TypeExpr `json:"type"`
	Description string   `json:"description"`
}

// Meta carries source-location fields attached by the parser.
type Meta struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// Raw is one loosely-typed record as emitted by the parser. One shape is
// reused across all kinds; normalization splits it into typed entities.
type Raw struct {
	Kind         Kind     `json:"kind"`
	Name         string   `json:"name"`
	Longname     string   `json:"longname"`
	Description  string   `json:"description"`
	Classdesc    string   `json:"classdesc"`
	Memberof     string   `json:"memberof"`
	Access       string   `json:"access"`
	Undocumented bool     `json:"undocumented"`
	Scope        string   `json:"scope"`
	Type         TypeExpr `json:"type"`
	Params       []Param  `json:"params"`
	Properties   []Param  `json:"properties"`
	Returns      []Return `json:"returns"`
	Yields       []Return `json:"yields"`
	Augments     []string `json:"augments"`
	Examples     []string `json:"examples"`
	Meta         Meta     `json:"meta"`
}

// Dir returns the record's owning directory, relative to the scanned root.
func (r Raw) Dir() string {
	p := r.Meta.Path
	if p == "" {
		p = path.Dir(r.Meta.Filename)
	}
	p = strings.TrimPrefix(p, "./")
	if p == "." {
		return ""
	}
	return p
}

// Suppressed reports whether the record must never reach entity
// registries: private access, explicitly undocumented, or nameless.
func (r Raw) Suppressed() bool {
	if r.Undocumented {
		return true
	}
	if r.Access == "private" {
		return true
	}
	return r.Name == ""
}
