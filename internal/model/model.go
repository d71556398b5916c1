// Package model holds the canonical documentation entities produced by
// normalization, and the registries they live in. Registries are built
// once per invocation and read-only afterwards.
package model

import (
	"git.home.luguber.info/inful/codedoc/internal/slug"
)

// EntityKind discriminates the closed set of canonical entity shapes.
type EntityKind string

const (
	KindType     EntityKind = "type"
	KindFunction EntityKind = "function"
	KindClass    EntityKind = "class"
)

// Field is a parameter or property after normalization. HasDefault
// distinguishes explicitly falsy defaults from absent ones.
type Field struct {
	Name        string
	Expr        []string // flattened type-name fragments; >1 means union
	Optional    bool
	Description string
	Default     string
	HasDefault  bool
}

// ReturnSpec describes a return or yield declaration.
type ReturnSpec struct {
	Expr        []string
	Description string
}

// Type is a canonical type alias / object-shape entity. Typedef marks
// entities born from typedef records; they render inside a unit's
// trailing "Types" section rather than as primary page content, unlike
// loose members and constants.
type Type struct {
	Name        string
	ID          string
	Expr        []string
	Dir         string
	Description string
	Properties  []Field
	Augments    []string
	Examples    []string
	Typedef     bool
}

// Function is a canonical function entity. TypeAlias names a typedef
// whose signature the function declared instead of inline parameters;
// the alias shape is merged in after registration (explicit fields win).
type Function struct {
	Name        string
	Dir         string
	Description string
	Params      []Field
	Returns     *ReturnSpec
	Yields      *ReturnSpec
	Examples    []string
	TypeAlias   string
}

// Member is one class member: exactly one of Property or Method is set.
type Member struct {
	Property *Type
	Method   *Function
}

// Class is a canonical class entity. Members accumulate in arrival order
// regardless of whether the class declaration record has been seen yet.
type Class struct {
	Name            string
	Dir             string
	Description     string
	CtorDescription string
	CtorParams      []Field
	Extends         string
	Members         []Member
	Examples        []string
	placeholder     bool
}

// Entity is the cross-kind view the reference resolver works against.
type Entity struct {
	Kind     EntityKind
	Name     string
	Dir      string
	Type     *Type
	Function *Function
	Class    *Class
}

// AnchorID returns the entity's base heading anchor. Page-level
// deduplication is the HTML renderer's concern, not the entity's.
func (e Entity) AnchorID() string {
	if e.Kind == KindType && e.Type != nil && e.Type.ID != "" {
		return e.Type.ID
	}
	return slug.Make(e.Name)
}

// NewType constructs a Type with its canonical slug id.
func NewType(name, dir string) *Type {
	return &Type{Name: name, ID: slug.Make(name), Dir: dir}
}
