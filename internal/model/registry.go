package model

import "sort"

// Reader is the read-only registry view handed to the tree builder and
// the reference resolver once population is complete.
type Reader interface {
	Type(name string) (*Type, bool)
	Function(name string) (*Function, bool)
	Class(name string) (*Class, bool)
	// Lookup finds an entity of any kind by name. Classes shadow types,
	// types shadow functions, mirroring reference-resolution priority.
	Lookup(name string) (Entity, bool)
	// Dirs lists every directory owning at least one entity, sorted.
	Dirs() []string
	// InDir lists the entities owned by one directory, in registration order.
	InDir(dir string) []Entity
}

// Registry accumulates canonical entities during the population phase.
// Freeze returns the read-only view; the registry must not be mutated
// after that.
type Registry struct {
	types   map[string]*Type
	funcs   map[string]*Function
	classes map[string]*Class
	order   []Entity // registration order, used for per-dir listing
}

func NewRegistry() *Registry {
	return &Registry{
		types:   make(map[string]*Type),
		funcs:   make(map[string]*Function),
		classes: make(map[string]*Class),
	}
}

// AddType registers a type entity. A same-name re-registration overwrites.
func (r *Registry) AddType(t *Type) {
	if _, seen := r.types[t.Name]; !seen {
		r.order = append(r.order, Entity{Kind: KindType, Name: t.Name, Dir: t.Dir, Type: t})
	}
	r.types[t.Name] = t
	r.refresh()
}

// AddFunction registers a function entity. A same-name re-registration overwrites.
func (r *Registry) AddFunction(f *Function) {
	if _, seen := r.funcs[f.Name]; !seen {
		r.order = append(r.order, Entity{Kind: KindFunction, Name: f.Name, Dir: f.Dir, Function: f})
	}
	r.funcs[f.Name] = f
	r.refresh()
}

// EnsureClass returns the class registered under name, creating a
// placeholder if none exists yet. Members may arrive before the class's
// own declaration record.
func (r *Registry) EnsureClass(name, dir string) *Class {
	if c, ok := r.classes[name]; ok {
		return c
	}
	c := &Class{Name: name, Dir: dir, placeholder: true}
	r.classes[name] = c
	r.order = append(r.order, Entity{Kind: KindClass, Name: name, Dir: dir, Class: c})
	return c
}

// DeclareClass fills in the declaration fields on a class, creating it if
// only member records have been seen so far.
func (r *Registry) DeclareClass(name, dir string, fill func(*Class)) *Class {
	c := r.EnsureClass(name, dir)
	c.Dir = dir
	c.placeholder = false
	fill(c)
	r.refresh()
	return c
}

// refresh re-points order entries at current map values so overwrites are
// visible through the ordered listing.
func (r *Registry) refresh() {
	for i := range r.order {
		e := &r.order[i]
		switch e.Kind {
		case KindType:
			if t, ok := r.types[e.Name]; ok {
				e.Type = t
				e.Dir = t.Dir
			}
		case KindFunction:
			if f, ok := r.funcs[e.Name]; ok {
				e.Function = f
				e.Dir = f.Dir
			}
		case KindClass:
			if c, ok := r.classes[e.Name]; ok {
				e.Class = c
				e.Dir = c.Dir
			}
		}
	}
}

// Freeze completes population and returns the read-only view.
func (r *Registry) Freeze() Reader {
	return (*frozen)(r)
}

type frozen Registry

func (f *frozen) Type(name string) (*Type, bool) {
	t, ok := f.types[name]
	return t, ok
}

func (f *frozen) Function(name string) (*Function, bool) {
	fn, ok := f.funcs[name]
	return fn, ok
}

func (f *frozen) Class(name string) (*Class, bool) {
	c, ok := f.classes[name]
	return c, ok
}

func (f *frozen) Lookup(name string) (Entity, bool) {
	if c, ok := f.classes[name]; ok {
		return Entity{Kind: KindClass, Name: name, Dir: c.Dir, Class: c}, true
	}
	if t, ok := f.types[name]; ok {
		return Entity{Kind: KindType, Name: name, Dir: t.Dir, Type: t}, true
	}
	if fn, ok := f.funcs[name]; ok {
		return Entity{Kind: KindFunction, Name: name, Dir: fn.Dir, Function: fn}, true
	}
	return Entity{}, false
}

func (f *frozen) Dirs() []string {
	seen := make(map[string]struct{})
	var dirs []string
	for _, e := range f.order {
		if _, ok := seen[e.Dir]; ok {
			continue
		}
		seen[e.Dir] = struct{}{}
		dirs = append(dirs, e.Dir)
	}
	sort.Strings(dirs)
	return dirs
}

func (f *frozen) InDir(dir string) []Entity {
	var out []Entity
	for _, e := range f.order {
		if e.Dir == dir {
			out = append(out, e)
		}
	}
	return out
}
