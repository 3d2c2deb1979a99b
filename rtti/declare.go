package rtti

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/chazu/vrc/typeid"
)

// Type is the typed handle of a declared type. Holding one is proof that T
// declared a name, which is why every query takes a *Type.
type Type[T any] struct {
	class *Class
}

// Class returns the untyped descriptor.
func (t *Type[T]) Class() *Class {
	return t.class
}

// Name returns the declared name.
func (t *Type[T]) Name() string {
	return t.class.name
}

// ID returns the declared identifier.
func (t *Type[T]) ID() typeid.ID {
	return t.class.id
}

// New allocates a zero instance.
func (t *Type[T]) New() *T {
	return new(T)
}

// Cast is shorthand for Cast(obj, t).
func (t *Type[T]) Cast(obj Object) *T {
	return Cast(obj, t)
}

// Is is shorthand for IsKindOf(obj, t).
func (t *Type[T]) Is(obj Object) bool {
	return IsKindOf(obj, t)
}

// Base is a base declaration for owner type T. Only a Link[T, B] satisfies
// Base[T], so declaring a base for the wrong owner does not compile.
type Base[T any] interface {
	candidate(owner *T) candidate
}

// Link declares that D embeds B and says how to reach it.
type Link[D, B any] struct {
	kind BaseKind
	base *Type[B]
	up   func(*D) *B
}

// Primary declares a delegated base: queries that miss on D continue into
// B's cast table.
func Primary[D, B any](base *Type[B], up func(*D) *B) Link[D, B] {
	return Link[D, B]{kind: KindPrimary, base: base, up: up}
}

// Interface declares a leaf base: it matches B's identifier and nothing
// reachable from B.
func Interface[D, B any](base *Type[B], up func(*D) *B) Link[D, B] {
	return Link[D, B]{kind: KindInterface, base: base, up: up}
}

// Kind returns how the base is reached.
func (l Link[D, B]) Kind() BaseKind {
	return l.kind
}

// UpCast converts d to its B subobject. It performs no table lookup.
func (l Link[D, B]) UpCast(d *D) *B {
	if d == nil {
		return nil
	}
	return l.up(d)
}

func (l Link[D, B]) candidate(*D) candidate {
	if l.base == nil || l.base.class == nil {
		panic(fmt.Sprintf("rtti: %s base of %v is not declared", l.kind, reflect.TypeFor[D]()))
	}
	if l.up == nil {
		panic(fmt.Sprintf("rtti: %s base %s of %v has no upcast", l.kind, l.base.class.name, reflect.TypeFor[D]()))
	}
	up := l.up
	return candidate{
		kind:  l.kind,
		class: l.base.class,
		up: func(obj any) any {
			d, _ := obj.(*D)
			if d == nil {
				return nil
			}
			if b := up(d); b != nil {
				return b
			}
			return nil
		},
	}
}

// Declare registers T under name in the process-wide registry and builds
// its cast table. It is meant for package-level variable initialization,
// which orders every base before its dependents.
//
// Declare panics if name is already declared or a base is incomplete.
func Declare[T any](name string, bases ...Base[T]) *Type[T] {
	return DeclareIn[T](defaultRegistry, name, bases...)
}

// DeclareIn is like Declare but registers into r.
func DeclareIn[T any](r *Registry, name string, bases ...Base[T]) *Type[T] {
	var zero T
	c := &Class{
		name:   name,
		id:     typeid.Of(name),
		goType: reflect.TypeFor[T](),
		size:   unsafe.Sizeof(zero),
	}

	var interfaces, primaries []candidate
	for _, b := range bases {
		cand := b.candidate(nil)
		if cand.kind == KindInterface {
			interfaces = append(interfaces, cand)
		} else {
			primaries = append(primaries, cand)
		}
	}
	// Interfaces keep declaration order; primaries are tried last-declared first.
	c.table = make([]candidate, 0, len(interfaces)+len(primaries))
	c.table = append(c.table, interfaces...)
	for i := len(primaries) - 1; i >= 0; i-- {
		c.table = append(c.table, primaries[i])
	}

	c.check = func() error { return checkObject[T](c) }

	if old := r.register(c); old != nil {
		panic(fmt.Sprintf("rtti: %q declared twice (%v and %v)", name, old.goType, c.goType))
	}
	return &Type[T]{class: c}
}

// checkObject verifies that *T implements Object and reports c.
func checkObject[T any](c *Class) error {
	obj, ok := any(new(T)).(Object)
	if !ok {
		return fmt.Errorf("%w: *%v (%s)", ErrNotObject, c.goType, c.name)
	}
	got := obj.Class()
	if got != c {
		reported := "nil"
		if got != nil {
			reported = got.name
		}
		return fmt.Errorf("%w: *%v reports %s, want %s", ErrInheritedClass, c.goType, reported, c.name)
	}
	return nil
}
