package rtti

import (
	"fmt"
	"reflect"

	"github.com/chazu/vrc/typeid"
)

// Object is implemented by every type taking part in casting.
//
// Each participating type must define Class on its own pointer type and
// return its own descriptor. A Class method promoted from an embedded base
// reports the base instead; Validate detects that.
type Object interface {
	Class() *Class
}

// BaseKind tells how a cast table reaches one of its bases.
type BaseKind uint8

const (
	// KindPrimary bases are delegated to recursively.
	KindPrimary BaseKind = iota + 1
	// KindInterface bases match their own identifier only.
	KindInterface
)

// String implements the Stringer interface.
func (k BaseKind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindInterface:
		return "interface"
	default:
		return fmt.Sprintf("BaseKind(%d)", uint8(k))
	}
}

// upcastFunc converts an owner pointer (boxed) into a base pointer (boxed).
// It returns an untyped nil when the owner is nil or of the wrong type.
type upcastFunc func(obj any) any

// candidate is one entry of a cast table.
type candidate struct {
	kind  BaseKind
	class *Class
	up    upcastFunc
}

// Class is the immutable descriptor of a participating type: its declared
// name, identifier and cast table.
type Class struct {
	name   string
	id     typeid.ID
	goType reflect.Type
	size   uintptr

	// Interface candidates precede primary ones. The self check is not stored.
	table []candidate

	// check reports whether the Go type wires Class correctly.
	check func() error
}

// Name returns the declared name.
func (c *Class) Name() string {
	return c.name
}

// ID returns the identifier derived from the declared name.
func (c *Class) ID() typeid.ID {
	return c.id
}

// GoType returns the declared struct type.
func (c *Class) GoType() reflect.Type {
	return c.goType
}

// Size returns the size in bytes of one instance.
func (c *Class) Size() uintptr {
	return c.size
}

// String implements the Stringer interface.
func (c *Class) String() string {
	return c.name
}

// Bases describes the cast table in evaluation order.
func (c *Class) Bases() []BaseInfo {
	result := make([]BaseInfo, len(c.table))
	for i, cand := range c.table {
		result[i] = BaseInfo{
			Name: cand.class.name,
			ID:   cand.class.id,
			Kind: cand.kind,
		}
	}
	return result
}

// Reaches reports whether a query for id against an instance of c succeeds.
// It walks the table exactly as Lookup does, without an object.
func (c *Class) Reaches(id typeid.ID) bool {
	if id == c.id {
		return true
	}
	for i := range c.table {
		cand := &c.table[i]
		if cand.kind == KindInterface {
			if cand.class.id == id {
				return true
			}
			continue
		}
		if cand.class.Reaches(id) {
			return true
		}
	}
	return false
}

// IsSubclassOf returns true if instances of c can be cast to other (or c is
// other).
func (c *Class) IsSubclassOf(other *Class) bool {
	return other != nil && c.Reaches(other.id)
}

// Depth returns the length of the longest base chain (0 for a root).
func (c *Class) Depth() int {
	depth := 0
	for i := range c.table {
		d := 1
		if c.table[i].kind == KindPrimary {
			d += c.table[i].class.Depth()
		}
		if d > depth {
			depth = d
		}
	}
	return depth
}

// BaseInfo describes one cast-table entry.
type BaseInfo struct {
	Name string
	ID   typeid.ID
	Kind BaseKind
}

// ClassInfo describes a declared type for diagnostics and catalogs.
type ClassInfo struct {
	Name  string
	ID    typeid.ID
	Size  uintptr
	Bases []BaseInfo
}

// Info returns a snapshot of the descriptor.
func (c *Class) Info() ClassInfo {
	return ClassInfo{
		Name:  c.name,
		ID:    c.id,
		Size:  c.size,
		Bases: c.Bases(),
	}
}
