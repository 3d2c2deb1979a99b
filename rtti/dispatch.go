package rtti

import "github.com/chazu/vrc/typeid"

// Lookup resolves a query for id against obj, which must be an instance of
// c boxed as a pointer. It returns the matching subobject pointer, or nil.
//
// The self check comes first so exact-type queries never walk the table.
// Interface bases are compared before primary bases are recursed into.
func (c *Class) Lookup(obj any, id typeid.ID) any {
	if id == c.id {
		return obj
	}
	for i := range c.table {
		cand := &c.table[i]
		if cand.kind == KindInterface {
			if cand.class.id == id {
				return cand.up(obj)
			}
			continue
		}
		base := cand.up(obj)
		if base == nil {
			continue
		}
		if result := cand.class.Lookup(base, id); result != nil {
			return result
		}
	}
	return nil
}

// Cast returns obj's T subobject, or nil if obj is nil or not reachable as
// T. A miss is an ordinary outcome, not an error.
func Cast[T any](obj Object, to *Type[T]) *T {
	if obj == nil {
		return nil
	}
	c := obj.Class()
	if c == nil {
		return nil
	}
	p, _ := c.Lookup(obj, to.class.id).(*T)
	return p
}

// IsKindOf reports whether obj is reachable as T.
func IsKindOf[T any](obj Object, to *Type[T]) bool {
	return Cast(obj, to) != nil
}

// UpCast converts d to its B subobject through link. It never consults a
// cast table and succeeds for every non-nil d.
func UpCast[D, B any](d *D, link Link[D, B]) *B {
	return link.UpCast(d)
}
