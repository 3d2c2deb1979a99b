// Package rtti implements runtime type identification and safe downcasting
// for object graphs built from struct embedding.
//
// A participating type declares itself once, at package level, naming the
// embedded bases it can be cast to:
//
//	var TypeF = rtti.Declare[F]("cross::F",
//		rtti.Interface(hierarchy.TypeA, func(f *F) *hierarchy.A { return &f.A }),
//		rtti.Interface(TypeB, func(f *F) *B { return &f.B }),
//	)
//
//	func (*F) Class() *rtti.Class { return TypeF.Class() }
//
// Primary bases are delegated to: a query that misses on the owner recurses
// into the base's own cast table. Interface bases are leaves: they match only
// their own identifier. Every base is reached through a typed upcast
// function, never through offset arithmetic.
//
// Queries take any Object and a *Type handle:
//
//	if b := rtti.Cast(obj, cross.TypeB); b != nil { ... }
//
// Exact-type queries are answered by a single identifier comparison. Tables
// are immutable once Declare returns, so casting needs no synchronization.
package rtti
