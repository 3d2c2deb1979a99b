// Package deep declares a linear hierarchy:
//
//	A -> B -> C -> D -> E -> F -> G -> H
package deep

import (
	"github.com/chazu/vrc/hierarchy"
	"github.com/chazu/vrc/rtti"
)

type B struct {
	hierarchy.A
	ValB uint64
}

type C struct {
	B
	ValC uint64
}

type D struct {
	C
	ValD uint64
}

type E struct {
	D
	ValE uint64
}

type F struct {
	E
	ValF uint64
}

type G struct {
	F
	ValG uint64
}

type H struct {
	G
	ValH uint64
}

var (
	TypeB = rtti.Declare[B]("deep::B", rtti.Primary(hierarchy.TypeA, func(b *B) *hierarchy.A { return &b.A }))
	TypeC = rtti.Declare[C]("deep::C", rtti.Primary(TypeB, func(c *C) *B { return &c.B }))
	TypeD = rtti.Declare[D]("deep::D", rtti.Primary(TypeC, func(d *D) *C { return &d.C }))
	TypeE = rtti.Declare[E]("deep::E", rtti.Primary(TypeD, func(e *E) *D { return &e.D }))
	TypeF = rtti.Declare[F]("deep::F", rtti.Primary(TypeE, func(f *F) *E { return &f.E }))
	TypeG = rtti.Declare[G]("deep::G", rtti.Primary(TypeF, func(g *G) *F { return &g.F }))
	TypeH = rtti.Declare[H]("deep::H", rtti.Primary(TypeG, func(h *H) *G { return &h.G }))
)

func (*B) Class() *rtti.Class { return TypeB.Class() }
func (*C) Class() *rtti.Class { return TypeC.Class() }
func (*D) Class() *rtti.Class { return TypeD.Class() }
func (*E) Class() *rtti.Class { return TypeE.Class() }
func (*F) Class() *rtti.Class { return TypeF.Class() }
func (*G) Class() *rtti.Class { return TypeG.Class() }
func (*H) Class() *rtti.Class { return TypeH.Class() }

func NewB() *B { return &B{A: *hierarchy.NewA(), ValB: 1} }
func NewC() *C { return &C{B: *NewB(), ValC: 1} }
func NewD() *D { return &D{C: *NewC(), ValD: 1} }
func NewE() *E { return &E{D: *NewD(), ValE: 1} }
func NewF() *F { return &F{E: *NewE(), ValF: 1} }
func NewG() *G { return &G{F: *NewF(), ValG: 1} }
func NewH() *H { return &H{G: *NewG(), ValH: 1} }

// Kinds constructs A through H by index.
var Kinds = []hierarchy.Factory{
	func() hierarchy.Node { return hierarchy.NewA() },
	func() hierarchy.Node { return NewB() },
	func() hierarchy.Node { return NewC() },
	func() hierarchy.Node { return NewD() },
	func() hierarchy.Node { return NewE() },
	func() hierarchy.Node { return NewF() },
	func() hierarchy.Node { return NewG() },
	func() hierarchy.Node { return NewH() },
}
