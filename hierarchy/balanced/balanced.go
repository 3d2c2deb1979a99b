// Package balanced declares a two-level tree:
//
//	A -> B -> {C, D}
//	A -> E -> {F, G, H}
package balanced

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
	B
	ValD uint64
}

type E struct {
	hierarchy.A
	ValE uint64
}

type F struct {
	E
	ValF uint64
}

type G struct {
	E
	ValG uint64
}

type H struct {
	E
	ValH uint64
}

var (
	TypeB = rtti.Declare[B]("balanced::B", rtti.Primary(hierarchy.TypeA, func(b *B) *hierarchy.A { return &b.A }))
	TypeC = rtti.Declare[C]("balanced::C", rtti.Primary(TypeB, func(c *C) *B { return &c.B }))
	TypeD = rtti.Declare[D]("balanced::D", rtti.Primary(TypeB, func(d *D) *B { return &d.B }))
	TypeE = rtti.Declare[E]("balanced::E", rtti.Primary(hierarchy.TypeA, func(e *E) *hierarchy.A { return &e.A }))
	TypeF = rtti.Declare[F]("balanced::F", rtti.Primary(TypeE, func(f *F) *E { return &f.E }))
	TypeG = rtti.Declare[G]("balanced::G", rtti.Primary(TypeE, func(g *G) *E { return &g.E }))
	TypeH = rtti.Declare[H]("balanced::H", rtti.Primary(TypeE, func(h *H) *E { return &h.E }))
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
func NewD() *D { return &D{B: *NewB(), ValD: 1} }
func NewE() *E { return &E{A: *hierarchy.NewA(), ValE: 1} }
func NewF() *F { return &F{E: *NewE(), ValF: 1} }
func NewG() *G { return &G{E: *NewE(), ValG: 1} }
func NewH() *H { return &H{E: *NewE(), ValH: 1} }

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
