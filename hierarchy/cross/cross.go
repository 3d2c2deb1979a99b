// Package cross declares a hierarchy joining unrelated roots:
//
//	A -+   C -+   E -+
//	   |      |      |
//	   +-> F -+-> G -+-> H
//	   |      |
//	B -+   D -+
//
// F reaches A and B as interfaces. G delegates to F and reaches C and D as
// interfaces; H delegates to G and reaches E as an interface.
package cross

import (
	"github.com/chazu/vrc/hierarchy"
	"github.com/chazu/vrc/rtti"
)

type B struct{ ValB uint64 }
type C struct{ ValC uint64 }
type D struct{ ValD uint64 }
type E struct{ ValE uint64 }

type F struct {
	hierarchy.A
	B
	ValF uint64
}

type G struct {
	F
	C
	D
	ValG uint64
}

type H struct {
	G
	E
	ValH uint64
}

var (
	TypeB = rtti.Declare[B]("cross::B")
	TypeC = rtti.Declare[C]("cross::C")
	TypeD = rtti.Declare[D]("cross::D")
	TypeE = rtti.Declare[E]("cross::E")

	TypeF = rtti.Declare[F]("cross::F",
		rtti.Interface(hierarchy.TypeA, func(f *F) *hierarchy.A { return &f.A }),
		rtti.Interface(TypeB, func(f *F) *B { return &f.B }),
	)
	TypeG = rtti.Declare[G]("cross::G",
		rtti.Primary(TypeF, func(g *G) *F { return &g.F }),
		rtti.Interface(TypeC, func(g *G) *C { return &g.C }),
		rtti.Interface(TypeD, func(g *G) *D { return &g.D }),
	)
	TypeH = rtti.Declare[H]("cross::H",
		rtti.Primary(TypeG, func(h *H) *G { return &h.G }),
		rtti.Interface(TypeE, func(h *H) *E { return &h.E }),
	)
)

func (*B) Class() *rtti.Class { return TypeB.Class() }
func (*C) Class() *rtti.Class { return TypeC.Class() }
func (*D) Class() *rtti.Class { return TypeD.Class() }
func (*E) Class() *rtti.Class { return TypeE.Class() }
func (*F) Class() *rtti.Class { return TypeF.Class() }
func (*G) Class() *rtti.Class { return TypeG.Class() }
func (*H) Class() *rtti.Class { return TypeH.Class() }

func NewF() *F {
	return &F{A: *hierarchy.NewA(), B: B{ValB: 1}, ValF: 1}
}

func NewG() *G {
	return &G{F: *NewF(), C: C{ValC: 1}, D: D{ValD: 1}, ValG: 1}
}

func NewH() *H {
	return &H{G: *NewG(), E: E{ValE: 1}, ValH: 1}
}

// Kinds constructs F, G and H at indices 5 to 7. Lower indices are nil:
// only objects rooted at A can be held as nodes.
var Kinds = []hierarchy.Factory{
	5: func() hierarchy.Node { return NewF() },
	6: func() hierarchy.Node { return NewG() },
	7: func() hierarchy.Node { return NewH() },
}
