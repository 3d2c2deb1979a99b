// Package shallow declares a flat hierarchy: B through H all derive
// directly from A.
package shallow

import (
	"github.com/chazu/vrc/hierarchy"
	"github.com/chazu/vrc/rtti"
)

type B struct {
	hierarchy.A
	ValB uint64
}

type C struct {
	hierarchy.A
	ValC uint64
}

type D struct {
	hierarchy.A
	ValD uint64
}

type E struct {
	hierarchy.A
	ValE uint64
}

type F struct {
	hierarchy.A
	ValF uint64
}

type G struct {
	hierarchy.A
	ValG uint64
}

type H struct {
	hierarchy.A
	ValH uint64
}

var (
	TypeB = rtti.Declare[B]("shallow::B", rtti.Primary(hierarchy.TypeA, func(b *B) *hierarchy.A { return &b.A }))
	TypeC = rtti.Declare[C]("shallow::C", rtti.Primary(hierarchy.TypeA, func(c *C) *hierarchy.A { return &c.A }))
	TypeD = rtti.Declare[D]("shallow::D", rtti.Primary(hierarchy.TypeA, func(d *D) *hierarchy.A { return &d.A }))
	TypeE = rtti.Declare[E]("shallow::E", rtti.Primary(hierarchy.TypeA, func(e *E) *hierarchy.A { return &e.A }))
	TypeF = rtti.Declare[F]("shallow::F", rtti.Primary(hierarchy.TypeA, func(f *F) *hierarchy.A { return &f.A }))
	TypeG = rtti.Declare[G]("shallow::G", rtti.Primary(hierarchy.TypeA, func(g *G) *hierarchy.A { return &g.A }))
	TypeH = rtti.Declare[H]("shallow::H", rtti.Primary(hierarchy.TypeA, func(h *H) *hierarchy.A { return &h.A }))
)

func (*B) Class() *rtti.Class { return TypeB.Class() }
func (*C) Class() *rtti.Class { return TypeC.Class() }
func (*D) Class() *rtti.Class { return TypeD.Class() }
func (*E) Class() *rtti.Class { return TypeE.Class() }
func (*F) Class() *rtti.Class { return TypeF.Class() }
func (*G) Class() *rtti.Class { return TypeG.Class() }
func (*H) Class() *rtti.Class { return TypeH.Class() }

func NewB() *B { return &B{A: *hierarchy.NewA(), ValB: 1} }
func NewC() *C { return &C{A: *hierarchy.NewA(), ValC: 1} }
func NewD() *D { return &D{A: *hierarchy.NewA(), ValD: 1} }
func NewE() *E { return &E{A: *hierarchy.NewA(), ValE: 1} }
func NewF() *F { return &F{A: *hierarchy.NewA(), ValF: 1} }
func NewG() *G { return &G{A: *hierarchy.NewA(), ValG: 1} }
func NewH() *H { return &H{A: *hierarchy.NewA(), ValH: 1} }

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
