// Package hierarchy declares the root types shared by the benchmark class
// hierarchies: A, the common root every shape derives from, and Z, a type
// with the same layout that is related to nothing.
//
// The shapes themselves live in the subpackages deep, shallow, balanced and
// cross. Package diamond adds a virtual-inheritance diamond.
package hierarchy

import "github.com/chazu/vrc/rtti"

// Node is the view benchmark data is held through: an object rooted at A.
type Node interface {
	rtti.Object
	Root() *A
}

// Factory constructs one kind of node.
type Factory func() Node

// A is the root of every benchmark hierarchy.
type A struct {
	ValA uint64
	ValZ uint64
}

// Z has the same shape as A and no relation to anything.
type Z struct {
	ValZ uint64
}

// Bare carries no data; its size is the cost of participating.
type Bare struct{}

var (
	TypeA    = rtti.Declare[A]("A")
	TypeZ    = rtti.Declare[Z]("Z")
	TypeBare = rtti.Declare[Bare]("Bare")
)

func (*A) Class() *rtti.Class    { return TypeA.Class() }
func (*Z) Class() *rtti.Class    { return TypeZ.Class() }
func (*Bare) Class() *rtti.Class { return TypeBare.Class() }

// Root returns a itself; embedding types inherit it.
func (a *A) Root() *A { return a }

// NewA returns an A with its marker field set.
func NewA() *A { return &A{ValA: 1} }

// NewZ returns a Z with its marker field set.
func NewZ() *Z { return &Z{ValZ: 1} }
