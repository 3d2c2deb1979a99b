// Package diamond declares a virtual-inheritance diamond. Left and Right
// both embed a pointer to one shared Base; Join embeds Left and Right.
//
//	     Base
//	    /    \
//	 Left    Right
//	    \    /
//	     Join
package diamond

import "github.com/chazu/vrc/rtti"

type Base struct{ ValBase uint64 }

type Left struct {
	*Base
	ValLeft uint64
}

type Right struct {
	*Base
	ValRight uint64
}

type Join struct {
	Left
	Right
	ValJoin uint64
}

var (
	TypeBase  = rtti.Declare[Base]("diamond::Base")
	TypeLeft  = rtti.Declare[Left]("diamond::Left", rtti.Primary(TypeBase, func(l *Left) *Base { return l.Base }))
	TypeRight = rtti.Declare[Right]("diamond::Right", rtti.Primary(TypeBase, func(r *Right) *Base { return r.Base }))
)

var TypeJoin = rtti.Declare[Join]("diamond::Join",
	rtti.Primary(TypeLeft, func(j *Join) *Left { return &j.Left }),
	rtti.Primary(TypeRight, func(j *Join) *Right { return &j.Right }),
)

func (*Base) Class() *rtti.Class  { return TypeBase.Class() }
func (*Left) Class() *rtti.Class  { return TypeLeft.Class() }
func (*Right) Class() *rtti.Class { return TypeRight.Class() }
func (*Join) Class() *rtti.Class  { return TypeJoin.Class() }

// New builds a Join whose two paths share one Base.
func New() *Join {
	base := &Base{ValBase: 1}
	return &Join{
		Left:    Left{Base: base, ValLeft: 1},
		Right:   Right{Base: base, ValRight: 1},
		ValJoin: 1,
	}
}
