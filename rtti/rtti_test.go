package rtti

import (
	"sync"
	"testing"
	"unsafe"
)

// ---------------------------------------------------------------------------
// Test hierarchy
//
//	animal <- mammal <- dog <-+
//	                          +- robodog (pet, robot as interfaces)
//	pet, robot, rock: unrelated roots
//	statue: mammal as an interface base only
// ---------------------------------------------------------------------------

var testTypes = NewRegistry()

type animal struct{ legs int }
type mammal struct {
	animal
	fur bool
}
type dog struct {
	mammal
	name string
}
type pet struct{ owner string }
type robot struct{ serial int }
type robodog struct {
	dog
	pet
	robot
	battery int
}
type rock struct{ weight int }
type statue struct {
	mammal
	plaque int
}

var (
	typeAnimal = DeclareIn[animal](testTypes, "test::Animal")
	typeMammal = DeclareIn[mammal](testTypes, "test::Mammal", Primary(typeAnimal, func(m *mammal) *animal { return &m.animal }))
	typeDog    = DeclareIn[dog](testTypes, "test::Dog", Primary(typeMammal, func(d *dog) *mammal { return &d.mammal }))
	typePet    = DeclareIn[pet](testTypes, "test::Pet")
	typeRobot  = DeclareIn[robot](testTypes, "test::Robot")
	typeRock   = DeclareIn[rock](testTypes, "test::Rock")
	typeStatue = DeclareIn[statue](testTypes, "test::Statue", Interface(typeMammal, func(s *statue) *mammal { return &s.mammal }))
)

var robodogPet = Interface(typePet, func(r *robodog) *pet { return &r.pet })

var typeRobodog = DeclareIn[robodog](testTypes, "test::Robodog",
	Primary(typeDog, func(r *robodog) *dog { return &r.dog }),
	robodogPet,
	Interface(typeRobot, func(r *robodog) *robot { return &r.robot }),
)

func (*animal) Class() *Class  { return typeAnimal.Class() }
func (*mammal) Class() *Class  { return typeMammal.Class() }
func (*dog) Class() *Class     { return typeDog.Class() }
func (*pet) Class() *Class     { return typePet.Class() }
func (*robot) Class() *Class   { return typeRobot.Class() }
func (*rock) Class() *Class    { return typeRock.Class() }
func (*robodog) Class() *Class { return typeRobodog.Class() }
func (*statue) Class() *Class  { return typeStatue.Class() }

// Virtual inheritance: left and right share one vbase through pointers.
type vbase struct{ shared int }
type left struct {
	*vbase
	l int
}
type right struct {
	*vbase
	r int
}
type join struct {
	left
	right
	j int
}
type joinRL struct {
	left
	right
	j int
}

var (
	typeVBase = DeclareIn[vbase](testTypes, "test::VBase")
	typeLeft  = DeclareIn[left](testTypes, "test::Left", Primary(typeVBase, func(l *left) *vbase { return l.vbase }))
	typeRight = DeclareIn[right](testTypes, "test::Right", Primary(typeVBase, func(r *right) *vbase { return r.vbase }))
)

var typeJoin = DeclareIn[join](testTypes, "test::Join",
	Primary(typeLeft, func(j *join) *left { return &j.left }),
	Primary(typeRight, func(j *join) *right { return &j.right }),
)

var typeJoinRL = DeclareIn[joinRL](testTypes, "test::JoinRL",
	Primary(typeRight, func(j *joinRL) *right { return &j.right }),
	Primary(typeLeft, func(j *joinRL) *left { return &j.left }),
)

func (*vbase) Class() *Class  { return typeVBase.Class() }
func (*left) Class() *Class   { return typeLeft.Class() }
func (*right) Class() *Class  { return typeRight.Class() }
func (*join) Class() *Class   { return typeJoin.Class() }
func (*joinRL) Class() *Class { return typeJoinRL.Class() }

func newJoin() *join {
	v := &vbase{shared: 7}
	return &join{left: left{vbase: v, l: 1}, right: right{vbase: v, r: 2}, j: 3}
}

// ---------------------------------------------------------------------------
// Dispatch tests
// ---------------------------------------------------------------------------

func TestCastSelf(t *testing.T) {
	objects := []Object{&animal{}, &mammal{}, &dog{}, &pet{}, &robot{}, &rock{}, &robodog{}, &statue{}}
	for _, obj := range objects {
		c := obj.Class()
		if got := c.Lookup(obj, c.ID()); got != any(obj) {
			t.Errorf("%s: self lookup = %v, want the object itself", c, got)
		}
	}

	d := &dog{}
	if got := Cast(d, typeDog); got != d {
		t.Errorf("Cast(dog, Dog) = %p, want %p", got, d)
	}
}

func TestCastLinearChain(t *testing.T) {
	d := &dog{name: "rex"}
	var base Object = &d.mammal.animal // static view only: reports Animal
	if Cast(base, typeDog) != nil {
		t.Error("an embedded animal must not be cast down on its own")
	}

	var obj Object = d
	if got := Cast(obj, typeMammal); got != &d.mammal {
		t.Errorf("Cast(dog, Mammal) = %p, want %p", got, &d.mammal)
	}
	if got := Cast(obj, typeAnimal); got != &d.mammal.animal {
		t.Errorf("Cast(dog, Animal) = %p, want %p", got, &d.mammal.animal)
	}
	if got := Cast(obj, typeDog); got != d {
		t.Errorf("Cast(dog, Dog) = %p, want %p", got, d)
	}
	if got := Cast(obj, typeRock); got != nil {
		t.Errorf("Cast(dog, Rock) = %p, want nil", got)
	}
}

func TestCastAncestorEqualsStaticUpcast(t *testing.T) {
	rd := &robodog{}
	cases := []struct {
		name string
		got  unsafe.Pointer
		want unsafe.Pointer
	}{
		{"Dog", unsafe.Pointer(Cast(rd, typeDog)), unsafe.Pointer(&rd.dog)},
		{"Mammal", unsafe.Pointer(Cast(rd, typeMammal)), unsafe.Pointer(&rd.dog.mammal)},
		{"Animal", unsafe.Pointer(Cast(rd, typeAnimal)), unsafe.Pointer(&rd.dog.mammal.animal)},
		{"Pet", unsafe.Pointer(Cast(rd, typePet)), unsafe.Pointer(UpCast(rd, robodogPet))},
		{"Robot", unsafe.Pointer(Cast(rd, typeRobot)), unsafe.Pointer(&rd.robot)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got == nil {
				t.Fatal("cast failed")
			}
			if tc.got != tc.want {
				t.Errorf("address = %p, want %p", tc.got, tc.want)
			}
		})
	}
}

func TestCastCrossHierarchy(t *testing.T) {
	rd := &robodog{}
	var asAnimal Object = rd

	p := Cast(asAnimal, typePet)
	if p == nil {
		t.Fatal("Cast(robodog, Pet) failed")
	}
	r := Cast(asAnimal, typeRobot)
	if r == nil {
		t.Fatal("Cast(robodog, Robot) failed")
	}

	start := unsafe.Pointer(rd)
	if unsafe.Pointer(p) == start {
		t.Error("pet subobject should not share the robodog's address")
	}
	if unsafe.Pointer(p) == unsafe.Pointer(r) {
		t.Error("pet and robot subobjects should have distinct addresses")
	}
	if unsafe.Pointer(Cast(asAnimal, typeAnimal)) != start {
		t.Error("the primary chain should start at the robodog's address")
	}
}

func TestCastUnrelated(t *testing.T) {
	cases := []Object{&animal{}, &dog{}, &robodog{}, &pet{}, &statue{}}
	for _, obj := range cases {
		if IsKindOf(obj, typeRock) {
			t.Errorf("%s should not be a Rock", obj.Class())
		}
	}
	if IsKindOf(&animal{}, typeDog) {
		t.Error("an animal is not a dog")
	}
	if IsKindOf(&pet{}, typeRobodog) {
		t.Error("a pet is not a robodog")
	}
}

func TestInterfaceBaseIsLeaf(t *testing.T) {
	s := &statue{}
	if got := Cast(s, typeMammal); got != &s.mammal {
		t.Errorf("Cast(statue, Mammal) = %p, want %p", got, &s.mammal)
	}
	if got := Cast(s, typeAnimal); got != nil {
		t.Errorf("Cast(statue, Animal) = %p, want nil: interface bases are not delegated to", got)
	}
}

func TestCastDiamond(t *testing.T) {
	j := newJoin()
	shared := j.left.vbase

	if got := Cast(j, typeVBase); got != shared {
		t.Errorf("Cast(join, VBase) = %p, want %p", got, shared)
	}
	if got := Cast(&j.right, typeVBase); got != shared {
		t.Errorf("Cast(join.right, VBase) = %p, want %p", got, shared)
	}
	if got := Cast(&j.left, typeVBase); got != shared {
		t.Errorf("Cast(join.left, VBase) = %p, want %p", got, shared)
	}

	v := &vbase{}
	rl := &joinRL{left: left{vbase: v}, right: right{vbase: v}}
	if got := Cast(rl, typeVBase); got != v {
		t.Errorf("Cast(joinRL, VBase) = %p, want %p", got, v)
	}
	if got := Cast(rl, typeLeft); got != &rl.left {
		t.Errorf("Cast(joinRL, Left) = %p, want %p", got, &rl.left)
	}
}

func TestCastNil(t *testing.T) {
	if got := Cast(nil, typeDog); got != nil {
		t.Errorf("Cast(nil) = %p, want nil", got)
	}

	var d *dog
	if got := Cast(d, typeDog); got != nil {
		t.Errorf("Cast(typed nil, Dog) = %p, want nil", got)
	}
	if got := Cast(d, typeAnimal); got != nil {
		t.Errorf("Cast(typed nil, Animal) = %p, want nil", got)
	}
	var rd *robodog
	if IsKindOf(rd, typePet) {
		t.Error("IsKindOf(typed nil, Pet) = true, want false")
	}
	if UpCast(rd, robodogPet) != nil {
		t.Error("UpCast(nil) should be nil")
	}
}

func TestCastIdempotent(t *testing.T) {
	rd := &robodog{}
	first := Cast(rd, typeRobot)
	for i := 0; i < 10; i++ {
		if got := Cast(rd, typeRobot); got != first {
			t.Fatalf("iteration %d: Cast = %p, want %p", i, got, first)
		}
		if Cast(rd, typeRock) != nil {
			t.Fatalf("iteration %d: miss turned into a hit", i)
		}
	}
}

func TestTypeMethods(t *testing.T) {
	d := &dog{}
	if typeMammal.Cast(d) != &d.mammal {
		t.Error("Type.Cast should match Cast")
	}
	if !typeAnimal.Is(d) || typePet.Is(d) {
		t.Error("Type.Is should match IsKindOf")
	}
	if typeDog.Name() != "test::Dog" {
		t.Errorf("Name = %q, want %q", typeDog.Name(), "test::Dog")
	}
	if n := typeDog.New(); n == nil || Cast(n, typeDog) != n {
		t.Error("New should return a castable instance")
	}
}

func TestCastDoesNotAllocate(t *testing.T) {
	rd := &robodog{}
	allocs := testing.AllocsPerRun(100, func() {
		_ = Cast(rd, typeRobot)
		_ = Cast(rd, typeAnimal)
		_ = Cast(rd, typeRock)
	})
	if allocs != 0 {
		t.Errorf("Cast allocated %.1f times per run, want 0", allocs)
	}
}

func TestConcurrentCast(t *testing.T) {
	rd := &robodog{}
	j := newJoin()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if Cast(rd, typePet) != &rd.pet {
					t.Error("concurrent Cast(robodog, Pet) mismatch")
					return
				}
				if Cast(j, typeVBase) != j.left.vbase {
					t.Error("concurrent Cast(join, VBase) mismatch")
					return
				}
			}
		}()
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// Benchmarks
// ---------------------------------------------------------------------------

func BenchmarkCastExact(b *testing.B) {
	var obj Object = &robodog{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Cast(obj, typeRobodog)
	}
}

func BenchmarkCastDeepAncestor(b *testing.B) {
	var obj Object = &robodog{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Cast(obj, typeAnimal)
	}
}

func BenchmarkCastMiss(b *testing.B) {
	var obj Object = &robodog{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Cast(obj, typeRock)
	}
}

// BenchmarkTypeAssertion is the native baseline: it recovers only the
// dynamic type.
func BenchmarkTypeAssertion(b *testing.B) {
	var obj Object = &robodog{}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = obj.(*robodog)
	}
}
