package bench

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chazu/vrc/hierarchy"
	"github.com/chazu/vrc/hierarchy/balanced"
	"github.com/chazu/vrc/hierarchy/cross"
	"github.com/chazu/vrc/hierarchy/deep"
	"github.com/chazu/vrc/hierarchy/shallow"
	"github.com/chazu/vrc/rtti"
)

var (
	// ErrUnknownHierarchy is returned for a hierarchy name with no shape.
	ErrUnknownHierarchy = errors.New("unknown hierarchy")

	// ErrKindOutOfRange is returned when a workload draws kinds the
	// hierarchy cannot construct.
	ErrKindOutOfRange = errors.New("kind out of range")

	// ErrInvalidCount is returned for a negative object count.
	ErrInvalidCount = errors.New("invalid object count")
)

// BaselineProbe names the probe that upcasts statically to A.
const BaselineProbe = "static"

// Probe visits one object and returns the marker field of its target type,
// or the object's ValZ when the cast misses. Markers are 1 and ValZ is 0,
// so summing a probe over a data set counts successful casts.
type Probe struct {
	Name string
	Run  func(hierarchy.Node) uint64
}

// Shape is a benchmark hierarchy: its constructors by kind index and the
// probes run against it.
type Shape struct {
	Name   string
	Kinds  []hierarchy.Factory
	Probes []Probe
}

var shapes = map[string]*Shape{
	"deep": {
		Name:  "deep",
		Kinds: deep.Kinds,
		Probes: []Probe{
			castProbe("A", hierarchy.TypeA, func(p *hierarchy.A) uint64 { return p.ValA }),
			castProbe("B", deep.TypeB, func(p *deep.B) uint64 { return p.ValB }),
			castProbe("C", deep.TypeC, func(p *deep.C) uint64 { return p.ValC }),
			castProbe("D", deep.TypeD, func(p *deep.D) uint64 { return p.ValD }),
			castProbe("E", deep.TypeE, func(p *deep.E) uint64 { return p.ValE }),
			castProbe("F", deep.TypeF, func(p *deep.F) uint64 { return p.ValF }),
			castProbe("G", deep.TypeG, func(p *deep.G) uint64 { return p.ValG }),
			castProbe("H", deep.TypeH, func(p *deep.H) uint64 { return p.ValH }),
			castProbe("Z", hierarchy.TypeZ, func(p *hierarchy.Z) uint64 { return p.ValZ }),
		},
	},
	"shallow": {
		Name:  "shallow",
		Kinds: shallow.Kinds,
		Probes: []Probe{
			castProbe("A", hierarchy.TypeA, func(p *hierarchy.A) uint64 { return p.ValA }),
			castProbe("B", shallow.TypeB, func(p *shallow.B) uint64 { return p.ValB }),
			castProbe("C", shallow.TypeC, func(p *shallow.C) uint64 { return p.ValC }),
			castProbe("D", shallow.TypeD, func(p *shallow.D) uint64 { return p.ValD }),
			castProbe("E", shallow.TypeE, func(p *shallow.E) uint64 { return p.ValE }),
			castProbe("F", shallow.TypeF, func(p *shallow.F) uint64 { return p.ValF }),
			castProbe("G", shallow.TypeG, func(p *shallow.G) uint64 { return p.ValG }),
			castProbe("H", shallow.TypeH, func(p *shallow.H) uint64 { return p.ValH }),
			castProbe("Z", hierarchy.TypeZ, func(p *hierarchy.Z) uint64 { return p.ValZ }),
		},
	},
	"balanced": {
		Name:  "balanced",
		Kinds: balanced.Kinds,
		Probes: []Probe{
			castProbe("A", hierarchy.TypeA, func(p *hierarchy.A) uint64 { return p.ValA }),
			castProbe("B", balanced.TypeB, func(p *balanced.B) uint64 { return p.ValB }),
			castProbe("C", balanced.TypeC, func(p *balanced.C) uint64 { return p.ValC }),
			castProbe("D", balanced.TypeD, func(p *balanced.D) uint64 { return p.ValD }),
			castProbe("E", balanced.TypeE, func(p *balanced.E) uint64 { return p.ValE }),
			castProbe("F", balanced.TypeF, func(p *balanced.F) uint64 { return p.ValF }),
			castProbe("G", balanced.TypeG, func(p *balanced.G) uint64 { return p.ValG }),
			castProbe("H", balanced.TypeH, func(p *balanced.H) uint64 { return p.ValH }),
			castProbe("Z", hierarchy.TypeZ, func(p *hierarchy.Z) uint64 { return p.ValZ }),
		},
	},
	"cross": {
		Name:  "cross",
		Kinds: cross.Kinds,
		Probes: []Probe{
			castProbe("A", hierarchy.TypeA, func(p *hierarchy.A) uint64 { return p.ValA }),
			castProbe("B", cross.TypeB, func(p *cross.B) uint64 { return p.ValB }),
			castProbe("C", cross.TypeC, func(p *cross.C) uint64 { return p.ValC }),
			castProbe("D", cross.TypeD, func(p *cross.D) uint64 { return p.ValD }),
			castProbe("E", cross.TypeE, func(p *cross.E) uint64 { return p.ValE }),
			castProbe("F", cross.TypeF, func(p *cross.F) uint64 { return p.ValF }),
			castProbe("G", cross.TypeG, func(p *cross.G) uint64 { return p.ValG }),
			castProbe("H", cross.TypeH, func(p *cross.H) uint64 { return p.ValH }),
			castProbe("Z", hierarchy.TypeZ, func(p *hierarchy.Z) uint64 { return p.ValZ }),
		},
	},
}

// castProbe builds a probe that casts to T and reads a marker field.
func castProbe[T any](name string, to *rtti.Type[T], marker func(*T) uint64) Probe {
	return Probe{
		Name: name,
		Run: func(n hierarchy.Node) uint64 {
			if p := rtti.Cast(n, to); p != nil {
				return marker(p)
			}
			return n.Root().ValZ
		},
	}
}

// staticProbe upcasts without consulting a cast table. It is the baseline
// every other probe is measured against.
var staticProbe = Probe{
	Name: BaselineProbe,
	Run: func(n hierarchy.Node) uint64 {
		if a := n.Root(); a != nil {
			return a.ValA
		}
		return 0
	},
}

// ShapeByName returns the named hierarchy shape.
func ShapeByName(name string) (*Shape, error) {
	s, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHierarchy, name)
	}
	return s, nil
}

// ShapeNames returns the known hierarchy names, sorted.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Probe returns the named probe, including the static baseline.
func (s *Shape) Probe(name string) (Probe, bool) {
	if name == BaselineProbe {
		return staticProbe, true
	}
	for _, p := range s.Probes {
		if p.Name == name {
			return p, true
		}
	}
	return Probe{}, false
}

// checkRange reports whether every kind in [from, from+width] can be built.
func (s *Shape) checkRange(from, width int) error {
	if from < 0 || width < 0 || from+width >= len(s.Kinds) {
		return fmt.Errorf("%w: %s kinds %d..%d", ErrKindOutOfRange, s.Name, from, from+width)
	}
	for k := from; k <= from+width; k++ {
		if s.Kinds[k] == nil {
			return fmt.Errorf("%w: %s has no kind %d", ErrKindOutOfRange, s.Name, k)
		}
	}
	return nil
}
