package bench

import (
	"fmt"
	"math/rand/v2"

	"github.com/chazu/vrc/hierarchy"
)

// NewRand returns the generator used for data generation and shuffling.
// Equal seeds yield equal data sets.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate builds count objects of the shape, each drawn uniformly from
// the kinds from through from+width inclusive.
func Generate(s *Shape, from, width, count int, rng *rand.Rand) ([]hierarchy.Node, error) {
	if err := s.checkRange(from, width); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}

	nodes := make([]hierarchy.Node, count)
	for i := range nodes {
		k := from
		if width > 0 {
			k += rng.IntN(width + 1)
		}
		nodes[i] = s.Kinds[k]()
	}
	return nodes, nil
}

// Shuffle permutes nodes in place.
func Shuffle(nodes []hierarchy.Node, rng *rand.Rand) {
	rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})
}

// Count runs p over every node and returns the sum of its results.
func Count(nodes []hierarchy.Node, p Probe) uint64 {
	var s uint64
	for _, n := range nodes {
		s += p.Run(n)
	}
	return s
}
