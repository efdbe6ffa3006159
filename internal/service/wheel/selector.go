package wheel

import (
	"math/rand"

	"wheel_backend/internal/model"
)

// Selector draws one prize from the table with probability proportional to
// its weight. It is pure: no shared state is mutated, and the random source
// is injectable so tests can drive it deterministically.
type Selector struct {
	prizes []model.Prize
	total  float64
	rnd    func() float64
}

// NewSelector builds a selector over the (already validated) prize table.
// rnd must return values in [0, 1); pass nil to use the shared math/rand
// source, which is safe for concurrent use.
func NewSelector(prizes []model.Prize, rnd func() float64) *Selector {
	if rnd == nil {
		rnd = rand.Float64
	}

	var total float64
	for _, p := range prizes {
		total += float64(p.Weight)
	}

	return &Selector{
		prizes: prizes,
		total:  total,
		rnd:    rnd,
	}
}

// Select draws a uniform value in [0, totalWeight) and walks the table in
// order, so P(index = i) = weight_i / totalWeight. If floating-point
// rounding ever exhausts the table without a hit, the first segment is
// returned; that fallback is deliberate, not an error path to report.
func (s *Selector) Select() (model.Prize, int) {
	r := s.rnd() * s.total
	for i, p := range s.prizes {
		if r < float64(p.Weight) {
			return p, i
		}
		r -= float64(p.Weight)
	}
	return s.prizes[0], 0
}
