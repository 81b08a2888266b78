package gen

import (
	"math"
	"math/rand"
)

// All sampling helpers take an explicit *rand.Rand so a run is fully
// determined by one seeded source.

func choice[T any](r *rand.Rand, pool []T) T {
	return pool[r.Intn(len(pool))]
}

// normal draws from N(mean, stdev) and floors the result at min.
func normalFloored(r *rand.Rand, mean, stdev, min float64) float64 {
	v := r.NormFloat64()*stdev + mean
	if v < min {
		v = min
	}
	return v
}

// bernoulli returns 1 with probability p, otherwise 0.
func bernoulli(r *rand.Rand, p float64) int {
	if r.Float64() < p {
		return 1
	}
	return 0
}

// weighted picks values[i] with probability weights[i]. Weights must sum
// to 1; the last value absorbs any floating-point remainder.
func weighted(r *rand.Rand, values []int, weights []float64) int {
	x := r.Float64()
	var acc float64
	for i, w := range weights {
		acc += w
		if x < acc {
			return values[i]
		}
	}
	return values[len(values)-1]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
