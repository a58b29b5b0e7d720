// Package metrics scores an obtained Pareto front against a reference
// front: generational distance, inverted generational distance, and
// spread. The teacher's benchmark suite computes a hand-rolled,
// squared-distance-only IGD and leaves hyper-volume as a placeholder
// ("Not implemented"); this package generalizes that calculation to the
// standard GD/IGD/spread family and backs the distance statistics with
// gonum.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

// Point is one point in objective space, in the user's sign convention.
type Point []float64

// FrontPoints extracts each individual's objective values, in the user's
// sign convention, as a Point.
func FrontPoints(individuals []*optimizer.Individual) []Point {
	out := make([]Point, len(individuals))
	for i, ind := range individuals {
		values := ind.ExportObjectiveValues()
		p := make(Point, ind.Problem().NumObjectives())
		for j, o := range ind.Problem().Objectives {
			p[j] = values[o.Name]
		}
		out[i] = p
	}
	return out
}

func euclidean(a, b Point) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func nearestDistance(p Point, to []Point) float64 {
	min := math.Inf(1)
	for _, q := range to {
		if d := euclidean(p, q); d < min {
			min = d
		}
	}
	return min
}

// GenerationalDistance averages, over every point in obtained, its
// distance to the nearest point in trueFront: how far the obtained front
// is from the reference.
func GenerationalDistance(obtained, trueFront []Point) float64 {
	if len(obtained) == 0 || len(trueFront) == 0 {
		return math.NaN()
	}
	distances := make([]float64, len(obtained))
	for i, p := range obtained {
		distances[i] = nearestDistance(p, trueFront)
	}
	return stat.Mean(distances, nil)
}

// InvertedGenerationalDistance averages, over every point in trueFront,
// its distance to the nearest point in obtained: how much of the
// reference front the obtained front fails to cover.
func InvertedGenerationalDistance(obtained, trueFront []Point) float64 {
	if len(obtained) == 0 || len(trueFront) == 0 {
		return math.NaN()
	}
	distances := make([]float64, len(trueFront))
	for i, p := range trueFront {
		distances[i] = nearestDistance(p, obtained)
	}
	return stat.Mean(distances, nil)
}

// Spread computes a diversity metric after Deb's delta: the
// nearest-neighbour distances within obtained are compared to their mean,
// and the result is near 0 for an evenly spread front and grows as the
// spacing becomes uneven. Only the spacing term is computed; the distance
// to the true front's extreme points is not included, so a front that
// misses its extremes is not penalised.
func Spread(obtained []Point) float64 {
	n := len(obtained)
	if n < 2 {
		return math.NaN()
	}

	nearest := make([]float64, n)
	for i, p := range obtained {
		min := math.Inf(1)
		for j, q := range obtained {
			if i == j {
				continue
			}
			if d := euclidean(p, q); d < min {
				min = d
			}
		}
		nearest[i] = min
	}

	mean := stat.Mean(nearest, nil)
	sum := 0.0
	for _, d := range nearest {
		sum += math.Abs(d - mean)
	}
	return sum / (float64(n) * mean)
}
