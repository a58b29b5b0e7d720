// Package hv computes the hyper-volume indicator: the Lebesgue measure of
// the objective-space region dominated by a Pareto front and bounded above
// by a reference point. The teacher's own benchmark suite stubs this out
// (hypervolume -1, "Not implemented"); this package implements it for
// real, dispatching on dimensionality the way
// optirustic/src/metrics/hypervolume*.rs does.
package hv

import (
	"fmt"
	"sort"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/domsort"
)

// Compute returns the hyper-volume of the non-dominated, feasible subset
// of individuals, bounded above by referencePoint (one coordinate per
// objective, in the user's sign convention). It errors if referencePoint
// does not strictly dominate every objective of every feasible member of
// the first front; dominated and infeasible individuals are not checked.
func Compute(individuals []*optimizer.Individual, referencePoint []float64) (float64, error) {
	if len(individuals) == 0 {
		return 0, nil
	}
	problem := individuals[0].Problem()
	m := problem.NumObjectives()
	if len(referencePoint) != m {
		return 0, fmt.Errorf("%w: reference point has %d coordinates, problem has %d objectives", optimizer.ErrValidation, len(referencePoint), m)
	}

	fronts := domsort.NonDominatedSort(individuals, domsort.ConstrainedDominates, true)
	front := fronts[0]

	refInternal := make([]float64, m)
	for j, o := range problem.Objectives {
		refInternal[j] = o.ToInternal(referencePoint[j])
	}

	points := make([][]float64, 0, len(front))
	for _, ind := range front {
		if !ind.Feasible() {
			continue
		}
		points = append(points, ind.ObjectiveValues())
	}

	for _, p := range points {
		for j, v := range p {
			if v >= refInternal[j] {
				return 0, fmt.Errorf("%w: reference point does not strictly dominate objective %d (front value %g, reference %g)", optimizer.ErrValidation, j, problem.Objectives[j].ToExternal(v), referencePoint[j])
			}
		}
	}

	if len(points) == 0 {
		return 0, nil
	}

	switch m {
	case 2:
		return sweep2D(points, refInternal), nil
	default:
		return recursiveSlicing(points, refInternal), nil
	}
}

// sweep2D computes the exact 2D hyper-volume in O(n log n): points are
// sorted ascending on the first objective, and each point's rectangle
// (full width back to the reference point's first coordinate) is
// credited only the height below the best second-objective value seen
// so far, so overlapping rectangles are never double counted.
func sweep2D(points [][]float64, ref []float64) float64 {
	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	total := 0.0
	prevY := ref[1]
	for _, p := range sorted {
		width := ref[0] - p[0]
		height := prevY - p[1]
		if width > 0 && height > 0 {
			total += width * height
		}
		if p[1] < prevY {
			prevY = p[1]
		}
	}
	return total
}

// recursiveSlicing computes the hyper-volume for 3 or more objectives by
// the hypervolume-by-slicing-objectives (HSO) approach generalized in
// While, Hingston, Barone & Huband (2012): recurse on the first objective,
// slicing the dominated region into (M-1)-dimensional bounded volumes at
// each distinct coordinate.
func recursiveSlicing(points [][]float64, ref []float64) float64 {
	return hsoVolume(points, ref)
}

func hsoVolume(points [][]float64, ref []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	m := len(ref)
	if m == 1 {
		best := points[0][0]
		for _, p := range points[1:] {
			if p[0] < best {
				best = p[0]
			}
		}
		if ref[0]-best < 0 {
			return 0
		}
		return ref[0] - best
	}

	sorted := make([][]float64, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] < sorted[j][0] })

	total := 0.0
	var active [][]float64

	for i, p := range sorted {
		active = append(active, p[1:])
		nextX := ref[0]
		if i+1 < len(sorted) {
			nextX = sorted[i+1][0]
		}
		sliceWidth := nextX - p[0]
		if sliceWidth > 0 {
			total += sliceWidth * hsoVolume(nondominatedSlice(active), ref[1:])
		}
	}

	return total
}

// nondominatedSlice strips points from a slice that no remaining point
// dominates, in the slice's own (M-1)-dimensional objective space, so the
// recursive volume call does not double count overlapping regions.
func nondominatedSlice(points [][]float64) [][]float64 {
	var out [][]float64
	for i, p := range points {
		dominated := false
		for j, q := range points {
			if i == j {
				continue
			}
			if dominatesSlice(q, p) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, p)
		}
	}
	return out
}

func dominatesSlice(a, b []float64) bool {
	betterOrEqual := true
	strictlyBetter := false
	for i := range a {
		if a[i] > b[i] {
			betterOrEqual = false
			break
		}
		if a[i] < b[i] {
			strictlyBetter = true
		}
	}
	return betterOrEqual && strictlyBetter
}
