package nsga3

import (
	"math"

	"github.com/ashwinyue/optirustic-go/optimizer/refpoint"
)

// dedupTolerance is the coordinate distance below which two reference
// points are considered duplicates when adapting the reference set.
const dedupTolerance = 1e-6

// AdaptReferencePoints implements the optional adaptive NSGA-III variant:
// for every reference point with rho_j >= 2, add up to 3 new points around
// it, each offset from it by +step along one of the first three coordinate
// axes (step equal to the smallest observed inter-point gap), rejecting
// points outside [0,1]^M or duplicating an existing point. The new points
// are not centered on the original point and are not projected back onto
// the unit simplex, so their coordinates sum to 1+step. If every original reference point ends
// up with rho_j == 1, newly-added points with rho_j == 0 are removed.
func AdaptReferencePoints(points []refpoint.Point, rho map[int]int, numOriginal int) []refpoint.Point {
	step := smallestGap(points)
	if step <= 0 {
		return points
	}

	out := append([]refpoint.Point(nil), points...)

	for idx := 0; idx < numOriginal; idx++ {
		if rho[idx] < 2 {
			continue
		}
		center := points[idx]
		candidates := simplexAround(center, step)
		for _, c := range candidates {
			if !inUnitBox(c) {
				continue
			}
			if containsNear(out, c, dedupTolerance) {
				continue
			}
			out = append(out, c)
		}
	}

	allOriginalSingle := true
	for idx := 0; idx < numOriginal; idx++ {
		if rho[idx] != 1 {
			allOriginalSingle = false
			break
		}
	}
	if allOriginalSingle {
		pruned := make([]refpoint.Point, 0, len(out))
		for i, p := range out {
			if i < numOriginal {
				pruned = append(pruned, p)
				continue
			}
			if rho[i] == 0 {
				continue
			}
			pruned = append(pruned, p)
		}
		out = pruned
	}

	return out
}

func smallestGap(points []refpoint.Point) float64 {
	minGap := math.Inf(1)
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			d := euclidean(points[i], points[j])
			if d > 0 && d < minGap {
				minGap = d
			}
		}
	}
	if math.IsInf(minGap, 1) {
		return 0
	}
	return minGap
}

func euclidean(a, b refpoint.Point) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// simplexAround generates up to 3 points offset from center along the
// first three coordinate axes by step, a minimal M-dimensional simplex
// neighborhood.
func simplexAround(center refpoint.Point, step float64) []refpoint.Point {
	m := len(center)
	n := 3
	if m < n {
		n = m
	}
	out := make([]refpoint.Point, 0, n)
	for axis := 0; axis < n; axis++ {
		p := append(refpoint.Point(nil), center...)
		p[axis] += step
		out = append(out, p)
	}
	return out
}

func inUnitBox(p refpoint.Point) bool {
	for _, v := range p {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func containsNear(points []refpoint.Point, p refpoint.Point, tol float64) bool {
	for _, q := range points {
		if euclidean(p, q) < tol {
			return true
		}
	}
	return false
}
