// Package refpoint generates the reference-point sets NSGA-III uses to
// maintain diversity: the Das & Dennis (1998) simplex lattice, in its
// one-layer and two-layer forms.
package refpoint

import "fmt"

// Point is one M-dimensional reference point, with coordinates in [0,1]
// summing to 1 (a point on the unit simplex).
type Point []float64

// DasDennis generates the M-objective, p-partition reference-point
// lattice: every M-vector with coordinates k_j/p where the k_j are
// non-negative integers summing to p. Cardinality is C(M+p-1, p).
//
// Implemented via the recursion of Das & Dennis (1998) section 5.2: fill
// each coordinate in turn with 0..left, recursing on the remainder; the
// final coordinate takes whatever remains.
func DasDennis(numObjectives, numPartitions int) []Point {
	var out []Point
	coords := make([]int, numObjectives)
	recurseDasDennis(&out, coords, numPartitions, 0, numObjectives, numPartitions)
	return out
}

func recurseDasDennis(out *[]Point, coords []int, leftPartitions, objIndex, numObjectives, numPartitions int) {
	if objIndex == numObjectives-1 {
		coords[objIndex] = leftPartitions
		p := make(Point, numObjectives)
		for i, k := range coords {
			p[i] = float64(k) / float64(numPartitions)
		}
		*out = append(*out, p)
		return
	}
	for k := 0; k <= leftPartitions; k++ {
		coords[objIndex] = k
		recurseDasDennis(out, coords, leftPartitions-k, objIndex+1, numObjectives, numPartitions)
	}
}

// NumPoints returns the cardinality of DasDennis(numObjectives,
// numPartitions) without generating it: the binomial coefficient
// C(numObjectives+numPartitions-1, numPartitions).
func NumPoints(numObjectives, numPartitions int) uint64 {
	return binomialCoefficient(uint64(numObjectives+numPartitions-1), uint64(numPartitions))
}

func binomialCoefficient(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	var r uint64 = 1
	for d := uint64(1); d <= k; d++ {
		r *= n
		n--
		r /= d
	}
	return r
}

// TwoLayerArgs configures the two-layer Das & Dennis variant: a boundary
// layer at the full simplex and a scaled, inward-shifted inner layer, used
// when a single layer would leave the simplex interior under-sampled.
type TwoLayerArgs struct {
	NumObjectives      int
	BoundaryPartitions int
	InnerPartitions    int
	// InnerScale is s in (0, 1]; defaults to 0.5 when zero.
	InnerScale float64
}

// DasDennisTwoLayer generates a boundary layer with BoundaryPartitions and
// an inner layer with InnerPartitions, scaled by InnerScale and shifted
// inward by (1/M)*(1-s) so every inner point lies strictly inside the
// boundary simplex, then concatenates both layers without deduplication.
func DasDennisTwoLayer(args TwoLayerArgs) ([]Point, error) {
	if args.NumObjectives < 1 {
		return nil, fmt.Errorf("refpoint: number of objectives must be positive, got %d", args.NumObjectives)
	}
	scale := args.InnerScale
	if scale == 0 {
		scale = 0.5
	}
	if scale <= 0 || scale > 1 {
		return nil, fmt.Errorf("refpoint: inner scale %g must be in (0, 1]", scale)
	}

	boundary := DasDennis(args.NumObjectives, args.BoundaryPartitions)
	inner := DasDennis(args.NumObjectives, args.InnerPartitions)

	shift := (1.0 / float64(args.NumObjectives)) * (1.0 - scale)
	scaled := make([]Point, len(inner))
	for i, p := range inner {
		q := make(Point, len(p))
		for j, v := range p {
			q[j] = scale*v + shift
		}
		scaled[i] = q
	}

	out := make([]Point, 0, len(boundary)+len(scaled))
	out = append(out, boundary...)
	out = append(out, scaled...)
	return out, nil
}
