// Package nsga3 implements the NSGA-III normalization, association, and
// niching pipeline (Deb & Jain 2014), plus its survival selector.
package nsga3

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ashwinyue/optirustic-go/internal/log"
	"github.com/ashwinyue/optirustic-go/optimizer"
)

// Scratch keys this package parks on each Individual's optimizer.Scratch.
const (
	keyNormalisedObjectives = "normalised_objectives"
	keyReferencePointIndex  = "reference_point_index"
	keyReferencePoint       = "reference_point"
	keyMinDistance          = "min_distance"
)

// minIntercept is the smallest acceptable hyperplane intercept; below this
// the least-squares solve is considered numerically unreliable and the
// fallback (max translated objective per axis) is used instead.
const minIntercept = 1e-3

// IdealPoint tracks the per-objective running minimum across every
// evolution step. Coordinates only ever decrease.
type IdealPoint struct {
	coords []float64
}

// NewIdealPoint builds an IdealPoint initialised to +Inf in every
// dimension, so the first Update call adopts whatever the population
// offers.
func NewIdealPoint(numObjectives int) *IdealPoint {
	coords := make([]float64, numObjectives)
	for i := range coords {
		coords[i] = math.Inf(1)
	}
	return &IdealPoint{coords: coords}
}

// Coords returns the current ideal-point coordinates.
func (z *IdealPoint) Coords() []float64 { return z.coords }

// Update lowers each coordinate of z to the minimum objective value seen
// in individuals so far, per Algorithm 2 step 1.
func (z *IdealPoint) Update(individuals []*optimizer.Individual) {
	for _, ind := range individuals {
		vals := ind.ObjectiveValues()
		for j, v := range vals {
			if v < z.coords[j] {
				z.coords[j] = v
			}
		}
	}
}

// NormalisationResult carries the intermediate points Normalise computed,
// useful for diagnostics and tests.
type NormalisationResult struct {
	ExtremePoints [][]float64
	Intercepts    []float64
}

// Normalise runs Algorithm 2 of the NSGA-III paper over individuals,
// updating ideal in place and storing each individual's normalised
// objectives in its scratch store under keyNormalisedObjectives.
func Normalise(individuals []*optimizer.Individual, ideal *IdealPoint) NormalisationResult {
	numObjectives := len(ideal.coords)

	ideal.Update(individuals)

	// Step 3: translate objectives with respect to the ideal point.
	for _, ind := range individuals {
		vals := ind.ObjectiveValues()
		translated := make([]float64, numObjectives)
		for j, v := range vals {
			translated[j] = v - ideal.coords[j]
		}
		ind.Data.SetFloats(keyNormalisedObjectives, translated)
	}

	// Step 4: compute the M extreme points via the achievement scalarising
	// function with one-hot-ish weight vectors.
	extremePoints := make([][]float64, numObjectives)
	for j := 0; j < numObjectives; j++ {
		weights := make([]float64, numObjectives)
		for i := range weights {
			weights[i] = 1e-6
		}
		weights[j] = 1.0

		minASF := math.Inf(1)
		bestIdx := 0
		for idx, ind := range individuals {
			f, _ := ind.Data.Floats(keyNormalisedObjectives)
			value := asf(f, weights)
			if value < minASF {
				minASF = value
				bestIdx = idx
			}
		}
		f, _ := individuals[bestIdx].Data.Floats(keyNormalisedObjectives)
		extremePoints[j] = append([]float64(nil), f...)
	}

	// Step 6: solve A x = 1 for the hyperplane intercepts, after an SVD
	// condition check, falling back to per-axis maxima when unreliable.
	intercepts, ok := planeIntercepts(extremePoints)
	if !ok {
		intercepts = maxTranslatedObjectives(individuals, numObjectives)
		log.Warningf("nsga3: hyperplane intercept solve unreliable, falling back to per-axis maxima %v", intercepts)
	}

	// Step 7: normalise.
	for _, ind := range individuals {
		f, _ := ind.Data.Floats(keyNormalisedObjectives)
		normalised := make([]float64, numObjectives)
		for j, v := range f {
			normalised[j] = v / intercepts[j]
		}
		ind.Data.SetFloats(keyNormalisedObjectives, normalised)
	}

	return NormalisationResult{ExtremePoints: extremePoints, Intercepts: intercepts}
}

// NormalisedObjectives returns the normalised objective vector Normalise
// stored on ind.
func NormalisedObjectives(ind *optimizer.Individual) []float64 {
	f, _ := ind.Data.Floats(keyNormalisedObjectives)
	return f
}

func asf(translated, weights []float64) float64 {
	m := math.Inf(-1)
	for i, v := range translated {
		r := v / weights[i]
		if r > m {
			m = r
		}
	}
	return m
}

// planeIntercepts solves A x = 1, where A's rows are the extreme points,
// and returns a_j = 1/x_j. It uses gonum's SVD to check the system's
// condition number before trusting the solve: an ill-conditioned or
// singular system (or any resulting intercept below minIntercept) reports
// ok=false so the caller can fall back to per-axis maxima.
func planeIntercepts(extremePoints [][]float64) (intercepts []float64, ok bool) {
	m := len(extremePoints)
	if m == 0 {
		return nil, false
	}
	n := len(extremePoints[0])

	a := mat.NewDense(m, n, nil)
	for i, p := range extremePoints {
		a.SetRow(i, p)
	}
	b := mat.NewDense(m, 1, nil)
	for i := 0; i < m; i++ {
		b.Set(i, 0, 1.0)
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return nil, false
	}
	if svd.Cond() > 1e8 {
		return nil, false
	}

	var x mat.Dense
	if err := x.Solve(a, b); err != nil {
		return nil, false
	}

	intercepts = make([]float64, n)
	for i := 0; i < n; i++ {
		v := x.At(i, 0)
		if v == 0 {
			return nil, false
		}
		intercepts[i] = 1.0 / v
	}

	for _, v := range intercepts {
		if v < minIntercept || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
	}
	return intercepts, true
}

func maxTranslatedObjectives(individuals []*optimizer.Individual, numObjectives int) []float64 {
	out := make([]float64, numObjectives)
	for j := 0; j < numObjectives; j++ {
		maxV := math.SmallestNonzeroFloat64
		for _, ind := range individuals {
			f, _ := ind.Data.Floats(keyNormalisedObjectives)
			if f[j] > maxV {
				maxV = f[j]
			}
		}
		out[j] = maxV
	}
	return out
}
