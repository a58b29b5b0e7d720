package nsga3

import (
	"fmt"
	"math"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/refpoint"
)

// Associate implements Algorithm 3 of the NSGA-III paper: for each
// individual (already normalised by Normalise), find the closest
// reference point by perpendicular distance to the line through the
// origin along that point, and store the association in scratch.
func Associate(individuals []*optimizer.Individual, referencePoints []refpoint.Point) error {
	for _, r := range referencePoints {
		for _, v := range r {
			if v < 0 || v > 1 {
				return fmt.Errorf("%w: reference point %v has coordinate outside [0, 1]", optimizer.ErrValidation, r)
			}
		}
	}

	for _, ind := range individuals {
		obj := NormalisedObjectives(ind)

		bestIdx := -1
		bestDist := math.Inf(1)
		for ri, r := range referencePoints {
			d := perpendicularDistance(r, obj)
			if d < bestDist {
				bestDist = d
				bestIdx = ri
			}
		}

		ind.Data.SetInt(keyReferencePointIndex, bestIdx)
		ind.Data.SetFloats(keyReferencePoint, append([]float64(nil), referencePoints[bestIdx]...))
		ind.Data.SetFloat(keyMinDistance, bestDist)
	}
	return nil
}

// ReferencePointIndex returns the reference point index Associate stored
// on ind, or -1 if Associate has not run.
func ReferencePointIndex(ind *optimizer.Individual) int {
	i, ok := ind.Data.Int(keyReferencePointIndex)
	if !ok {
		return -1
	}
	return i
}

// MinDistance returns the minimum perpendicular distance Associate stored
// on ind.
func MinDistance(ind *optimizer.Individual) float64 {
	d, _ := ind.Data.Float(keyMinDistance)
	return d
}

// perpendicularDistance computes the distance from point v to the line
// through the origin along direction r: projection scalar = (v.r)/|r|,
// projection vector = (scalar/|r|)*r, distance = |projection - v|.
func perpendicularDistance(r, v []float64) float64 {
	dot := 0.0
	normR := 0.0
	for i := range r {
		dot += v[i] * r[i]
		normR += r[i] * r[i]
	}
	normR = math.Sqrt(normR)
	if normR == 0 {
		normR = 1e-12
	}
	scalar := dot / normR

	proj := make([]float64, len(r))
	for i := range r {
		proj[i] = (scalar / normR) * r[i]
	}

	sumSq := 0.0
	for i := range proj {
		d := proj[i] - v[i]
		sumSq += d * d
	}
	return math.Sqrt(sumSq)
}
