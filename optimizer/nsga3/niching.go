package nsga3

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

// RhoCounts builds rho_j, the map of reference-point index to the number
// of already-selected individuals associated with it, pre-populated with
// zero for every reference point.
func RhoCounts(numReferencePoints int, selected []*optimizer.Individual) map[int]int {
	rho := make(map[int]int, numReferencePoints)
	for j := 0; j < numReferencePoints; j++ {
		rho[j] = 0
	}
	for _, ind := range selected {
		rho[ReferencePointIndex(ind)]++
	}
	return rho
}

// Niche implements Algorithm 4 of the NSGA-III paper: it drains k
// individuals from potential (the split last front, already associated to
// reference points) into selected, preferring under-represented reference
// points. Chosen items are removed from a local copy of potential; the
// caller's slice is left unchanged. rho is updated in place.
func Niche(rng *rand.Rand, potential []*optimizer.Individual, k int, rho map[int]int) ([]*optimizer.Individual, error) {
	if len(rho) == 0 {
		return nil, fmt.Errorf("%w: niching rho_j map is empty", optimizer.ErrRuntime)
	}
	if len(potential) < k {
		return nil, fmt.Errorf("%w: niching needs %d individuals but only %d are available", optimizer.ErrRuntime, k, len(potential))
	}

	var selected []*optimizer.Individual

	for added := 0; added < k; {
		jHat, ok := minRhoIndex(rng, rho)
		if !ok {
			return nil, fmt.Errorf("%w: niching ran out of candidate reference points", optimizer.ErrRuntime)
		}

		candidateIdx := indicesAssociatedWith(potential, jHat)
		if len(candidateIdx) == 0 {
			delete(rho, jHat)
			continue
		}

		var chosen int
		if rho[jHat] == 0 {
			chosen = argminDistance(potential, candidateIdx)
		} else {
			chosen = candidateIdx[rng.Intn(len(candidateIdx))]
		}

		selected = append(selected, potential[chosen])
		potential = removeAt(potential, chosen)
		rho[jHat]++
		added++
	}

	return selected, nil
}

func minRhoIndex(rng *rand.Rand, rho map[int]int) (int, bool) {
	if len(rho) == 0 {
		return 0, false
	}
	min := -1
	for _, v := range rho {
		if min == -1 || v < min {
			min = v
		}
	}

	var candidates []int
	for j, v := range rho {
		if v == min {
			candidates = append(candidates, j)
		}
	}
	if len(candidates) == 1 {
		return candidates[0], true
	}
	return candidates[rng.Intn(len(candidates))], true
}

func indicesAssociatedWith(potential []*optimizer.Individual, refIdx int) []int {
	var out []int
	for i, ind := range potential {
		if ReferencePointIndex(ind) == refIdx {
			out = append(out, i)
		}
	}
	return out
}

func argminDistance(potential []*optimizer.Individual, idx []int) int {
	best := idx[0]
	bestD := MinDistance(potential[best])
	for _, i := range idx[1:] {
		d := MinDistance(potential[i])
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

func removeAt(s []*optimizer.Individual, i int) []*optimizer.Individual {
	out := make([]*optimizer.Individual, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}
