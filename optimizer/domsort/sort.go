package domsort

import "github.com/ashwinyue/optirustic-go/optimizer"

// DominatesFunc is the dominance relation NonDominatedSort sorts by.
// Pass ConstrainedDominates for constrained problems, Dominates for
// unconstrained ones.
type DominatesFunc func(a, b *optimizer.Individual) bool

// NonDominatedSort partitions individuals into Pareto fronts by the fast
// non-dominated sort algorithm (Deb et al. 2002), O(M*N^2). Front 0 is the
// non-dominated set; each individual's Rank is set to its front index.
// FirstFrontOnly, when true, stops after computing front 0 and returns it
// as the sole element of the result.
func NonDominatedSort(individuals []*optimizer.Individual, dominates DominatesFunc, firstFrontOnly bool) [][]*optimizer.Individual {
	n := len(individuals)
	dominatedBy := make([][]int, n)
	domCount := make([]int, n)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			switch {
			case dominates(individuals[i], individuals[j]):
				dominatedBy[i] = append(dominatedBy[i], j)
			case dominates(individuals[j], individuals[i]):
				domCount[i]++
			}
		}
	}

	var fronts [][]*optimizer.Individual
	var currentIdx []int
	for i := 0; i < n; i++ {
		if domCount[i] == 0 {
			individuals[i].SetRank(0)
			currentIdx = append(currentIdx, i)
		}
	}
	fronts = append(fronts, indexInto(individuals, currentIdx))

	if firstFrontOnly {
		return fronts
	}

	rank := 0
	for len(currentIdx) > 0 {
		var nextIdx []int
		for _, i := range currentIdx {
			for _, j := range dominatedBy[i] {
				domCount[j]--
				if domCount[j] == 0 {
					individuals[j].SetRank(rank + 1)
					nextIdx = append(nextIdx, j)
				}
			}
		}
		rank++
		if len(nextIdx) > 0 {
			fronts = append(fronts, indexInto(individuals, nextIdx))
		}
		currentIdx = nextIdx
	}

	return fronts
}

func indexInto(individuals []*optimizer.Individual, idx []int) []*optimizer.Individual {
	out := make([]*optimizer.Individual, len(idx))
	for i, j := range idx {
		out[i] = individuals[j]
	}
	return out
}
