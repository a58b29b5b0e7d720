package operator

import (
	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

// Comparator orders two individuals for tournament selection: it returns
// true when a should win against b.
type Comparator func(a, b *optimizer.Individual) bool

// CrowdedComparator is the standard NSGA-II partial order: lower rank
// wins; ties broken by larger crowding distance (less crowded wins). A
// remaining rank-and-crowding tie deterministically favors b (matches the
// source this is ported from) rather than breaking uniformly at random.
func CrowdedComparator(a, b *optimizer.Individual) bool {
	if a.Rank() != b.Rank() {
		return a.Rank() < b.Rank()
	}
	return a.Crowding() > b.Crowding()
}

// TournamentSelect runs a k-way tournament over population and returns the
// winner under cmp. size is clamped to at least 2.
func TournamentSelect(rng *rand.Rand, population []*optimizer.Individual, size int, cmp Comparator) *optimizer.Individual {
	if size < 2 {
		size = 2
	}
	best := population[rng.Intn(len(population))]
	for i := 1; i < size; i++ {
		contestant := population[rng.Intn(len(population))]
		if cmp(contestant, best) {
			best = contestant
		}
	}
	return best
}

// SelectParents runs n independent binary tournaments (the classical NSGA-
// II/III mating selection) and returns n winners, with replacement.
func SelectParents(rng *rand.Rand, population []*optimizer.Individual, n int, cmp Comparator) []*optimizer.Individual {
	out := make([]*optimizer.Individual, n)
	for i := range out {
		out[i] = TournamentSelect(rng, population, 2, cmp)
	}
	return out
}
