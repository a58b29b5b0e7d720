package nsga3

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/domsort"
	"github.com/ashwinyue/optirustic-go/optimizer/refpoint"
)

// SurvivalSelector implements the NSGA-III environmental selection step:
// fast non-dominated sort, accept whole fronts while they fit, then
// normalise/associate/niche the splitting front to fill the remainder.
type SurvivalSelector struct {
	ReferencePoints []refpoint.Point
	Ideal           *IdealPoint
	Rng             *rand.Rand
}

// NewSurvivalSelector builds a selector over a fixed reference-point set.
// numObjectives sizes the ideal point.
func NewSurvivalSelector(referencePoints []refpoint.Point, numObjectives int, rng *rand.Rand) *SurvivalSelector {
	return &SurvivalSelector{
		ReferencePoints: referencePoints,
		Ideal:           NewIdealPoint(numObjectives),
		Rng:             rng,
	}
}

// Select trims combined (parents plus offspring) down to targetCount
// individuals, per Algorithm 1 steps 5-15 (constrained dominance used for
// the non-dominated sort).
func (s *SurvivalSelector) Select(combined []*optimizer.Individual, targetCount int) ([]*optimizer.Individual, error) {
	fronts := domsort.NonDominatedSort(combined, domsort.ConstrainedDominates, false)

	var selected []*optimizer.Individual
	splitIdx := -1
	for i, front := range fronts {
		if len(selected)+len(front) <= targetCount {
			selected = append(selected, front...)
			if len(selected) == targetCount {
				return selected, nil
			}
			continue
		}
		splitIdx = i
		break
	}

	if splitIdx == -1 {
		return selected, nil
	}

	splitFront := fronts[splitIdx]
	k := targetCount - len(selected)

	accumulated := append(append([]*optimizer.Individual(nil), selected...), splitFront...)
	Normalise(accumulated, s.Ideal)
	if err := Associate(accumulated, s.ReferencePoints); err != nil {
		return nil, fmt.Errorf("nsga3 survival: %w", err)
	}

	rho := RhoCounts(len(s.ReferencePoints), selected)

	chosen, err := Niche(s.Rng, append([]*optimizer.Individual(nil), splitFront...), k, rho)
	if err != nil {
		return nil, fmt.Errorf("nsga3 survival: %w", err)
	}

	return append(selected, chosen...), nil
}
