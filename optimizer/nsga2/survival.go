// Package nsga2 implements the NSGA-II environmental selection step:
// fast non-dominated sort followed by crowding-distance trimming of the
// splitting front.
package nsga2

import (
	"sort"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/domsort"
)

// SurvivalSelector implements NSGA-II's fill-by-front-then-crowding
// survival rule.
type SurvivalSelector struct{}

// NewSurvivalSelector builds an NSGA-II survival selector. It holds no
// state across generations, unlike its NSGA-III counterpart.
func NewSurvivalSelector() *SurvivalSelector {
	return &SurvivalSelector{}
}

// Select trims combined (parents plus offspring, size up to 2N) down to
// targetCount individuals: whole fronts are accepted in rank order while
// they fit; the first front that would overflow is ranked by crowding
// distance (descending) and truncated to fill the remainder.
func (s *SurvivalSelector) Select(combined []*optimizer.Individual, targetCount int) ([]*optimizer.Individual, error) {
	fronts := domsort.NonDominatedSort(combined, domsort.ConstrainedDominates, false)

	selected := make([]*optimizer.Individual, 0, targetCount)
	frontIdx := 0
	for frontIdx < len(fronts) && len(selected)+len(fronts[frontIdx]) <= targetCount {
		domsort.CrowdingDistance(fronts[frontIdx])
		selected = append(selected, fronts[frontIdx]...)
		frontIdx++
	}

	if len(selected) < targetCount && frontIdx < len(fronts) {
		front := fronts[frontIdx]
		domsort.CrowdingDistance(front)
		sort.Slice(front, func(i, j int) bool {
			return front[i].Crowding() > front[j].Crowding()
		})
		selected = append(selected, front[:targetCount-len(selected)]...)
	}

	return selected, nil
}
