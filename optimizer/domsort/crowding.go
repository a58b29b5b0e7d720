package domsort

import (
	"math"
	"sort"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

// machineEpsilon is the threshold below which an objective's (max - min)
// range across a front is considered degenerate (spec §4.3).
const machineEpsilon = 0x1p-52

// CrowdingDistance computes and stores the NSGA-II crowding distance for
// every individual in front. Boundary individuals (smallest and largest
// value for any objective) get +Inf so they are never discarded first;
// fronts of size <= 2 are entirely boundary and all get +Inf. If any
// objective's range across the front is below machineEpsilon, every
// individual in the front gets +Inf instead of a partial distance.
func CrowdingDistance(front []*optimizer.Individual) {
	n := len(front)
	if n == 0 {
		return
	}
	if n <= 2 {
		for _, ind := range front {
			ind.SetCrowding(math.Inf(1))
		}
		return
	}

	numObjectives := len(front[0].ObjectiveValues())
	for _, ind := range front {
		ind.SetCrowding(0)
	}

	for m := 0; m < numObjectives; m++ {
		sort.Slice(front, func(i, j int) bool {
			return front[i].ObjectiveValues()[m] < front[j].ObjectiveValues()[m]
		})

		lowVal := front[0].ObjectiveValues()[m]
		highVal := front[n-1].ObjectiveValues()[m]
		front[0].SetCrowding(math.Inf(1))
		front[n-1].SetCrowding(math.Inf(1))

		objectiveRange := highVal - lowVal
		if objectiveRange < machineEpsilon {
			for _, ind := range front {
				ind.SetCrowding(math.Inf(1))
			}
			return
		}

		for i := 1; i < n-1; i++ {
			next := front[i+1].ObjectiveValues()[m]
			prev := front[i-1].ObjectiveValues()[m]
			d := front[i].Crowding()
			if !math.IsInf(d, 1) {
				front[i].SetCrowding(d + (next-prev)/objectiveRange)
			}
		}
	}
}
