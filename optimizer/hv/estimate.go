package hv

import "github.com/ashwinyue/optirustic-go/optimizer"

// EstimateReferencePoint derives a reference point from individuals by
// taking, per objective and in the user's sign convention, a value
// margin beyond the worst (least fit) observed value: the nadir point
// inflated by margin, so the returned point strictly dominates every
// front member as long as margin is positive.
//
// This mirrors the convenience helper optirustic's examples use to avoid
// hand-picking a reference point for each benchmark problem.
func EstimateReferencePoint(individuals []*optimizer.Individual, margin float64) []float64 {
	if len(individuals) == 0 {
		return nil
	}
	problem := individuals[0].Problem()
	m := problem.NumObjectives()

	worst := make([]float64, m)
	for j := range worst {
		worst[j] = individuals[0].ExportObjectiveValues()[problem.Objectives[j].Name]
	}

	for _, ind := range individuals[1:] {
		values := ind.ExportObjectiveValues()
		for j, o := range problem.Objectives {
			v := values[o.Name]
			if o.Direction == optimizer.Maximise {
				if v < worst[j] {
					worst[j] = v
				}
			} else {
				if v > worst[j] {
					worst[j] = v
				}
			}
		}
	}

	out := make([]float64, m)
	for j, o := range problem.Objectives {
		if o.Direction == optimizer.Maximise {
			out[j] = worst[j] - margin
		} else {
			out[j] = worst[j] + margin
		}
	}
	return out
}
