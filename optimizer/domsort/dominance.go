// Package domsort implements constrained Pareto dominance, fast
// non-dominated sorting, and NSGA-II crowding distance.
package domsort

import "github.com/ashwinyue/optirustic-go/optimizer"

// Dominates reports whether a dominates b in minimization-space objective
// values alone, ignoring feasibility. a dominates b when it is no worse in
// every objective and strictly better in at least one.
func Dominates(a, b *optimizer.Individual) bool {
	av, bv := a.ObjectiveValues(), b.ObjectiveValues()
	better := false
	for i := range av {
		if av[i] > bv[i] {
			return false
		}
		if av[i] < bv[i] {
			better = true
		}
	}
	return better
}

// ConstrainedDominates reports whether a dominates b under the standard
// constrained-dominance rule: a feasible individual always dominates an
// infeasible one; between two infeasible individuals, the one with the
// smaller total constraint violation dominates; between two feasible
// individuals, plain objective Dominates applies.
func ConstrainedDominates(a, b *optimizer.Individual) bool {
	aFeasible, bFeasible := a.Feasible(), b.Feasible()
	switch {
	case aFeasible && !bFeasible:
		return true
	case !aFeasible && bFeasible:
		return false
	case !aFeasible && !bFeasible:
		return a.TotalViolation() < b.TotalViolation()
	default:
		return Dominates(a, b)
	}
}
