package domsort_test

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/domsort"
)

func twoObjectiveProblem(t *testing.T, withConstraint bool) *optimizer.Problem {
	t.Helper()
	v, err := optimizer.NewRealVariable("x", 0, 1)
	if err != nil {
		t.Fatalf("NewRealVariable: %v", err)
	}
	var constraints []optimizer.Constraint
	if withConstraint {
		constraints = []optimizer.Constraint{optimizer.NewConstraint("c1", optimizer.OpLE, 5)}
	}
	problem, err := optimizer.NewProblem("fixture", []optimizer.Variable{v},
		[]optimizer.Objective{{Name: "f1", Direction: optimizer.Minimise}, {Name: "f2", Direction: optimizer.Minimise}},
		constraints, optimizer.EvaluatorFunc(func(*optimizer.Individual) (map[string]float64, map[string]float64, error) { return nil, nil, nil }))
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}
	return problem
}

func fixedIndividual(t *testing.T, problem *optimizer.Problem, f1, f2, constraintValue float64, hasConstraint bool) *optimizer.Individual {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	ind := optimizer.NewIndividual(problem, rng)
	original := problem.Evaluator
	problem.Evaluator = optimizer.EvaluatorFunc(func(*optimizer.Individual) (map[string]float64, map[string]float64, error) {
		objectives := map[string]float64{"f1": f1, "f2": f2}
		var cons map[string]float64
		if hasConstraint {
			cons = map[string]float64{"c1": constraintValue}
		}
		return objectives, cons, nil
	})
	if err := ind.Evaluate(); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	problem.Evaluator = original
	return ind
}

func TestDominatesStrictlyBetterInOneObjective(t *testing.T) {
	p := twoObjectiveProblem(t, false)
	a := fixedIndividual(t, p, 1, 2, 0, false)
	b := fixedIndividual(t, p, 1, 3, 0, false)
	if !domsort.Dominates(a, b) {
		t.Errorf("a should dominate b: equal in f1, strictly better in f2")
	}
	if domsort.Dominates(b, a) {
		t.Errorf("b should not dominate a")
	}
}

func TestDominatesFalseWhenIncomparable(t *testing.T) {
	p := twoObjectiveProblem(t, false)
	a := fixedIndividual(t, p, 1, 5, 0, false)
	b := fixedIndividual(t, p, 5, 1, 0, false)
	if domsort.Dominates(a, b) || domsort.Dominates(b, a) {
		t.Errorf("neither point should dominate the other on an incomparable front")
	}
}

func TestConstrainedDominatesFeasibleBeatsInfeasible(t *testing.T) {
	p := twoObjectiveProblem(t, true)
	feasible := fixedIndividual(t, p, 10, 10, 1, true)
	infeasible := fixedIndividual(t, p, 0, 0, 10, true)
	if !domsort.ConstrainedDominates(feasible, infeasible) {
		t.Errorf("a feasible individual should dominate an infeasible one regardless of objectives")
	}
	if domsort.ConstrainedDominates(infeasible, feasible) {
		t.Errorf("an infeasible individual should never dominate a feasible one")
	}
}

func TestConstrainedDominatesSmallerViolationWinsAmongInfeasible(t *testing.T) {
	p := twoObjectiveProblem(t, true)
	lessViolated := fixedIndividual(t, p, 0, 0, 6, true)
	moreViolated := fixedIndividual(t, p, 0, 0, 20, true)
	if !domsort.ConstrainedDominates(lessViolated, moreViolated) {
		t.Errorf("the individual with smaller total violation should dominate")
	}
}

func TestNonDominatedSortAssignsRanks(t *testing.T) {
	p := twoObjectiveProblem(t, false)
	front0a := fixedIndividual(t, p, 1, 5, 0, false)
	front0b := fixedIndividual(t, p, 5, 1, 0, false)
	front1 := fixedIndividual(t, p, 5, 5, 0, false)

	fronts := domsort.NonDominatedSort([]*optimizer.Individual{front0a, front0b, front1}, domsort.Dominates, false)
	if len(fronts) != 2 {
		t.Fatalf("expected 2 fronts, got %d", len(fronts))
	}
	if len(fronts[0]) != 2 {
		t.Errorf("front 0 should contain the two non-dominated points, got %d", len(fronts[0]))
	}
	if front1.Rank() != 1 {
		t.Errorf("dominated individual should have rank 1, got %d", front1.Rank())
	}
	if front0a.Rank() != 0 || front0b.Rank() != 0 {
		t.Errorf("non-dominated individuals should have rank 0")
	}
}

func TestNonDominatedSortFirstFrontOnly(t *testing.T) {
	p := twoObjectiveProblem(t, false)
	front0 := fixedIndividual(t, p, 1, 1, 0, false)
	front1 := fixedIndividual(t, p, 5, 5, 0, false)

	fronts := domsort.NonDominatedSort([]*optimizer.Individual{front0, front1}, domsort.Dominates, true)
	if len(fronts) != 1 {
		t.Fatalf("firstFrontOnly should return exactly 1 front, got %d", len(fronts))
	}
	if len(fronts[0]) != 1 || fronts[0][0] != front0 {
		t.Errorf("first front should contain only the non-dominated point")
	}
}

func TestCrowdingDistanceBoundaryPointsAreInfinite(t *testing.T) {
	p := twoObjectiveProblem(t, false)
	low := fixedIndividual(t, p, 1, 9, 0, false)
	mid := fixedIndividual(t, p, 5, 5, 0, false)
	high := fixedIndividual(t, p, 9, 1, 0, false)

	front := []*optimizer.Individual{low, mid, high}
	domsort.CrowdingDistance(front)

	if !math.IsInf(low.Crowding(), 1) || !math.IsInf(high.Crowding(), 1) {
		t.Errorf("boundary individuals should have infinite crowding distance")
	}
	if math.IsInf(mid.Crowding(), 1) || mid.Crowding() <= 0 {
		t.Errorf("interior individual should have a finite, positive crowding distance, got %v", mid.Crowding())
	}
}

func TestCrowdingDistanceSmallFrontsAreAllInfinite(t *testing.T) {
	p := twoObjectiveProblem(t, false)
	a := fixedIndividual(t, p, 1, 5, 0, false)
	b := fixedIndividual(t, p, 5, 1, 0, false)
	domsort.CrowdingDistance([]*optimizer.Individual{a, b})
	if !math.IsInf(a.Crowding(), 1) || !math.IsInf(b.Crowding(), 1) {
		t.Errorf("fronts of size <= 2 should be entirely boundary (infinite crowding)")
	}
}
