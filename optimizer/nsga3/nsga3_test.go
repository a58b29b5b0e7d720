package nsga3_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

func threeObjectiveProblem(t *testing.T) *optimizer.Problem {
	t.Helper()
	v, err := optimizer.NewRealVariable("x", 0, 1)
	if err != nil {
		t.Fatalf("NewRealVariable: %v", err)
	}
	problem, err := optimizer.NewProblem("fixture", []optimizer.Variable{v},
		[]optimizer.Objective{
			{Name: "f1", Direction: optimizer.Minimise},
			{Name: "f2", Direction: optimizer.Minimise},
			{Name: "f3", Direction: optimizer.Minimise},
		},
		nil, optimizer.EvaluatorFunc(func(*optimizer.Individual) (map[string]float64, map[string]float64, error) { return nil, nil, nil }))
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}
	return problem
}

func fixedIndividual(t *testing.T, problem *optimizer.Problem, f1, f2, f3 float64) *optimizer.Individual {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	ind := optimizer.NewIndividual(problem, rng)
	original := problem.Evaluator
	problem.Evaluator = optimizer.EvaluatorFunc(func(*optimizer.Individual) (map[string]float64, map[string]float64, error) {
		return map[string]float64{"f1": f1, "f2": f2, "f3": f3}, nil, nil
	})
	if err := ind.Evaluate(); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	problem.Evaluator = original
	return ind
}
