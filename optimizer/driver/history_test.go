package driver_test

import (
	"encoding/json"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/driver"
	"github.com/ashwinyue/optirustic-go/optimizer/nsga2"
	"github.com/ashwinyue/optirustic-go/optimizer/operator"
	"github.com/ashwinyue/optirustic-go/optimizer/stopping"
)

func TestDriverHistoryExportsMaximisedSignCorrectly(t *testing.T) {
	x, err := optimizer.NewRealVariable("x", 0, 1)
	if err != nil {
		t.Fatalf("NewRealVariable: %v", err)
	}
	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		v := ind.Variables["x"].Real
		return map[string]float64{"f1": v, "gain": v * 10}, nil, nil
	})
	problem, err := optimizer.NewProblem("maximise-fixture", []optimizer.Variable{x},
		[]optimizer.Objective{{Name: "f1", Direction: optimizer.Minimise}, {Name: "gain", Direction: optimizer.Maximise}},
		nil, evaluator)
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}

	crossover, _ := operator.NewSimulatedBinaryCrossover(operator.DefaultSimulatedBinaryCrossoverArgs())
	mutation, _ := operator.NewPolynomialMutation(operator.DefaultPolynomialMutationArgs(1))

	var captured *driver.History
	d, err := driver.New(problem, driver.Config{
		AlgorithmName:  "NSGA-II",
		PopulationSize: 10,
		Crossover:      crossover,
		Mutation:       mutation,
		Survival:       nsga2.NewSurvivalSelector(),
		Stop:           stopping.MaxGeneration(2),
		Rng:            rand.New(rand.NewSource(7)),
		History: func(h *driver.History) error {
			captured = h
			return nil
		},
	})
	if err != nil {
		t.Fatalf("driver.New: %v", err)
	}
	if _, err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if captured == nil {
		t.Fatalf("history callback never invoked")
	}

	for _, rec := range captured.Individuals {
		gain := rec.Objectives["gain"]
		x := rec.Variables["x"].(float64)
		if gain < -1e-9 {
			t.Errorf("maximised objective %q exported as %v, should keep the user's positive sign for x=%v", "gain", gain, x)
		}
	}

	encoded, err := json.Marshal(captured)
	if err != nil {
		t.Fatalf("History must be JSON-serialisable: %v", err)
	}
	if len(encoded) == 0 {
		t.Errorf("expected non-empty JSON encoding")
	}
}
