package optimizer_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

func TestNewRandomPopulationSizeAndBounds(t *testing.T) {
	p := buildProblem(t, false)
	pop := optimizer.NewRandomPopulation(p, 15, rand.New(rand.NewSource(4)))
	if pop.Len() != 15 {
		t.Fatalf("population size = %d, want 15", pop.Len())
	}
	for i := 0; i < pop.Len(); i++ {
		v := pop.At(i).Variables["x"].Real
		if v < 0 || v > 10 {
			t.Errorf("sampled variable %v out of bounds [0,10]", v)
		}
	}
}

func TestAppendPanicsOnProblemMismatch(t *testing.T) {
	p1 := buildProblem(t, false)
	p2 := buildProblem(t, false)
	pop := optimizer.NewPopulation(p1)
	ind := optimizer.NewIndividual(p2, rand.New(rand.NewSource(5)))

	defer func() {
		if recover() == nil {
			t.Errorf("expected Append to panic on a problem mismatch")
		}
	}()
	pop.Append(ind)
}

func TestEvaluateAllSkipsAlreadyEvaluated(t *testing.T) {
	p := buildProblem(t, false)
	pop := optimizer.NewRandomPopulation(p, 5, rand.New(rand.NewSource(6)))
	if err := pop.At(0).Evaluate(); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if err := pop.EvaluateAll(); err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}
	for i := 0; i < pop.Len(); i++ {
		if !pop.At(i).Evaluated() {
			t.Errorf("individual %d should be evaluated after EvaluateAll", i)
		}
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	p := buildProblem(t, false)
	pop := optimizer.NewRandomPopulation(p, 3, rand.New(rand.NewSource(7)))
	if err := pop.EvaluateAll(); err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}
	clone := pop.Clone()
	clone.At(0).Variables["x"] = optimizer.VariableValue{Kind: optimizer.Real, Real: 9999}
	if pop.At(0).Variables["x"].Real == 9999 {
		t.Errorf("mutating a clone's individual should not affect the original population")
	}
}

func TestSliceReturnsSubPopulation(t *testing.T) {
	p := buildProblem(t, false)
	pop := optimizer.NewRandomPopulation(p, 10, rand.New(rand.NewSource(8)))
	sub := pop.Slice(2, 5)
	if sub.Len() != 3 {
		t.Errorf("Slice(2,5) length = %d, want 3", sub.Len())
	}
}
