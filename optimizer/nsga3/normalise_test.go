package nsga3_test

import (
	"math"
	"testing"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/nsga3"
)

func TestIdealPointUpdateOnlyDecreases(t *testing.T) {
	p := threeObjectiveProblem(t)
	ideal := nsga3.NewIdealPoint(3)

	worse := fixedIndividual(t, p, 5, 5, 5)
	ideal.Update([]*optimizer.Individual{worse})
	if ideal.Coords()[0] != 5 {
		t.Fatalf("ideal coord = %v, want 5 after first update", ideal.Coords()[0])
	}

	better := fixedIndividual(t, p, 1, 8, 8)
	ideal.Update([]*optimizer.Individual{better})
	if ideal.Coords()[0] != 1 {
		t.Errorf("ideal coord should drop to the new minimum, got %v", ideal.Coords()[0])
	}
	if ideal.Coords()[1] != 5 {
		t.Errorf("ideal coord should not increase when a worse value is observed, got %v", ideal.Coords()[1])
	}
}

func TestNormaliseSimplexGivesUnitIntercepts(t *testing.T) {
	p := threeObjectiveProblem(t)
	a := fixedIndividual(t, p, 1, 0, 0)
	b := fixedIndividual(t, p, 0, 1, 0)
	c := fixedIndividual(t, p, 0, 0, 1)

	ideal := nsga3.NewIdealPoint(3)
	result := nsga3.Normalise([]*optimizer.Individual{a, b, c}, ideal)

	for j, intercept := range result.Intercepts {
		if math.Abs(intercept-1.0) > 1e-6 {
			t.Errorf("intercept[%d] = %v, want 1 for an axis-aligned simplex front", j, intercept)
		}
	}

	// a = (1,0,0) is already on the unit hyperplane, so its normalised
	// objectives should equal its translated objectives unchanged.
	normA := nsga3.NormalisedObjectives(a)
	want := []float64{1, 0, 0}
	for i := range want {
		if math.Abs(normA[i]-want[i]) > 1e-6 {
			t.Errorf("normalised objective %d for a = %v, want %v", i, normA[i], want[i])
		}
	}
}
