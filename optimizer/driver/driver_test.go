package driver_test

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
	"github.com/ashwinyue/optirustic-go/optimizer/driver"
	"github.com/ashwinyue/optirustic-go/optimizer/nsga2"
	"github.com/ashwinyue/optirustic-go/optimizer/operator"
	"github.com/ashwinyue/optirustic-go/optimizer/stopping"
)

// schProblem builds Schaffer's SCH: f1(x)=x^2, f2(x)=(x-2)^2, x in [-10, 10].
func schProblem(t *testing.T) *optimizer.Problem {
	t.Helper()
	x, err := optimizer.NewRealVariable("x", -10, 10)
	if err != nil {
		t.Fatalf("NewRealVariable: %v", err)
	}
	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		v := ind.Variables["x"].Real
		return map[string]float64{
			"f1": v * v,
			"f2": (v - 2) * (v - 2),
		}, nil, nil
	})
	problem, err := optimizer.NewProblem("SCH", []optimizer.Variable{x},
		[]optimizer.Objective{{Name: "f1", Direction: optimizer.Minimise}, {Name: "f2", Direction: optimizer.Minimise}},
		nil, evaluator)
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}
	return problem
}

func TestDriverRunProducesFinalFeasiblePopulation(t *testing.T) {
	problem := schProblem(t)

	crossover, err := operator.NewSimulatedBinaryCrossover(operator.DefaultSimulatedBinaryCrossoverArgs())
	if err != nil {
		t.Fatalf("NewSimulatedBinaryCrossover: %v", err)
	}
	mutation, err := operator.NewPolynomialMutation(operator.DefaultPolynomialMutationArgs(1))
	if err != nil {
		t.Fatalf("NewPolynomialMutation: %v", err)
	}

	d, err := driver.New(problem, driver.Config{
		AlgorithmName:  "NSGA-II",
		PopulationSize: 20,
		Crossover:      crossover,
		Mutation:       mutation,
		Survival:       nsga2.NewSurvivalSelector(),
		Stop:           stopping.MaxGeneration(5),
		Rng:            rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("driver.New: %v", err)
	}

	population, err := d.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if population.Len() != 20 {
		t.Errorf("final population size = %d, want 20", population.Len())
	}
	for i := 0; i < population.Len(); i++ {
		ind := population.At(i)
		if !ind.Evaluated() {
			t.Fatalf("individual %d not evaluated", i)
		}
		for _, v := range ind.ObjectiveValues() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Errorf("individual %d has non-finite objective value %v", i, v)
			}
		}
	}
}

func TestDriverRejectsOddPopulationForNSGA2(t *testing.T) {
	problem := schProblem(t)
	crossover, _ := operator.NewSimulatedBinaryCrossover(operator.DefaultSimulatedBinaryCrossoverArgs())
	mutation, _ := operator.NewPolynomialMutation(operator.DefaultPolynomialMutationArgs(1))

	_, err := driver.New(problem, driver.Config{
		PopulationSize: 21,
		Crossover:      crossover,
		Mutation:       mutation,
		Survival:       nsga2.NewSurvivalSelector(),
		Stop:           stopping.MaxGeneration(1),
		Rng:            rand.New(rand.NewSource(1)),
	})
	if err == nil {
		t.Errorf("expected a configuration error for an odd NSGA-II population size")
	}
}

func TestDriverForcesEvenPopulationWhenConfigured(t *testing.T) {
	problem := schProblem(t)
	crossover, _ := operator.NewSimulatedBinaryCrossover(operator.DefaultSimulatedBinaryCrossoverArgs())
	mutation, _ := operator.NewPolynomialMutation(operator.DefaultPolynomialMutationArgs(1))

	d, err := driver.New(problem, driver.Config{
		PopulationSize:      21,
		ForceEvenPopulation: true,
		Crossover:           crossover,
		Mutation:            mutation,
		Survival:            nsga2.NewSurvivalSelector(),
		Stop:                stopping.MaxGeneration(1),
		Rng:                 rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("driver.New: %v", err)
	}
	population, err := d.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if population.Len() != 20 {
		t.Errorf("odd population size should be forced even: got %d, want 20", population.Len())
	}
}

func TestDriverRequiresOperatorsAndStoppingCondition(t *testing.T) {
	problem := schProblem(t)
	if _, err := driver.New(problem, driver.Config{PopulationSize: 10}); err == nil {
		t.Errorf("expected an error when crossover/mutation/survival/stop are missing")
	}
}

func TestDriverRejectsNonNumericVariablesForSBXAndPM(t *testing.T) {
	x, err := optimizer.NewRealVariable("x", -10, 10)
	if err != nil {
		t.Fatalf("NewRealVariable: %v", err)
	}
	flag := optimizer.NewBooleanVariable("flag")
	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		return map[string]float64{"f1": ind.Variables["x"].Real}, nil, nil
	})
	problem, err := optimizer.NewProblem("mixed", []optimizer.Variable{x, flag},
		[]optimizer.Objective{{Name: "f1", Direction: optimizer.Minimise}}, nil, evaluator)
	if err != nil {
		t.Fatalf("NewProblem: %v", err)
	}

	crossover, _ := operator.NewSimulatedBinaryCrossover(operator.DefaultSimulatedBinaryCrossoverArgs())
	mutation, _ := operator.NewPolynomialMutation(operator.DefaultPolynomialMutationArgs(1))

	_, err = driver.New(problem, driver.Config{
		PopulationSize: 10,
		Crossover:      crossover,
		Mutation:       mutation,
		Survival:       nsga2.NewSurvivalSelector(),
		Stop:           stopping.MaxGeneration(1),
		Rng:            rand.New(rand.NewSource(1)),
	})
	if err == nil {
		t.Errorf("expected a configuration error for a Boolean variable under SBX/PM")
	}
}
