package problem

import (
	"fmt"
	"math"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

func zdtVariables(numVars int) ([]optimizer.Variable, error) {
	variables := make([]optimizer.Variable, numVars)
	for i := 0; i < numVars; i++ {
		v, err := optimizer.NewRealVariable(fmt.Sprintf("x%d", i), 0, 1)
		if err != nil {
			return nil, err
		}
		variables[i] = v
	}
	return variables, nil
}

func zdtG(vars []float64) float64 {
	g := 1.0
	for i := 1; i < len(vars); i++ {
		g += 9.0 * vars[i] / float64(len(vars)-1)
	}
	return g
}

func realValues(ind *optimizer.Individual, numVars int) []float64 {
	x := make([]float64, numVars)
	for i := 0; i < numVars; i++ {
		x[i] = ind.Variables[fmt.Sprintf("x%d", i)].Real
	}
	return x
}

// NewZDT1 builds the standard 30-variable convex-front ZDT1 benchmark:
// f1(x) = x1, f2(x) = g(x)*(1 - sqrt(x1/g(x))), g(x) = 1 + 9*sum(x2..xn)/(n-1).
func NewZDT1(numVars int) (*optimizer.Problem, error) {
	variables, err := zdtVariables(numVars)
	if err != nil {
		return nil, err
	}

	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		x := realValues(ind, numVars)
		g := zdtG(x)
		f1 := x[0]
		h := 1.0 - math.Sqrt(f1/g)
		return map[string]float64{"f1": f1, "f2": g * h}, nil, nil
	})

	return optimizer.NewProblem("ZDT1", variables,
		[]optimizer.Objective{
			{Name: "f1", Direction: optimizer.Minimise},
			{Name: "f2", Direction: optimizer.Minimise},
		}, nil, evaluator)
}

// ZDT1TrueParetoFront samples the known convex front f2 = 1 - sqrt(f1).
func ZDT1TrueParetoFront(numPoints int) [][2]float64 {
	points := make([][2]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = [2]float64{x, 1.0 - math.Sqrt(x)}
	}
	return points
}

// NewZDT2 builds the 30-variable non-convex-front ZDT2 benchmark:
// f2(x) = g(x)*(1 - (x1/g(x))^2).
func NewZDT2(numVars int) (*optimizer.Problem, error) {
	variables, err := zdtVariables(numVars)
	if err != nil {
		return nil, err
	}

	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		x := realValues(ind, numVars)
		g := zdtG(x)
		f1 := x[0]
		return map[string]float64{"f1": f1, "f2": g * (1.0 - math.Pow(f1/g, 2))}, nil, nil
	})

	return optimizer.NewProblem("ZDT2", variables,
		[]optimizer.Objective{
			{Name: "f1", Direction: optimizer.Minimise},
			{Name: "f2", Direction: optimizer.Minimise},
		}, nil, evaluator)
}

// ZDT2TrueParetoFront samples the known non-convex front f2 = 1 - f1^2.
func ZDT2TrueParetoFront(numPoints int) [][2]float64 {
	points := make([][2]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = [2]float64{x, 1.0 - x*x}
	}
	return points
}

// NewZDT3 builds the 30-variable disconnected-front ZDT3 benchmark, which
// adds a sinusoidal term that splits the front into several segments.
func NewZDT3(numVars int) (*optimizer.Problem, error) {
	variables, err := zdtVariables(numVars)
	if err != nil {
		return nil, err
	}

	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		x := realValues(ind, numVars)
		g := zdtG(x)
		f1 := x[0]
		h := 1.0 - math.Sqrt(f1/g) - (f1/g)*math.Sin(10*math.Pi*f1)
		return map[string]float64{"f1": f1, "f2": g * h}, nil, nil
	})

	return optimizer.NewProblem("ZDT3", variables,
		[]optimizer.Objective{
			{Name: "f1", Direction: optimizer.Minimise},
			{Name: "f2", Direction: optimizer.Minimise},
		}, nil, evaluator)
}

// ZDT3TrueParetoFront samples the known disconnected front (note: only
// the non-dominated segments of this sampling belong to the true front;
// callers that need a strictly-non-dominated reference front should
// non-dominated-sort the result).
func ZDT3TrueParetoFront(numPoints int) [][2]float64 {
	points := make([][2]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
		points[i] = [2]float64{x, f2}
	}
	return points
}
