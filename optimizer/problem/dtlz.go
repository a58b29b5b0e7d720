package problem

import (
	"fmt"
	"math"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

func dtlzVariables(numVars int) ([]optimizer.Variable, error) {
	return zdtVariables(numVars)
}

func dtlzObjectives(numObjectives int) []optimizer.Objective {
	objectives := make([]optimizer.Objective, numObjectives)
	for i := range objectives {
		objectives[i] = optimizer.Objective{Name: fmt.Sprintf("f%d", i+1), Direction: optimizer.Minimise}
	}
	return objectives
}

// NewDTLZ1 builds the scalable, linear-Pareto-front DTLZ1 benchmark with
// many local fronts. The recommended numVars is numObjectives+k-1 with
// k=5.
func NewDTLZ1(numVars, numObjectives int) (*optimizer.Problem, error) {
	variables, err := dtlzVariables(numVars)
	if err != nil {
		return nil, err
	}

	g := func(x []float64) float64 {
		k := numVars - numObjectives + 1
		sum := 0.0
		for i := numObjectives - 1; i < numVars; i++ {
			sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
		}
		return 100 * (float64(k) + sum)
	}

	objective := func(x []float64, idx int) float64 {
		f := 0.5 * (1 + g(x))
		for i := 0; i < numObjectives-idx-1; i++ {
			f *= x[i]
		}
		if idx > 0 {
			f *= 1 - x[numObjectives-idx-1]
		}
		return f
	}

	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		x := realValues(ind, numVars)
		objectives := make(map[string]float64, numObjectives)
		for i := 0; i < numObjectives; i++ {
			objectives[fmt.Sprintf("f%d", i+1)] = objective(x, i)
		}
		return objectives, nil, nil
	})

	return optimizer.NewProblem("DTLZ1", variables, dtlzObjectives(numObjectives), nil, evaluator)
}

// DTLZ1TrueParetoFront samples the known 2-objective linear front
// f1 + f2 = 0.5 (higher-objective fronts have no closed-form sampling
// here, matching the teacher's benchmark).
func DTLZ1TrueParetoFront(numObjectives, numPoints int) [][2]float64 {
	if numObjectives != 2 {
		return nil
	}
	points := make([][2]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		t := float64(i) / float64(numPoints-1)
		points[i] = [2]float64{0.5 * t, 0.5 * (1 - t)}
	}
	return points
}

// NewDTLZ2 builds the scalable, spherical-Pareto-front DTLZ2 benchmark.
// The recommended numVars is numObjectives+k-1 with k=10.
func NewDTLZ2(numVars, numObjectives int) (*optimizer.Problem, error) {
	variables, err := dtlzVariables(numVars)
	if err != nil {
		return nil, err
	}

	g := func(x []float64) float64 {
		sum := 0.0
		for i := numObjectives - 1; i < numVars; i++ {
			sum += math.Pow(x[i]-0.5, 2)
		}
		return sum
	}

	objective := func(x []float64, idx int) float64 {
		f := 1 + g(x)
		for i := 0; i < numObjectives-idx-1; i++ {
			f *= math.Cos(x[i] * math.Pi / 2)
		}
		if idx > 0 {
			f *= math.Sin(x[numObjectives-idx-1] * math.Pi / 2)
		}
		return f
	}

	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		x := realValues(ind, numVars)
		objectives := make(map[string]float64, numObjectives)
		for i := 0; i < numObjectives; i++ {
			objectives[fmt.Sprintf("f%d", i+1)] = objective(x, i)
		}
		return objectives, nil, nil
	})

	return optimizer.NewProblem("DTLZ2", variables, dtlzObjectives(numObjectives), nil, evaluator)
}

// DTLZ2TrueParetoFront samples the known unit-sphere front: a quarter
// circle for 2 objectives, a quarter-sphere grid for 3.
func DTLZ2TrueParetoFront(numObjectives, numPoints int) [][]float64 {
	switch numObjectives {
	case 2:
		points := make([][]float64, numPoints)
		for i := 0; i < numPoints; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
			points[i] = []float64{math.Cos(theta), math.Sin(theta)}
		}
		return points
	case 3:
		sqrtN := int(math.Sqrt(float64(numPoints)))
		points := make([][]float64, 0, sqrtN*sqrtN)
		for i := 0; i < sqrtN; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
			for j := 0; j < sqrtN; j++ {
				phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
				points = append(points, []float64{
					math.Cos(theta) * math.Cos(phi),
					math.Sin(theta) * math.Cos(phi),
					math.Sin(phi),
				})
			}
		}
		return points
	default:
		return nil
	}
}
