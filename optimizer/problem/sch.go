// Package problem supplies the benchmark multi-objective problems used to
// exercise and demonstrate the optimizer: Schaffer's SCH, the ZDT family,
// and DTLZ1/DTLZ2, adapted from the teacher's benchmarks package onto the
// optimizer.Problem/Evaluator contract.
package problem

import "github.com/ashwinyue/optirustic-go/optimizer"

// NewSCH builds Schaffer's classic two-objective, single-variable test
// problem: f1(x) = x^2, f2(x) = (x-2)^2, x in [-1000, 1000]. Its Pareto-
// optimal set is the segment x in [0, 2].
func NewSCH() (*optimizer.Problem, error) {
	x, err := optimizer.NewRealVariable("x", -1000, 1000)
	if err != nil {
		return nil, err
	}

	evaluator := optimizer.EvaluatorFunc(func(ind *optimizer.Individual) (map[string]float64, map[string]float64, error) {
		v := ind.Variables["x"].Real
		return map[string]float64{
			"f1": v * v,
			"f2": (v - 2) * (v - 2),
		}, nil, nil
	})

	return optimizer.NewProblem("SCH", []optimizer.Variable{x},
		[]optimizer.Objective{
			{Name: "f1", Direction: optimizer.Minimise},
			{Name: "f2", Direction: optimizer.Minimise},
		}, nil, evaluator)
}

// SCHTrueParetoFront samples the known analytical front x in [0, 2].
func SCHTrueParetoFront(numPoints int) [][2]float64 {
	points := make([][2]float64, numPoints)
	for i := 0; i < numPoints; i++ {
		x := 2.0 * float64(i) / float64(numPoints-1)
		points[i] = [2]float64{x * x, (x - 2) * (x - 2)}
	}
	return points
}
