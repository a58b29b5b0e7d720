package operator

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

// SimulatedBinaryCrossoverArgs configures SimulatedBinaryCrossover.
//
// Implements Deb, Sindhya & Okabe (2007), "Self-adaptive simulated binary
// crossover for real-parameter optimization", extended to integer
// variables by the truncation procedure of Deep et al. (2009).
type SimulatedBinaryCrossoverArgs struct {
	// DistributionIndex is eta_c in the paper. Larger values bias children
	// toward their parents; smaller values produce more distant offspring.
	DistributionIndex float64
	// CrossoverProbability is the chance the two parents participate in
	// crossover at all; otherwise the children are exact clones.
	CrossoverProbability float64
	// VariableProbability is the chance any single shared variable is
	// recombined by the SBX formula once crossover is taking place.
	VariableProbability float64
}

// DefaultSimulatedBinaryCrossoverArgs returns distribution index 15,
// crossover probability 1, and variable probability 0.5, matching the
// paper's defaults.
func DefaultSimulatedBinaryCrossoverArgs() SimulatedBinaryCrossoverArgs {
	return SimulatedBinaryCrossoverArgs{
		DistributionIndex:    15.0,
		CrossoverProbability: 1.0,
		VariableProbability:  0.5,
	}
}

// SimulatedBinaryCrossover (SBX) recombines bounded real and integer
// variables of two parent Individuals into two children.
type SimulatedBinaryCrossover struct {
	args SimulatedBinaryCrossoverArgs
}

// NewSimulatedBinaryCrossover validates args and builds an SBX operator.
func NewSimulatedBinaryCrossover(args SimulatedBinaryCrossoverArgs) (*SimulatedBinaryCrossover, error) {
	if args.DistributionIndex < 0 {
		return nil, fmt.Errorf("%w: SBX distribution index %g must be non-negative", optimizer.ErrConfiguration, args.DistributionIndex)
	}
	if args.CrossoverProbability < 0 || args.CrossoverProbability > 1 {
		return nil, fmt.Errorf("%w: SBX crossover probability %g must be in [0, 1]", optimizer.ErrConfiguration, args.CrossoverProbability)
	}
	if args.VariableProbability < 0 || args.VariableProbability > 1 {
		return nil, fmt.Errorf("%w: SBX variable probability %g must be in [0, 1]", optimizer.ErrConfiguration, args.VariableProbability)
	}
	return &SimulatedBinaryCrossover{args: args}, nil
}

func (c *SimulatedBinaryCrossover) betaq(prob, alpha float64) float64 {
	eta := c.args.DistributionIndex
	if prob <= 1.0/alpha {
		return math.Pow(prob*alpha, 1.0/(eta+1.0))
	}
	return math.Pow(1.0/(2.0-prob*alpha), 1.0/(eta+1.0))
}

// crossoverVariables runs the SBX update for one pair of bounded values.
// It returns ok=false when the parents' values are too close to crossover.
func (c *SimulatedBinaryCrossover) crossoverVariables(rng *rand.Rand, v1, v2, lower, upper float64) (nv1, nv2 float64, ok bool) {
	if math.Abs(v1-v2) < 1e-15 {
		return 0, 0, false
	}

	y1, y2 := v1, v2
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	deltaY := y2 - y1
	prob := rng.Float64()

	beta := 1.0 + (2.0 * (y1 - lower) / deltaY)
	alpha := 2.0 - math.Pow(beta, -(c.args.DistributionIndex+1.0))
	newV1 := 0.5 * ((y1 + y2) - c.betaq(prob, alpha)*deltaY)
	newV1 = math.Min(math.Max(newV1, lower), upper)

	beta = 1.0 + (2.0 * (upper - y2) / deltaY)
	alpha = 2.0 - math.Pow(beta, -(c.args.DistributionIndex+1.0))
	newV2 := 0.5 * ((y1 + y2) + c.betaq(prob, alpha)*deltaY)
	newV2 = math.Min(math.Max(newV2, lower), upper)

	if rng.Intn(2) == 0 {
		newV1, newV2 = newV2, newV1
	}
	return newV1, newV2, true
}

// GenerateOffspring recombines parent1 and parent2 into two unevaluated
// children. Non-Real/Integer variables are copied from the respective
// parent unchanged.
func (c *SimulatedBinaryCrossover) GenerateOffspring(rng *rand.Rand, parent1, parent2 *optimizer.Individual) (*optimizer.Individual, *optimizer.Individual) {
	child1 := parent1.Clone()
	child2 := parent2.Clone()

	if rng.Float64() > c.args.CrossoverProbability {
		return child1, child2
	}

	problem := parent1.Problem()
	for _, v := range problem.Variables {
		if rng.Float64() > c.args.VariableProbability {
			continue
		}

		v1 := parent1.Variables[v.Name]
		v2 := parent2.Variables[v.Name]

		switch v.Kind {
		case optimizer.Real:
			nv1, nv2, ok := c.crossoverVariables(rng, v1.Real, v2.Real, v.Min, v.Max)
			if !ok {
				continue
			}
			child1.Variables[v.Name] = optimizer.VariableValue{Kind: optimizer.Real, Real: nv1}
			child2.Variables[v.Name] = optimizer.VariableValue{Kind: optimizer.Real, Real: nv2}
		case optimizer.Integer:
			nv1, nv2, ok := c.crossoverVariables(rng, float64(v1.Int), float64(v2.Int), v.Min, v.Max)
			if !ok {
				continue
			}
			child1.Variables[v.Name] = optimizer.VariableValue{Kind: optimizer.Integer, Int: truncateWithJitter(rng, nv1)}
			child2.Variables[v.Name] = optimizer.VariableValue{Kind: optimizer.Integer, Int: truncateWithJitter(rng, nv2)}
		}
	}

	return child1, child2
}

// truncateWithJitter implements the integer crossover/mutation truncation
// procedure of Deep et al. (2009) section 2.4: truncate toward zero, then
// bump up by one with probability 0.5 to avoid a systematic downward bias.
func truncateWithJitter(rng *rand.Rand, v float64) int64 {
	n := int64(math.Trunc(v))
	if rng.Float64() < 0.5 {
		n++
	}
	return n
}
