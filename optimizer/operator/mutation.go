package operator

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

// PolynomialMutationArgs configures PolynomialMutation.
//
// Implements Deb & Deb (2014), "Analysing mutation schemes for real-
// parameter genetic algorithms", extended to integer variables by the
// truncation procedure of Deep et al. (2009).
type PolynomialMutationArgs struct {
	// IndexParameter is eta_m in the paper, typically in [20, 100].
	IndexParameter float64
	// VariableProbability is the chance any single variable mutates.
	VariableProbability float64
}

// DefaultPolynomialMutationArgs returns index parameter 20 and a variable
// probability of 1/numRealVars, so a mutated offspring changes roughly one
// variable on average.
func DefaultPolynomialMutationArgs(numRealVars int) PolynomialMutationArgs {
	p := 1.0
	if numRealVars > 0 {
		p = 1.0 / float64(numRealVars)
	}
	return PolynomialMutationArgs{IndexParameter: 20.0, VariableProbability: p}
}

// PolynomialMutation (PM) perturbs the bounded real and integer variables
// of an Individual.
type PolynomialMutation struct {
	args PolynomialMutationArgs
}

// NewPolynomialMutation validates args and builds a PM operator.
func NewPolynomialMutation(args PolynomialMutationArgs) (*PolynomialMutation, error) {
	if args.VariableProbability < 0 || args.VariableProbability > 1 {
		return nil, fmt.Errorf("%w: PM variable probability %g must be in [0, 1]", optimizer.ErrConfiguration, args.VariableProbability)
	}
	return &PolynomialMutation{args: args}, nil
}

func (m *PolynomialMutation) mutateVariable(rng *rand.Rand, y, lower, upper float64) float64 {
	deltaY := upper - lower
	prob := rng.Float64()
	eta := m.args.IndexParameter

	var delta float64
	if prob <= 0.5 {
		bl := (y - lower) / deltaY
		b := 2.0*prob + (1.0-2.0*prob)*math.Pow(1.0-bl, eta+1.0)
		delta = math.Pow(b, 1.0/(eta+1.0)) - 1.0
	} else {
		bu := (upper - y) / deltaY
		b := 2.0*(1.0-prob) + 2.0*(prob-0.5)*math.Pow(1.0-bu, eta+1.0)
		delta = 1.0 - math.Pow(b, 1.0/(eta+1.0))
	}

	newY := y + delta*deltaY
	return math.Min(math.Max(newY, lower), upper)
}

// Mutate returns a mutated copy of ind. Non-Real/Integer variables are
// copied unchanged.
func (m *PolynomialMutation) Mutate(rng *rand.Rand, ind *optimizer.Individual) *optimizer.Individual {
	out := ind.Clone()

	for _, v := range ind.Problem().Variables {
		if rng.Float64() > m.args.VariableProbability {
			continue
		}

		cur := ind.Variables[v.Name]
		switch v.Kind {
		case optimizer.Real:
			newY := m.mutateVariable(rng, cur.Real, v.Min, v.Max)
			out.Variables[v.Name] = optimizer.VariableValue{Kind: optimizer.Real, Real: newY}
		case optimizer.Integer:
			newY := m.mutateVariable(rng, float64(cur.Int), v.Min, v.Max)
			out.Variables[v.Name] = optimizer.VariableValue{Kind: optimizer.Integer, Int: truncateWithJitter(rng, newY)}
		}
	}

	return out
}
