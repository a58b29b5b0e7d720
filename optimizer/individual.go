package optimizer

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Individual is one candidate solution: a decision vector, the objective
// and constraint values computed for it (NaN until evaluated), and a
// scratch store the driving algorithm uses for bookkeeping (rank, crowding
// distance, NSGA-III association data, ...). Multiple Individuals share one
// Problem by reference; the Problem outlives every Individual derived from
// it.
type Individual struct {
	problem     *Problem
	Variables   map[string]VariableValue
	objectives  map[string]float64 // minimization space
	constraints map[string]float64 // raw evaluator output
	evaluated   bool

	Data Scratch
}

// NewIndividual allocates an Individual with NaN objective/constraint
// values and variable values sampled uniformly at random within bounds.
func NewIndividual(p *Problem, rng *rand.Rand) *Individual {
	ind := &Individual{
		problem:     p,
		Variables:   make(map[string]VariableValue, len(p.Variables)),
		objectives:  make(map[string]float64, len(p.Objectives)),
		constraints: make(map[string]float64, len(p.Constraints)),
		Data:        newScratch(),
	}
	for _, v := range p.Variables {
		ind.Variables[v.Name] = v.Sample(rng)
	}
	ind.resetOutputs()
	return ind
}

func (ind *Individual) resetOutputs() {
	for _, o := range ind.problem.Objectives {
		ind.objectives[o.Name] = math.NaN()
	}
	for _, c := range ind.problem.Constraints {
		ind.constraints[c.Name] = math.NaN()
	}
	ind.evaluated = false
}

// Problem returns the shared Problem this Individual was built against.
func (ind *Individual) Problem() *Problem { return ind.problem }

// Clone returns a fresh offspring individual: a deep copy of the variable
// values, NaN objectives/constraints, and an empty scratch store, sharing
// the same Problem reference. No Data is carried over — scratch state is
// algorithm bookkeeping for a specific generation, not heritable.
func (ind *Individual) Clone() *Individual {
	out := &Individual{
		problem:     ind.problem,
		Variables:   make(map[string]VariableValue, len(ind.Variables)),
		objectives:  make(map[string]float64, len(ind.objectives)),
		constraints: make(map[string]float64, len(ind.constraints)),
		Data:        newScratch(),
	}
	for k, v := range ind.Variables {
		out.Variables[k] = v
	}
	out.resetOutputs()
	return out
}

// Evaluated reports whether Evaluate has successfully populated this
// individual's objective and constraint maps.
func (ind *Individual) Evaluated() bool { return ind.evaluated }

// Evaluate invokes the Problem's Evaluator, validates the returned maps
// against the Problem's declared objectives/constraints, and stores
// objective values in minimization space.
func (ind *Individual) Evaluate() error {
	objs, cons, err := ind.problem.Evaluator.Evaluate(ind)
	if err != nil {
		return fmt.Errorf("%w: evaluator failed: %v", ErrRuntime, err)
	}

	for _, o := range ind.problem.Objectives {
		v, ok := objs[o.Name]
		if !ok {
			return fmt.Errorf("%w: evaluator output missing objective %q", ErrRuntime, o.Name)
		}
		if math.IsNaN(v) {
			return fmt.Errorf("%w: evaluator wrote NaN to objective %q", ErrValidation, o.Name)
		}
		ind.objectives[o.Name] = o.toInternal(v)
	}

	for _, c := range ind.problem.Constraints {
		v, ok := cons[c.Name]
		if !ok {
			return fmt.Errorf("%w: evaluator output missing constraint %q", ErrRuntime, c.Name)
		}
		if math.IsNaN(v) {
			return fmt.Errorf("%w: evaluator wrote NaN to constraint %q", ErrValidation, c.Name)
		}
		ind.constraints[c.Name] = v
	}

	ind.evaluated = true
	return nil
}

// ObjectiveValue returns the objective's value in minimization space
// (Maximise objectives are stored negated).
func (ind *Individual) ObjectiveValue(name string) float64 {
	return ind.objectives[name]
}

// ObjectiveValues returns all objective values in Problem declaration
// order, in minimization space.
func (ind *Individual) ObjectiveValues() []float64 {
	out := make([]float64, len(ind.problem.Objectives))
	for i, o := range ind.problem.Objectives {
		out[i] = ind.objectives[o.Name]
	}
	return out
}

// ExportObjectiveValues returns all objective values in the user's sign
// convention (Maximise objectives un-negated), for serialization.
func (ind *Individual) ExportObjectiveValues() map[string]float64 {
	out := make(map[string]float64, len(ind.problem.Objectives))
	for _, o := range ind.problem.Objectives {
		out[o.Name] = o.toExternal(ind.objectives[o.Name])
	}
	return out
}

// ConstraintViolation returns the named constraint's violation (0 if
// satisfied).
func (ind *Individual) ConstraintViolation(name string) float64 {
	c, ok := ind.problem.constraint(name)
	if !ok {
		return 0
	}
	return c.Violation(ind.constraints[name])
}

// TotalViolation sums the violation of every declared constraint.
func (ind *Individual) TotalViolation() float64 {
	total := 0.0
	for _, c := range ind.problem.Constraints {
		total += c.Violation(ind.constraints[c.Name])
	}
	return total
}

// Feasible reports whether every declared constraint is satisfied.
func (ind *Individual) Feasible() bool {
	for _, c := range ind.problem.Constraints {
		if !c.Feasible(ind.constraints[c.Name]) {
			return false
		}
	}
	return true
}

// SetRank stores the non-dominated-sort front index (0-based: 0 is the
// first/best front).
func (ind *Individual) SetRank(rank int) { ind.Data.SetInt("rank", rank) }

// Rank returns the non-dominated-sort front index, or 0 if unset.
func (ind *Individual) Rank() int {
	r, _ := ind.Data.Int("rank")
	return r
}

// SetCrowding stores the NSGA-II crowding distance.
func (ind *Individual) SetCrowding(d float64) { ind.Data.SetFloat("crowding", d) }

// Crowding returns the NSGA-II crowding distance, or 0 if unset.
func (ind *Individual) Crowding() float64 {
	d, _ := ind.Data.Float("crowding")
	return d
}
