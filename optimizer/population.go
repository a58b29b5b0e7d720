package optimizer

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Population is an ordered collection of Individuals evaluated against the
// same Problem. Algorithms operate on Populations rather than bare slices
// so that the Problem back-reference travels with the group (offspring
// construction, export, and validation all need it).
type Population struct {
	problem     *Problem
	individuals []*Individual
}

// NewPopulation allocates an empty Population bound to p.
func NewPopulation(p *Problem) *Population {
	return &Population{problem: p}
}

// NewRandomPopulation builds a Population of n Individuals with variable
// values sampled uniformly at random within bounds, unevaluated.
func NewRandomPopulation(p *Problem, n int, rng *rand.Rand) *Population {
	pop := NewPopulation(p)
	for i := 0; i < n; i++ {
		pop.Append(NewIndividual(p, rng))
	}
	return pop
}

// Problem returns the shared Problem every member of this Population was
// built against.
func (pop *Population) Problem() *Problem { return pop.problem }

// Len returns the number of individuals in the population.
func (pop *Population) Len() int { return len(pop.individuals) }

// At returns the i-th individual.
func (pop *Population) At(i int) *Individual { return pop.individuals[i] }

// Individuals returns the underlying slice. Callers must not retain it
// across a Population mutation.
func (pop *Population) Individuals() []*Individual { return pop.individuals }

// Append adds ind to the population. It panics if ind was built against a
// different Problem, since every algorithm assumes a single shared Problem
// per run.
func (pop *Population) Append(ind *Individual) {
	if ind.problem != pop.problem {
		panic(fmt.Sprintf("optimizer: individual from problem %q appended to population for %q", ind.problem.Name, pop.problem.Name))
	}
	pop.individuals = append(pop.individuals, ind)
}

// AppendAll adds every individual of other to pop.
func (pop *Population) AppendAll(other *Population) {
	for _, ind := range other.individuals {
		pop.Append(ind)
	}
}

// Slice returns a new Population containing individuals[start:end],
// sharing the same Problem.
func (pop *Population) Slice(start, end int) *Population {
	out := NewPopulation(pop.problem)
	out.individuals = append(out.individuals, pop.individuals[start:end]...)
	return out
}

// Clone returns a deep copy: the Population and every contained Individual
// are copied, objectives/constraints carried over (not reset), and the
// scratch store cloned too. Use this when an algorithm needs to take a
// survivor snapshot without aliasing the working generation.
func (pop *Population) Clone() *Population {
	out := NewPopulation(pop.problem)
	out.individuals = make([]*Individual, len(pop.individuals))
	for i, ind := range pop.individuals {
		c := &Individual{
			problem:     ind.problem,
			Variables:   make(map[string]VariableValue, len(ind.Variables)),
			objectives:  make(map[string]float64, len(ind.objectives)),
			constraints: make(map[string]float64, len(ind.constraints)),
			evaluated:   ind.evaluated,
			Data:        ind.Data.clone(),
		}
		for k, v := range ind.Variables {
			c.Variables[k] = v
		}
		for k, v := range ind.objectives {
			c.objectives[k] = v
		}
		for k, v := range ind.constraints {
			c.constraints[k] = v
		}
		out.individuals[i] = c
	}
	return out
}

// EvaluateAll calls Evaluate on every individual that has not yet been
// evaluated, sequentially, returning the first error encountered.
func (pop *Population) EvaluateAll() error {
	for _, ind := range pop.individuals {
		if ind.evaluated {
			continue
		}
		if err := ind.Evaluate(); err != nil {
			return err
		}
	}
	return nil
}
