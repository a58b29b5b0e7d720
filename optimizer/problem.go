package optimizer

import "fmt"

// Evaluator is the caller-supplied contract that fills in an Individual's
// objective and constraint values. Implementations must be pure with
// respect to the Individual's variable values, since the driver may invoke
// Evaluate from multiple goroutines concurrently (one per Individual) when
// parallel evaluation is enabled.
type Evaluator interface {
	// Evaluate returns one entry per Problem objective, keyed by name, in
	// the user's sign convention (not minimization space), and optionally
	// one entry per Problem constraint. A missing objective or constraint
	// is a runtime error, not a zero value.
	Evaluate(ind *Individual) (objectives map[string]float64, constraints map[string]float64, err error)
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ind *Individual) (map[string]float64, map[string]float64, error)

func (f EvaluatorFunc) Evaluate(ind *Individual) (map[string]float64, map[string]float64, error) {
	return f(ind)
}

// Problem is the ordered declaration of a multi-objective optimization
// problem: its decision variables, objectives, constraints, and the
// evaluator that scores a candidate Individual. A single Problem is shared
// by reference across every Individual derived from it and across parallel
// evaluation tasks; once constructed it is treated as read-only by the
// core algorithms (an Evaluator implementation that holds internal state
// must synchronize it itself).
type Problem struct {
	Name        string
	Variables   []Variable
	Objectives  []Objective
	Constraints []Constraint
	Evaluator   Evaluator

	varIndex  map[string]int
	objIndex  map[string]int
	consIndex map[string]int
}

// NewProblem validates and builds a Problem. Names must be unique within
// each of variables, objectives, and constraints.
func NewProblem(name string, variables []Variable, objectives []Objective, constraints []Constraint, evaluator Evaluator) (*Problem, error) {
	p := &Problem{
		Name:        name,
		Variables:   variables,
		Objectives:  objectives,
		Constraints: constraints,
		Evaluator:   evaluator,
	}

	p.varIndex = make(map[string]int, len(variables))
	for i, v := range variables {
		if err := v.validate(); err != nil {
			return nil, err
		}
		if _, dup := p.varIndex[v.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate variable name %q", ErrValidation, v.Name)
		}
		p.varIndex[v.Name] = i
	}

	p.objIndex = make(map[string]int, len(objectives))
	for i, o := range objectives {
		if _, dup := p.objIndex[o.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate objective name %q", ErrValidation, o.Name)
		}
		p.objIndex[o.Name] = i
	}
	if len(objectives) == 0 {
		return nil, fmt.Errorf("%w: problem %q must declare at least one objective", ErrValidation, name)
	}

	p.consIndex = make(map[string]int, len(constraints))
	for i, c := range constraints {
		if _, dup := p.consIndex[c.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate constraint name %q", ErrValidation, c.Name)
		}
		p.consIndex[c.Name] = i
	}

	return p, nil
}

func (p *Problem) objective(name string) (Objective, bool) {
	i, ok := p.objIndex[name]
	if !ok {
		return Objective{}, false
	}
	return p.Objectives[i], true
}

func (p *Problem) constraint(name string) (Constraint, bool) {
	i, ok := p.consIndex[name]
	if !ok {
		return Constraint{}, false
	}
	return p.Constraints[i], true
}

func (p *Problem) variable(name string) (Variable, bool) {
	i, ok := p.varIndex[name]
	if !ok {
		return Variable{}, false
	}
	return p.Variables[i], true
}

// NumObjectives returns M, the objective-space dimensionality.
func (p *Problem) NumObjectives() int { return len(p.Objectives) }
