package driver

import (
	"time"

	"github.com/ashwinyue/optirustic-go/optimizer"
)

// History is one generation's serialisable snapshot, per the JSON export
// format: algorithm configuration, problem declarations, the current
// population (in the user's sign convention), the generation number, and
// elapsed wall-clock time. Maximised objectives are exported un-negated;
// consumers re-hydrate by reversing the sign flip internally.
type History struct {
	Algorithm   string             `json:"algorithm"`
	Options     map[string]any     `json:"options"`
	Problem     ProblemDeclaration `json:"problem"`
	Individuals []IndividualRecord `json:"individuals"`
	Generation  int                `json:"generation"`
	Took        Duration           `json:"took"`
	ExportedOn  string             `json:"exported_on"`
}

// ProblemDeclaration mirrors a Problem's variable/objective/constraint
// names and kinds, for self-describing history files.
type ProblemDeclaration struct {
	Name        string                 `json:"name"`
	Variables   []VariableDeclaration  `json:"variables"`
	Objectives  []ObjectiveDeclaration `json:"objectives"`
	Constraints []string               `json:"constraints"`
}

// VariableDeclaration describes one decision variable.
type VariableDeclaration struct {
	Name string  `json:"name"`
	Kind string  `json:"kind"`
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
}

// ObjectiveDeclaration describes one objective's name and sense.
type ObjectiveDeclaration struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

// IndividualRecord is one exported individual.
type IndividualRecord struct {
	Variables           map[string]any     `json:"variables"`
	Objectives          map[string]float64 `json:"objectives"`
	Constraints         map[string]float64 `json:"constraints,omitempty"`
	ConstraintViolation float64            `json:"constraint_violation"`
	IsFeasible          bool               `json:"is_feasible"`
}

// Duration breaks an elapsed time into hours/minutes/seconds, per the
// export format's "took" field.
type Duration struct {
	Hours   int     `json:"hours"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

func newDuration(total float64) Duration {
	hours := int(total / 3600)
	remainder := total - float64(hours)*3600
	minutes := int(remainder / 60)
	seconds := remainder - float64(minutes)*60
	return Duration{Hours: hours, Minutes: minutes, Seconds: seconds}
}

func declareVariable(v optimizer.Variable) VariableDeclaration {
	return VariableDeclaration{Name: v.Name, Kind: v.Kind.String(), Min: v.Min, Max: v.Max}
}

func declareObjective(o optimizer.Objective) ObjectiveDeclaration {
	direction := "minimise"
	if o.Direction == optimizer.Maximise {
		direction = "maximise"
	}
	return ObjectiveDeclaration{Name: o.Name, Direction: direction}
}

func recordIndividual(ind *optimizer.Individual) IndividualRecord {
	vars := make(map[string]any, len(ind.Variables))
	for name, v := range ind.Variables {
		switch v.Kind {
		case optimizer.Real:
			vars[name] = v.Real
		case optimizer.Integer:
			vars[name] = v.Int
		case optimizer.Boolean:
			vars[name] = v.Bool
		case optimizer.Choice:
			vars[name] = v.Label
		}
	}

	problem := ind.Problem()
	constraints := make(map[string]float64, len(problem.Constraints))
	for _, c := range problem.Constraints {
		constraints[c.Name] = ind.ConstraintViolation(c.Name)
	}

	return IndividualRecord{
		Variables:           vars,
		Objectives:          ind.ExportObjectiveValues(),
		Constraints:         constraints,
		ConstraintViolation: ind.TotalViolation(),
		IsFeasible:          ind.Feasible(),
	}
}

func (d *Driver) buildHistory(population *optimizer.Population) *History {
	problem := d.problem

	variables := make([]VariableDeclaration, len(problem.Variables))
	for i, v := range problem.Variables {
		variables[i] = declareVariable(v)
	}
	objectives := make([]ObjectiveDeclaration, len(problem.Objectives))
	for i, o := range problem.Objectives {
		objectives[i] = declareObjective(o)
	}
	constraints := make([]string, len(problem.Constraints))
	for i, c := range problem.Constraints {
		constraints[i] = c.Name
	}

	individuals := make([]IndividualRecord, population.Len())
	for i := 0; i < population.Len(); i++ {
		individuals[i] = recordIndividual(population.At(i))
	}

	return &History{
		Algorithm: d.cfg.AlgorithmName,
		Options: map[string]any{
			"population_size": d.cfg.PopulationSize,
			"parallel":        d.cfg.Parallel,
		},
		Problem: ProblemDeclaration{
			Name:        problem.Name,
			Variables:   variables,
			Objectives:  objectives,
			Constraints: constraints,
		},
		Individuals: individuals,
		Generation:  d.generation,
		Took:        newDuration(time.Since(d.startTime).Seconds()),
		ExportedOn:  time.Now().Format(time.RFC3339),
	}
}
