package optimizer

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// VariableKind identifies the tagged variant a Variable or VariableValue holds.
type VariableKind int

const (
	Real VariableKind = iota
	Integer
	Boolean
	Choice
)

func (k VariableKind) String() string {
	switch k {
	case Real:
		return "real"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Choice:
		return "choice"
	default:
		return "unknown"
	}
}

// Variable declares one decision dimension of a Problem.
type Variable struct {
	Name   string
	Kind   VariableKind
	Min    float64 // Real/Integer lower bound (inclusive)
	Max    float64 // Real/Integer upper bound (inclusive)
	Labels []string
}

// NewRealVariable builds a bounded real decision variable.
func NewRealVariable(name string, min, max float64) (Variable, error) {
	v := Variable{Name: name, Kind: Real, Min: min, Max: max}
	return v, v.validate()
}

// NewIntegerVariable builds a bounded integer decision variable.
func NewIntegerVariable(name string, min, max float64) (Variable, error) {
	v := Variable{Name: name, Kind: Integer, Min: min, Max: max}
	return v, v.validate()
}

// NewBooleanVariable builds a boolean decision variable.
func NewBooleanVariable(name string) Variable {
	return Variable{Name: name, Kind: Boolean}
}

// NewChoiceVariable builds a categorical decision variable over labels.
func NewChoiceVariable(name string, labels ...string) (Variable, error) {
	v := Variable{Name: name, Kind: Choice, Labels: labels}
	return v, v.validate()
}

func (v Variable) validate() error {
	switch v.Kind {
	case Real, Integer:
		if !(v.Min < v.Max) {
			return fmt.Errorf("%w: variable %q bounds must satisfy min < max, got [%v, %v]", ErrValidation, v.Name, v.Min, v.Max)
		}
	case Choice:
		if len(v.Labels) == 0 {
			return fmt.Errorf("%w: choice variable %q needs at least one label", ErrValidation, v.Name)
		}
	}
	return nil
}

// Sample draws a uniformly random value respecting the variable's bounds.
func (v Variable) Sample(rng *rand.Rand) VariableValue {
	switch v.Kind {
	case Real:
		return VariableValue{Kind: Real, Real: v.Min + rng.Float64()*(v.Max-v.Min)}
	case Integer:
		lo, hi := int64(v.Min), int64(v.Max)
		return VariableValue{Kind: Integer, Int: lo + int64(rng.Intn(int(hi-lo+1)))}
	case Boolean:
		return VariableValue{Kind: Boolean, Bool: rng.Intn(2) == 1}
	case Choice:
		return VariableValue{Kind: Choice, Label: v.Labels[rng.Intn(len(v.Labels))]}
	default:
		return VariableValue{}
	}
}

// Clamp restricts a real value to the variable's [Min, Max] bounds.
func (v Variable) Clamp(x float64) float64 {
	if x < v.Min {
		return v.Min
	}
	if x > v.Max {
		return v.Max
	}
	return x
}
