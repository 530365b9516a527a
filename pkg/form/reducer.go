package form

// State is the complete view state of a form between renders.
type State struct {
	Values    FormState `json:"values"`
	Errors    ErrorMap  `json:"errors"`
	Submitted bool      `json:"submitted"`
	Attempts  int       `json:"attempts"`
}

// InitialState returns the pristine state for the validator's fields.
func InitialState(v Validator) State {
	return State{
		Values: NewState(v.Fields()...),
		Errors: ErrorMap{},
	}
}

// Action is a user intent applied through Reduce.
type Action interface {
	action()
}

// Change records a single edit to a field.
type Change struct {
	Field string
	Value string
}

// Submit asks for a full validation pass.
type Submit struct{}

// Reset restores the pristine state.
type Reset struct{}

func (Change) action() {}
func (Submit) action() {}
func (Reset) action()  {}

// Reduce applies an action to a state and returns the next state. The input
// state is never mutated.
//
// A Change clears only the edited field's error and never revalidates. Edits
// to undeclared fields are ignored so error keys stay a subset of the values.
func Reduce(v Validator, current State, act Action) State {
	next := Normalize(v, current)

	switch a := act.(type) {
	case Change:
		if !next.Values.Has(a.Field) {
			return next
		}
		next.Values[a.Field] = a.Value
		if next.Errors.Has(a.Field) {
			next.Errors = next.Errors.Without(a.Field)
		}
		next.Submitted = false
	case Submit:
		next.Errors = v.Validate(next.Values.Clone())
		if next.Errors == nil {
			next.Errors = ErrorMap{}
		}
		next.Submitted = next.Errors.Valid()
		next.Attempts++
	case Reset:
		return InitialState(v)
	}
	return next
}

// Normalize returns a copy of state restricted to the validator's fields:
// missing fields are seeded empty, undeclared values and errors are dropped.
func Normalize(v Validator, state State) State {
	fields := v.Fields()
	out := State{
		Values:    NewState(fields...),
		Errors:    ErrorMap{},
		Submitted: state.Submitted,
		Attempts:  state.Attempts,
	}
	for _, field := range fields {
		if value, ok := state.Values[field]; ok {
			out.Values[field] = value
		}
		if message, ok := state.Errors[field]; ok {
			out.Errors[field] = message
		}
	}
	return out
}
