package form

import (
	"net/url"
	"sort"
)

// FormState holds the in-progress string value of every declared field.
type FormState map[string]string

// NewState seeds every field with an empty value so later edits and error
// entries always refer to a known key.
func NewState(fields ...string) FormState {
	state := make(FormState, len(fields))
	for _, field := range fields {
		state[field] = ""
	}
	return state
}

// FromValues decodes a submitted HTML form into a FormState. Only declared
// fields are read; anything else in the payload is dropped.
func FromValues(values url.Values, fields []string) FormState {
	state := NewState(fields...)
	for _, field := range fields {
		state[field] = values.Get(field)
	}
	return state
}

// Has reports whether the field is declared.
func (s FormState) Has(field string) bool {
	_, ok := s[field]
	return ok
}

// Set stores value for a declared field and reports whether it was stored.
func (s FormState) Set(field, value string) bool {
	if !s.Has(field) {
		return false
	}
	s[field] = value
	return true
}

// Clone returns an independent copy.
func (s FormState) Clone() FormState {
	if s == nil {
		return nil
	}
	out := make(FormState, len(s))
	for key, value := range s {
		out[key] = value
	}
	return out
}

// ErrorMap maps a field name to a human readable validation message. An empty
// map means the form is valid.
type ErrorMap map[string]string

// Valid reports whether no errors are recorded.
func (e ErrorMap) Valid() bool {
	return len(e) == 0
}

// Has reports whether the given field currently has an error.
func (e ErrorMap) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the names of the fields with errors in lexical order.
func (e ErrorMap) Fields() []string {
	if len(e) == 0 {
		return nil
	}
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Without returns a copy of the map minus the given field.
func (e ErrorMap) Without(field string) ErrorMap {
	out := make(ErrorMap, len(e))
	for key, value := range e {
		if key == field {
			continue
		}
		out[key] = value
	}
	return out
}

// Clone returns an independent copy; a nil map clones to an empty one.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	for key, value := range e {
		out[key] = value
	}
	return out
}

// Validator computes the errors for a complete form submission.
type Validator interface {
	// Name identifies the form, for example "login".
	Name() string
	// Fields lists the declared field names in display order.
	Fields() []string
	// Validate evaluates every rule and reports all violations.
	Validate(values FormState) ErrorMap
}
