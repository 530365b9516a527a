package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-fitm8/pkg/form"
	"github.com/goliatone/go-fitm8/pkg/model"
)

// Collect prompts for every field of f, submits the answers through a form
// store and re-prompts only the fields that failed validation. It returns
// the final state, with ErrTooManyAttempts when the form is still invalid
// after the configured number of submissions.
func (r *Renderer) Collect(ctx context.Context, f model.Form, v form.Validator) (form.State, error) {
	store := form.NewStore(v)
	pending := f.FieldNames()

	for {
		for _, name := range pending {
			field, ok := f.Field(name)
			if !ok {
				continue
			}
			current := store.State()
			value, err := r.prompt(ctx, field, current.Values[name], current.Errors[name])
			if err != nil {
				return store.State(), err
			}
			store.Dispatch(form.Change{Field: name, Value: value})
		}

		state := store.Dispatch(form.Submit{})
		if state.Errors.Valid() {
			return state, nil
		}
		if state.Attempts >= r.maxAttempts {
			return state, fmt.Errorf("%w: %s still has %d invalid %s after %d submissions",
				ErrTooManyAttempts, v.Name(), len(state.Errors), plural(len(state.Errors), "field", "fields"), state.Attempts)
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("%sPlease fix %d %s", r.theme.ErrorPrefix,
			len(state.Errors), plural(len(state.Errors), "field", "fields"))); err != nil {
			return state, err
		}
		pending = failedInOrder(f, state.Errors)
	}
}

func (r *Renderer) prompt(ctx context.Context, field model.Field, current, problem string) (string, error) {
	message := trimLabel(field.Label)
	if problem != "" {
		message = fmt.Sprintf("%s (%s)", message, problem)
	}

	switch {
	case field.Type == model.InputSelect:
		labels := make([]string, len(field.Options))
		selected := -1
		for i, option := range field.Options {
			labels[i] = option.Label
			if option.Value == current {
				selected = i
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels,
			DefaultIndex: selected,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(field.Options) {
			return "", nil
		}
		return field.Options[idx].Value, nil
	case field.Secret || field.Type == model.InputPassword:
		return r.driver.Password(ctx, InputConfig{Message: message})
	default:
		return r.driver.Input(ctx, InputConfig{
			Message: message,
			Default: current,
			Help:    field.Placeholder,
		})
	}
}

func failedInOrder(f model.Form, errs form.ErrorMap) []string {
	var out []string
	for _, field := range f.Fields {
		if errs.Has(field.Name) {
			out = append(out, field.Name)
		}
	}
	return out
}
