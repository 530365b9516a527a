package model

// Decorator adjusts a form after it has been built, for example to localise
// labels or point the action at a mounted prefix.
type Decorator interface {
	Decorate(*Form) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Form) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *Form) error {
	return fn(form)
}

// Apply runs decorators in order and stops at the first error.
func Apply(form Form, decorators ...Decorator) (Form, error) {
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(&form); err != nil {
			return Form{}, err
		}
	}
	return form, nil
}

// WithActionPrefix prefixes the form action and footer link with a mount path.
func WithActionPrefix(prefix string) Decorator {
	return DecoratorFunc(func(form *Form) error {
		if prefix == "" || prefix == "/" {
			return nil
		}
		form.Action = prefix + form.Action
		form.Footer.Href = prefix + form.Footer.Href
		return nil
	})
}
