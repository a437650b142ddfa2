package model

// Decorator enriches a form after it has been built from a definition source
// (YAML, OpenAPI, or code) and before it is rendered.
type Decorator interface {
	Decorate(*Form) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*Form) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *Form) error {
	return fn(form)
}

// Decorate applies decorators in order, stopping at the first failure.
func Decorate(form *Form, decorators ...Decorator) error {
	for _, decorator := range decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(form); err != nil {
			return err
		}
	}
	return nil
}
