package timeline

import (
	"errors"
	"fmt"
)

// ErrUnknownStep is returned by KnownStepsOnly for ids missing from the catalog
var ErrUnknownStep = errors.New("unknown step")

// StepValidator проверяет step id перед изменением прогресса
type StepValidator interface {
	ValidateStep(id int) error
}

// StepValidatorFunc adapts a function to StepValidator
type StepValidatorFunc func(id int) error

// ValidateStep implements StepValidator
func (f StepValidatorFunc) ValidateStep(id int) error {
	return f(id)
}

// AcceptAnyStep accepts every id, including ones absent from the catalog.
// Such ids are stored and counted in the completion percentage.
var AcceptAnyStep StepValidator = StepValidatorFunc(func(int) error { return nil })

// KnownStepsOnly rejects ids that are not defined in the catalog
func KnownStepsOnly(c *Catalog) StepValidator {
	return StepValidatorFunc(func(id int) error {
		if _, ok := c.Step(id); !ok {
			return fmt.Errorf("%w: %d", ErrUnknownStep, id)
		}
		return nil
	})
}
