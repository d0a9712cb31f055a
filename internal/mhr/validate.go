package mhr

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidInputs = errors.New("invalid machine hour rate inputs")

var validate = validator.New()

// Validate rejects negative cost drivers, a zero depreciation period, a zero
// yearly capacity and percentages or calendar figures outside their range.
func Validate(in Inputs) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInputs, err)
	}
	return nil
}
