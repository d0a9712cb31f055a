package estimate

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Simplici0/moldcost/internal/catalog"
)

var (
	ErrInvalidState   = errors.New("invalid estimation state")
	ErrInvalidThermal = errors.New("invalid thermal profile")
)

var (
	stateValidator     *validator.Validate
	stateValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	stateValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		stateValidator = v
	})
	return stateValidator
}

// Validate checks the caller-side contract of an EstimationState: positive
// cavity count, non-negative durations and dimensions, percentages within
// 0-100 and a known runner type. Calculate does not call it.
func Validate(state EstimationState) error {
	err := getValidator().Struct(state)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "EstimationState.")
		msgs = append(msgs, fmt.Sprintf("%s=%v fails %s", field, fe.Value(), constraint(fe)))
	}
	return fmt.Errorf("%w: %s", ErrInvalidState, strings.Join(msgs, "; "))
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// ValidateThermal reports whether CoolingTime yields a finite positive value
// for m: positive diffusivity, melt and ejection temperatures above the mold
// temperature, and a logarithm argument above one.
func ValidateThermal(m catalog.Material) error {
	switch {
	case !(m.ThermalDiffusivity > 0):
		return fmt.Errorf("%w: thermal diffusivity %v must be positive", ErrInvalidThermal, m.ThermalDiffusivity)
	case !(m.MeltTemp > m.MoldTemp):
		return fmt.Errorf("%w: melt temperature %v must exceed mold temperature %v", ErrInvalidThermal, m.MeltTemp, m.MoldTemp)
	case !(m.EjectTemp > m.MoldTemp):
		return fmt.Errorf("%w: ejection temperature %v must exceed mold temperature %v", ErrInvalidThermal, m.EjectTemp, m.MoldTemp)
	}

	ratio := (4 / math.Pi) * ((m.MeltTemp - m.MoldTemp) / (m.EjectTemp - m.MoldTemp))
	if !(ratio > 1) {
		return fmt.Errorf("%w: ejection temperature %v is too close to melt temperature %v", ErrInvalidThermal, m.EjectTemp, m.MeltTemp)
	}
	return nil
}
