package service

import (
	"errors"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// cents: at most two decimal places, matching the NUMERIC(10, 2) price column.
	v.RegisterValidation("cents", func(fl validator.FieldLevel) bool {
		scaled := fl.Field().Float() * 100
		return math.Abs(scaled-math.Round(scaled)) < 1e-6
	})
	return v
}

// validateInput runs the struct's validate tags. A failed "required" rule
// is reported as missingMsg, anything else names the offending field.
func validateInput(in interface{}, missingMsg string) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return validationError(missingMsg)
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return validationError(missingMsg)
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "email":
		return validationError("Invalid email")
	default:
		return validationError("Invalid " + strings.ToLower(fe.Field()))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
