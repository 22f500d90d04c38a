package dates

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RuleName is the validation tag for day-first display dates, e.g.
// `validate:"ddmmyyyy"`.
const RuleName = "ddmmyyyy"

// RegisterRule installs the display-date rule on a validator instance.
// Empty values pass; requiring a value is the separate `required` rule's
// job.
func RegisterRule(v *validator.Validate) error {
	return v.RegisterValidation(RuleName, func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if strings.TrimSpace(value) == "" {
			return true
		}
		return ValidateFormat(value)
	})
}
