package validator

import (
	"github.com/go-playground/validator/v10"

	"venturelink_backend/internal/money"
)

// registerCustomRules wires project-specific validation tags.
func registerCustomRules(v *validator.Validate) error {
	// "money": a currency-formatted amount, e.g. "USD 1000" or "EUR 2,500.50"
	return v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := money.Parse(s)
		return err == nil
	})
}
