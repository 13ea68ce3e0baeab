package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterCustomValidations wires the decimal amount validations into the
// binding validator. Monetary amounts must be expressed with at most 2
// fractional digits; anything finer is rejected at the boundary, before any
// lock is acquired or state is touched.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("amountgt0", validateAmountGTZero); err != nil {
		return err
	}
	return v.RegisterValidation("amountgte0", validateAmountGTEZero)
}

func validateAmountGTZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive() && d.Equal(d.Round(2))
}

func validateAmountGTEZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return !d.IsNegative() && d.Equal(d.Round(2))
}
