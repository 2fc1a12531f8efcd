package handlers

import (
	"reflect"
	"regexp"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var expenseTypePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator:
//
//	isodate     string in YYYY-MM-DD form
//	amount2dp   decimal amount with at most two decimal places, below domain.MaxAmount
//	expensetype lower-case expense type key such as "all" or "maintenance"
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	// Validate decimals through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation("isodate", validateISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("amount2dp", validateAmount2dp); err != nil {
		return err
	}
	return v.RegisterValidation("expensetype", validateExpenseType)
}

func validateISODate(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func validateAmount2dp(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return domain.HasMinorUnitPrecision(d) && domain.WithinAmountLimit(d)
}

func validateExpenseType(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	return ok && expenseTypePattern.MatchString(s)
}
