package api

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var nationalIDRe = regexp.MustCompile(`^[0-9]{11}$`)

// validateNationalID национальный идентификатор клиента - ровно 11 цифр.
func validateNationalID(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return nationalIDRe.MatchString(str)
}

// decimalValue позволяет валидировать decimal.Decimal числовыми тэгами (gt, lt, required).
func decimalValue(field reflect.Value) any {
	d, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return d.InexactFloat64()
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("national_id", validateNationalID); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	return nil
}
