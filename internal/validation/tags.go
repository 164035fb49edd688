package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Tag names registered on the shared validator.
const (
	TagStaffID        = "staffid"
	TagStrongPassword = "strongpassword"
	TagWardAge        = "ward_age"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	mustRegister(TagStaffID, func(fl validator.FieldLevel) bool {
		return ValidID(fl.Field().String())
	})
	mustRegister(TagStrongPassword, func(fl validator.FieldLevel) bool {
		return ValidPassword(fl.Field().String())
	})
	mustRegister(TagWardAge, validateWardAge)
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func validateWardAge(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch {
	case field.CanFloat():
		return ValidAge(field.Float())
	case field.CanInt():
		return ValidAge(float64(field.Int()))
	case field.CanUint():
		return ValidAge(float64(field.Uint()))
	default:
		_, err := CheckAge(field.String())
		return err == nil
	}
}

// Struct runs tag validation on s.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// Var runs a single tag expression against v and maps the ward tags onto the
// error taxonomy.
func Var(v interface{}, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}
	switch tag {
	case TagStaffID:
		if s, ok := v.(string); ok {
			return CheckID(s)
		}
		return ErrInvalidIDFormat
	case TagStrongPassword:
		return ErrWeakPassword
	case TagWardAge:
		return ErrInvalidAge
	}
	return err
}
