package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var identityNoRegex = regexp.MustCompile(`^[0-9]{11}$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report fields by their json names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// Decimals are validated through their string form.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "amount_min", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && d.GreaterThan(MinTransactionAmount)
	})
	mustRegister(v, "amount_max", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && d.LessThan(MaxTransactionAmount)
	})
	mustRegister(v, "amount_scale", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && d.Equal(d.Truncate(AmountScale))
	})
	mustRegister(v, "tr_identity_no", func(fl validator.FieldLevel) bool {
		return IsIdentityNo(fl.Field().String())
	})
	mustRegister(v, "strong_password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: " + err.Error())
	}
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(fl.Field().String())
	return d, err == nil
}

// IsIdentityNo reports whether s is exactly 11 digits.
func IsIdentityNo(s string) bool {
	return identityNoRegex.MatchString(s)
}

// IsStrongPassword requires a lowercase letter, an uppercase letter, a digit
// and a special character.
func IsStrongPassword(password string) bool {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}
