package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Validator collects field errors as field name to message.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError keeps the first message reported for a field.
func (v *Validator) AddError(field, message string) {
	if _, exists := v.Errors[field]; !exists {
		v.Errors[field] = message
	}
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Struct applies the validate tags of s.
func (v *Validator) Struct(s interface{}) {
	err := validate.Struct(s)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.AddError("request", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		v.AddError(fe.Field(), message(fe.Field(), fe.Tag()))
	}
}

// IdentityNo validates a TR identity number received outside a request body.
func (v *Validator) IdentityNo(field, value string) {
	v.Check(IsIdentityNo(value), field, IdentityNoMessage)
}

// Validate is a shorthand for New followed by Struct.
func Validate(s interface{}) map[string]string {
	v := New()
	v.Struct(s)
	if v.Valid() {
		return nil
	}
	return v.Errors
}

func message(field, tag string) string {
	if msg, ok := messages[field+"."+tag]; ok {
		return msg
	}
	return field + " is invalid"
}
