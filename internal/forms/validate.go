package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all forms. Field names are taken from the `form`
// struct tag so validator errors line up with Form field names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check runs validator tags on the input struct and copies any failures onto
// the form as per-field error messages. It returns true when the input is
// valid.
func Check(input any, form *Form) bool {
	err := validate.Struct(input)
	if err == nil {
		return true
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// A non-validation error means the input struct itself is broken.
		panic(fmt.Sprintf("forms: invalid input struct: %v", err))
	}

	for _, fe := range errs {
		form.AddError(fe.Field(), message(form, fe))
	}
	return false
}

// message turns a single validator failure into a display string. The field
// label is used so messages read naturally next to the input.
func message(form *Form, fe validator.FieldError) string {
	label := fe.Field()
	if fld := form.Field(fe.Field()); fld != nil && fld.Label != "" {
		label = fld.Label
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "email":
		return fmt.Sprintf("%s must be a valid e-mail address.", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match.", label)
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}
