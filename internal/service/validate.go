package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"postboard/internal/domain"
)

// newValidator builds a validator that reports fields by their json names, so
// error keys match what clients sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkStruct runs the validator and converts failures into a
// *domain.ValidationError with one message list per field.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	messages := make(map[string][]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		messages[field] = append(messages[field], fieldMessage(field, fe))
	}
	return &domain.ValidationError{Errors: messages}
}

func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
