package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func validateStruct(payload interface{}) *[]error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs := []error{err}
		return &errs
	}

	errs := []error{}
	for _, fieldErr := range validationErrs {
		errs = append(errs, fmt.Errorf("%s", describeFieldError(fieldErr)))
	}
	return &errs
}

func validateField(value any, rules string) error {
	return validate.Var(value, rules)
}

func describeFieldError(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required field", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldErr.Field(), fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fieldErr.Field(), fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", fieldErr.Field(), fieldErr.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in the format %s", fieldErr.Field(), fieldErr.Param())
	case "frame_image":
		return fmt.Sprintf("%s must be a base64 image, a data URL or an https image URL", fieldErr.Field())
	default:
		return fmt.Sprintf("%s failed validation on the %s rule", fieldErr.Field(), fieldErr.Tag())
	}
}
