package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"facility-finder/internal/geo"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse describes one failed field.
type ErrorResponse struct {
	FailedField string `json:"field"`
	Tag         string `json:"tag"`
	Value       string `json:"value,omitempty"`
}

// New returns a validator that reports fields by their JSON name and knows
// the zip5 tag.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("zip5", func(fl validator.FieldLevel) bool {
		return geo.ValidPostalCode(fl.Field().String())
	})

	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}

// ValidateStruct runs v against s and flattens any failures.
func ValidateStruct(v *validator.Validate, s interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []*ErrorResponse{{FailedField: "", Tag: err.Error()}}
	}
	for _, fe := range verrs {
		errs = append(errs, &ErrorResponse{
			FailedField: fe.Field(),
			Tag:         fe.Tag(),
			Value:       fmt.Sprint(fe.Value()),
		})
	}
	return errs
}

// Message renders failures as a single human-readable sentence.
func Message(errs []*ErrorResponse) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, describe(e))
	}
	return strings.Join(parts, "; ")
}

func describe(e *ErrorResponse) string {
	switch e.Tag {
	case "required":
		return fmt.Sprintf("%s is required", e.FailedField)
	case "zip5":
		return fmt.Sprintf("%s must be a 5-digit ZIP code", e.FailedField)
	case "gt", "gte", "min":
		return fmt.Sprintf("%s is too small", e.FailedField)
	case "lt", "lte", "max":
		return fmt.Sprintf("%s is too large", e.FailedField)
	case "oneof":
		return fmt.Sprintf("%s has an unsupported value", e.FailedField)
	case "finite":
		return fmt.Sprintf("%s must be a finite number", e.FailedField)
	case "number":
		return fmt.Sprintf("%s must be a number", e.FailedField)
	case "email", "url":
		return fmt.Sprintf("%s must be a valid %s", e.FailedField, e.Tag)
	default:
		return fmt.Sprintf("%s is invalid", e.FailedField)
	}
}
