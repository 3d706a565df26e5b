package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"

	"spend-insights/internal/models"

	"github.com/go-playground/validator/v10"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("year_month", validateYearMonth)
	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("z_threshold", validateZThreshold)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s against its struct tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens a validation error into field name -> message pairs.
// Errors that are not validator.ValidationErrors are returned under "request".
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fields["request"] = err.Error()
		return fields
	}

	for _, fe := range validationErrs {
		fields[fe.Field()] = describe(fe)
	}
	return fields
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "year_month":
		return "must use the YYYY-MM format"
	case "frequency":
		return "must be one of monthly, quarterly, semi-annual, annual"
	case "z_threshold":
		return "must be a finite number greater than 0"
	default:
		return fmt.Sprintf("failed the %s rule", fe.Tag())
	}
}

// Custom validation functions

// validateYearMonth validates a calendar month key such as 2024-03
func validateYearMonth(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !yearMonthPattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01", value)
	return err == nil
}

// validateFrequency validates that a recurrence frequency is one of the known cadences
func validateFrequency(fl validator.FieldLevel) bool {
	return models.Frequency(strings.ToLower(fl.Field().String())).IsValid()
}

// validateZThreshold validates that a z-score threshold is finite and positive
func validateZThreshold(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
	default:
		return false
	}
}
