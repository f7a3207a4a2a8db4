package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"expense-insight-api/internal/models"
)

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

	_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	_ = v.RegisterValidation("record_date", validateRecordDate)
	_ = v.RegisterValidation("receipt_text", validateReceiptText)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateExpenseCategory validates that a category is one of the known spending categories
func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// recordDatePattern accepts numeric dates in day-first, year-first or
// datetime form, matching the shapes the analysis layer can parse.
var recordDatePattern = regexp.MustCompile(
	`^(\d{4}[-/]\d{1,2}[-/]\d{1,2}([T ]\d{2}:\d{2}:\d{2}.*)?|\d{1,2}[-/]\d{1,2}[-/]\d{4})$`)

// validateRecordDate validates that a date string is in a supported format
func validateRecordDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return false
	}
	return recordDatePattern.MatchString(date)
}

// validateReceiptText validates that receipt text is non-blank after trimming
func validateReceiptText(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
