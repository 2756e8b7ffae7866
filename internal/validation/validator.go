package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"merchant-dashboard/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("merchant_status", validateMerchantStatus)
	_ = v.RegisterValidation("merchant_type", validateMerchantType)
	_ = v.RegisterValidation("merchant_category", validateMerchantCategory)
	_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("card_last4", validateCardLast4)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the raw validator error
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors validates s and maps every failing field to a readable message.
// It returns nil when s is valid.
func (v *Validator) FieldErrors(s interface{}) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	return FormatErrors(err)
}

// FormatErrors turns a validator error into field messages keyed by json name
func FormatErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"request": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

// Summary joins field messages into one sorted line
func Summary(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "iso4217":
		return "must be a three letter currency code"
	case "datetime":
		return fmt.Sprintf("must use the %s format", fe.Param())
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "numeric":
		return "must contain digits only"
	case "merchant_status":
		return "must be one of " + strings.Join(models.MerchantStatuses(), ", ")
	case "merchant_type":
		return "must be one of " + strings.Join(models.MerchantTypes(), ", ")
	case "merchant_category":
		return "must be a known merchant category"
	case "transaction_status":
		return "must be one of " + strings.Join(models.TransactionStatuses(), ", ")
	case "positive_amount":
		return "must be positive"
	case "card_last4":
		return "must be the last four digits of the card"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// validateMerchantStatus accepts Active, Inactive or Suspended in any case
func validateMerchantStatus(fl validator.FieldLevel) bool {
	return containsFold(models.MerchantStatuses(), fl.Field().String())
}

func validateMerchantType(fl validator.FieldLevel) bool {
	return containsFold(models.MerchantTypes(), fl.Field().String())
}

func validateMerchantCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	return containsFold(models.TransactionStatuses(), fl.Field().String())
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	default:
		return false
	}
}

var last4Pattern = regexp.MustCompile(`^\d{4}$`)

func validateCardLast4(fl validator.FieldLevel) bool {
	return last4Pattern.MatchString(fl.Field().String())
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
