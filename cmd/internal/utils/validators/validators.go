package validators

import (
	"emrappt/cmd/internal/domain/entity"
	"github.com/go-playground/validator/v10"
	"reflect"
	"strconv"
	"strings"
)

// Register installs the appointment validators and makes validation errors
// report json field names.
func Register(validate *validator.Validate) {
	validate.RegisterTagNameFunc(JSONFieldName)
	_ = validate.RegisterValidation("apptstatus", IsStatus)
	_ = validate.RegisterValidation("apptmode", IsMode)
	_ = validate.RegisterValidation("nonzero", IsNonZero)
}

func IsStatus(fl validator.FieldLevel) bool {
	return entity.Status(fl.Field().String()).IsValid()
}

func IsMode(fl validator.FieldLevel) bool {
	return entity.Mode(fl.Field().String()).IsValid()
}

// IsNonZero fails for numeric strings equal to zero. Other strings pass and
// are left to the caller's parsing.
func IsNonZero(fl validator.FieldLevel) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	return err != nil || n != 0
}

func JSONFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
