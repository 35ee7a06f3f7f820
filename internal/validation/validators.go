package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// HHMM accepts 24-hour wall-clock times like "09:30".
func HHMM(fl validator.FieldLevel) bool {
	return hhmmPattern.MatchString(fl.Field().String())
}

// New returns a validator with the project's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hhmm", HHMM)
	return v
}
