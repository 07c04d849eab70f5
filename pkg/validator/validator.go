package validator

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ugandaPhoneRegex matches Ugandan phone numbers with or without the
// country code, after whitespace is stripped.
var ugandaPhoneRegex = regexp.MustCompile(`^(\+256|0)[0-9]{9}$`)

// IsUgandanPhone reports whether the value is a valid Ugandan phone number.
// Spaces are ignored, so "+256 701 234 567" validates.
func IsUgandanPhone(phone string) bool {
	return ugandaPhoneRegex.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// RegisterCustomValidators registers domain validators with Gin's binding
// engine. Call once at startup before the router handles requests.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("ugphone", func(fl validator.FieldLevel) bool {
			return IsUgandanPhone(fl.Field().String())
		})
	}
}
