// Package validation provides custom validators for the application
package validation

import (
	"bannerdesk/internal/banner"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// Initialize registers all custom validators with the gin binding engine
func Initialize() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		Register(v)
	})
}

// Register adds the custom tags to v
func Register(v *validator.Validate) {
	validations := map[string]validator.Func{
		"nospaces":       validateNoSpaces,
		"zonetype":       validateZoneType,
		"bannerposition": validatePosition,
		"bannerformat":   validateFormat,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// validateNoSpaces checks if a string contains non-space characters
func validateNoSpaces(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.TrimSpace(value) != ""
}

func validateZoneType(fl validator.FieldLevel) bool {
	return banner.ZoneType(fl.Field().String()).Valid()
}

func validatePosition(fl validator.FieldLevel) bool {
	_, err := banner.ParsePosition(fl.Field().String())
	return err == nil
}

func validateFormat(fl validator.FieldLevel) bool {
	_, ok := banner.LookupFormat(banner.Format(fl.Field().String()))
	return ok
}
