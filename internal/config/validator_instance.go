package config

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tally/internal/counter"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML key so errors point at the file.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme", validateTheme)

		validateInst = v
	})

	return validateInst
}

// validateTheme accepts the names counter.ParseTheme understands. Empty is
// allowed and means light.
func validateTheme(fl validator.FieldLevel) bool {
	_, err := counter.ParseTheme(fl.Field().String())
	return err == nil
}
