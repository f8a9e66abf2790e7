package content

import (
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Normalize fills declared default values on zero fields and checks the
// record against its schema constraints. Records that fail here are treated
// as corrupt by the read path, never coerced or skipped.
func Normalize(v interface{}) error {
	if err := defaults.Set(v); err != nil {
		return err
	}
	return validate.Struct(v)
}
