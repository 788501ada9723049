// Package validate wraps go-playground/validator behind a single generic
// entry point. Request DTOs declare their constraints as struct tags, so one
// validator serves every schema; handlers only ever see the first failing
// field's message, formatted for human readers.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// messages maps validation tags to message templates. The first %s is the
// JSON field name; the second, when present, is the tag parameter.
var messages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
	"min":      "%s must be at least %s characters long",
	"max":      "%s must be no longer than %s characters",
	"gte":      "%s must be greater than or equal to %s",
	"gt":       "%s must be greater than %s",
	"len":      "%s must be exactly %s characters long",
}

// Validator checks request DTOs against their struct tags.
type Validator struct {
	v *validator.Validate
}

// New constructs a Validator that reports fields by their json tag name, so
// error messages match the payload the client actually sent.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s and returns nil or an error whose message describes the
// first failing field. Numeric min/max on strings are reported as lengths;
// everything else falls back to a generic "is invalid" message.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	e := errs[0]
	tpl, ok := messages[e.Tag()]
	if !ok {
		return fmt.Errorf("%s is invalid", e.Field())
	}
	if strings.Count(tpl, "%s") == 2 {
		return fmt.Errorf(tpl, e.Field(), e.Param())
	}
	return fmt.Errorf(tpl, e.Field())
}
