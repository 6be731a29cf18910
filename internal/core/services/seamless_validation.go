package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newEnvelopeValidator reports fields by their JSON names so providers can match
// errors against the payload they sent.
func newEnvelopeValidator() *validator.Validate {
	vld := validator.New()
	vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return vld
}

var envelopeErrorFormatters = map[string]func(field, param string) string{
	"required": func(field, _ string) string {
		return fmt.Sprintf("'%s' is required", field)
	},
	"min": func(field, param string) string {
		return fmt.Sprintf("'%s' must contain at least %s item(s)", field, param)
	},
	"numeric": func(field, _ string) string {
		return fmt.Sprintf("'%s' must be an integer", field)
	},
}

// validationMessages flattens a validator error into one message per failing field.
func validationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		if format, ok := envelopeErrorFormatters[fe.Tag()]; ok {
			msgs = append(msgs, format(field, fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("'%s' failed '%s' check", field, fe.Tag()))
	}
	return msgs
}
