package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"required_if": "{field} is required when {param}",
	"gte":         "{field} must be greater than or equal to {param}",
	"gt":          "{field} must be greater than {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"max":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be greater than or equal to {param}",
	"gtefield":    "{field} must be greater than or equal to {param}",
	"gtfield":     "{field} must be after {param}",
	"dateonly":    "{field} must be a date formatted as YYYY-MM-DD",
	"uuid":        "{field} must be a valid id",
	"empty":       "{field} must be empty",
}

// message renders the first failed rule that has a template.
func message(err error) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fe := range fieldErrs {
		if tmpl, ok := messages[fe.Tag()]; ok {
			return strings.NewReplacer("{field}", fe.Field(), "{param}", lowerFirst(fe.Param())).Replace(tmpl)
		}
	}

	return fieldErrs.Error()
}

// lowerFirst turns a Go field name used as a cross-field param into its json form.
func lowerFirst(param string) string {
	if param == "" || strings.ContainsAny(param, " ") {
		return param
	}

	return strings.ToLower(param[:1]) + param[1:]
}
