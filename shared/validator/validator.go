package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

// Checker is implemented by requests that carry rules spanning several fields.
// It runs after the tag rules pass.
type Checker interface {
	Check() error
}

var customRules = map[string]val.Func{
	"empty":    func(fl val.FieldLevel) bool { return fl.Field().IsZero() },
	"dateonly": isDateOnly,
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	for tag, fn := range customRules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s rule: %v", tag, err))
		}
	}

	return v
}

func isDateOnly(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateOnlyFormat, str)

	return err == nil
}

// jsonTagName reports fields by their json name so messages match the request body.
func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func decode(r io.Reader, data any) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

// Validate decodes a JSON body into data and checks its validate tags,
// then its Checker rules. Every failure is a 400.
func Validate[T any](r io.Reader, data *T) error {
	if err := decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	if checker, ok := any(data).(Checker); ok {
		if err := checker.Check(); err != nil {
			return failure.BadRequest(err) //nolint:wrapcheck
		}
	}

	return nil
}

// ValidateSlice validates every element of a decoded array body.
func ValidateSlice[T any](r io.Reader, data *[]T) error {
	if err := decode(r, data); err != nil {
		return err
	}

	for idx := range *data {
		if err := ValidateStruct(&(*data)[idx]); err != nil {
			return failure.BadRequestf("item %d: %s", idx, err.Error()) //nolint:wrapcheck
		}
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
