// Package check provides guard clauses for function arguments.
//
// Every guard returns the checked value unchanged together with a nil error,
// or the zero value and an errors.Error coded ErrNullArgument (the value is
// absent) or ErrInvalidArgument (the value is present but unusable). A
// non-blank custom message replaces the default text; for null failures the
// "(Parameter '<name>')" suffix is kept regardless.
package check

import (
	"fmt"
	"reflect"
	"strings"

	"codeberg.org/mutker/guard/internal/errors"
)

// NotEmpty fails when value is empty or whitespace only.
func NotEmpty(value, parameterName string, message ...string) (string, error) {
	if isBlank(value) {
		return "", emptyError(parameterName, message)
	}

	return value, nil
}

// NotEmptyPtr fails when value is nil or points to a blank string.
func NotEmptyPtr(value *string, parameterName string, message ...string) (string, error) {
	if value == nil {
		return "", nullError(parameterName, message)
	}

	return NotEmpty(*value, parameterName, message...)
}

// NotNull fails when value is a nil interface, pointer, unsafe pointer, map,
// slice, channel or function. Other kinds can not be nil and always pass.
func NotNull[T any](value T, parameterName string, message ...string) (T, error) {
	if isNil(value) {
		var zero T
		if err := checkName(parameterName, message); err != nil {
			return zero, err
		}

		return zero, nullError(parameterName, message)
	}

	return value, nil
}

// Must returns value, or panics if err is non-nil.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

// checkName validates the parameter name before it is used in a message.
// NotNull and NotZero hand their custom message on to it, the other guards
// pass nil.
func checkName(parameterName string, message []string) error {
	if isBlank(parameterName) {
		return invalid(selfName, fmt.Sprintf(msgEmpty, selfName), message)
	}

	return nil
}

func nullError(parameterName string, message []string) error {
	if err := checkName(parameterName, nil); err != nil {
		return err
	}

	msg := msgNull
	if custom, ok := customMessage(message); ok {
		msg = custom
	}

	return errors.New().
		WithMessage(ErrNullArgument, fmt.Sprintf(nullSuffix, msg, parameterName)).
		WithData(errors.Param{Name: parameterName})
}

func emptyError(parameterName string, message []string) error {
	if err := checkName(parameterName, nil); err != nil {
		return err
	}

	return invalid(parameterName, fmt.Sprintf(msgEmpty, parameterName), message)
}

// invalid builds an ErrInvalidArgument error; a custom message replaces def.
func invalid(parameterName, def string, message []string) error {
	msg := def
	if custom, ok := customMessage(message); ok {
		msg = custom
	}

	return errors.New().
		WithMessage(ErrInvalidArgument, msg).
		WithData(errors.Param{Name: parameterName})
}

func customMessage(message []string) (string, bool) {
	if len(message) == 0 || isBlank(message[0]) {
		return "", false
	}

	return message[0], true
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
