package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Basic error check functions from standard library
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// appError implements the Error interface
type appError struct {
	code        ErrorCode
	description string
	err         error
	data        any
}

func (e *appError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", strings.TrimSuffix(e.description, "."), e.err)
	}

	return e.description
}

func (e *appError) Code() ErrorCode {
	return e.code
}

func (e *appError) Title() string {
	return Title(e.code)
}

func (e *appError) Description() string {
	return e.description
}

func (e *appError) WithMessage(msg string) Error {
	return newError(e.err, e.code, msg, e.data)
}

func (e *appError) WithData(data any) Error {
	return &appError{
		code:        e.code,
		description: e.description,
		err:         e.err,
		data:        data,
	}
}

func (e *appError) GetData() any {
	return e.data
}

func (e *appError) Unwrap() error {
	return e.err
}

// Is reports whether target is a coded error with the same code.
func (e *appError) Is(target error) bool {
	t, ok := target.(Error)

	return ok && t.Code() == e.code
}

// newError is the general constructor every other shape delegates to.
// A blank msg falls back to the default description of code.
func newError(err error, code ErrorCode, msg string, data any) *appError {
	if strings.TrimSpace(msg) == "" {
		msg = Description(code)
	}

	return &appError{
		code:        code,
		description: msg,
		err:         err,
		data:        data,
	}
}

type defaultFactory struct{}

func (*defaultFactory) New(code ErrorCode) Error {
	return newError(nil, code, "", nil)
}

func (*defaultFactory) Wrap(code ErrorCode, err error) Error {
	return newError(err, code, "", nil)
}

func (*defaultFactory) WithMessage(code ErrorCode, msg string) Error {
	return newError(nil, code, msg, nil)
}

func (*defaultFactory) WithData(code ErrorCode, data any) Error {
	return newError(nil, code, "", data)
}

func (*defaultFactory) WrapWithMessage(err error, code ErrorCode, msg string) Error {
	return newError(err, code, msg, nil)
}

// New creates a Factory instance for error creation
func New() Factory {
	return &defaultFactory{}
}

// CodeOf returns the code of the first coded error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var coded Error
	if errors.As(err, &coded) {
		return coded.Code(), true
	}

	return "", false
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	return errors.Is(err, &appError{code: code})
}
