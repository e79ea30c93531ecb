package check

import "codeberg.org/mutker/guard/internal/errors"

const (
	ErrNullArgument    = errors.ErrNullArgument
	ErrInvalidArgument = errors.ErrInvalidArgument
)

const (
	msgNull     = "Checked parameter is null."
	msgEmpty    = "Checked parameter '%s' is empty."
	msgZero     = "Input parameter '%s' is zero value."
	msgInterval = "The interval for checking the parameter is set incorrectly [min:%v; max:%v]."
	msgOutside  = "Input parameter '%s':%v∉[min:%v; max:%v]."

	nullSuffix = "%s (Parameter '%s')"

	// name used when the parameter name itself is checked
	selfName = "parameterName"
)
