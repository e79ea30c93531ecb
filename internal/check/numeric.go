package check

import "fmt"

// Integer is the set of types InInterval accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// NotZero fails when value equals the zero value of T.
func NotZero[T comparable](value T, parameterName string, message ...string) (T, error) {
	var zero T
	if value == zero {
		if err := checkName(parameterName, message); err != nil {
			return zero, err
		}

		return zero, invalid(parameterName, fmt.Sprintf(msgZero, parameterName), message)
	}

	return value, nil
}

// InInterval fails when the interval is not well formed (max <= min) or when
// value lies outside [min, max].
func InInterval[T Integer](value T, parameterName string, min, max T) (T, error) {
	var zero T

	// Compared directly: max-min would overflow at the extremes of T.
	if max <= min {
		return zero, invalid(parameterName, fmt.Sprintf(msgInterval, min, max), nil)
	}

	if value < min || value > max {
		if err := checkName(parameterName, nil); err != nil {
			return zero, err
		}

		return zero, invalid(parameterName, fmt.Sprintf(msgOutside, parameterName, value, min, max), nil)
	}

	return value, nil
}
