package check

import "iter"

// NotEmptySlice fails when value is nil or has no elements.
func NotEmptySlice[S ~[]E, E any](value S, parameterName string, message ...string) (S, error) {
	if value == nil {
		return nil, nullError(parameterName, message)
	}
	if len(value) == 0 {
		return nil, emptyError(parameterName, message)
	}

	return value, nil
}

// NotEmptyMap fails when value is nil or has no entries.
func NotEmptyMap[M ~map[K]V, K comparable, V any](value M, parameterName string, message ...string) (M, error) {
	if value == nil {
		return nil, nullError(parameterName, message)
	}
	if len(value) == 0 {
		return nil, emptyError(parameterName, message)
	}

	return value, nil
}

// NotEmptySeq fails when value is nil or yields no elements.
//
// Only the first element is pulled to decide emptiness. The returned sequence
// yields that element followed by the rest of the same pull, so single-use
// sequences are traversed once. It must be ranged over (fully or until break)
// to release the pull. Only the first range yields elements; later ranges
// yield nothing.
func NotEmptySeq[T any](value iter.Seq[T], parameterName string, message ...string) (iter.Seq[T], error) {
	if value == nil {
		return nil, nullError(parameterName, message)
	}

	next, stop := iter.Pull(value)
	first, ok := next()
	if !ok {
		stop()
		return nil, emptyError(parameterName, message)
	}

	used := false
	return func(yield func(T) bool) {
		if used {
			return
		}
		used = true
		defer stop()

		if !yield(first) {
			return
		}
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}, nil
}
