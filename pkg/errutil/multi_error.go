// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi combines multiple errors into one:
//
//   - If all errors are nil, it returns nil.
//
//   - If there is one non-nil error, it is returned.
//
//   - Otherwise, the return value is an error whose Error method returns the
//     messages of all non-nil arguments, one per line.
//
// Errors returned by Multi are flattened, so Multi(Multi(a, b), c) is the same
// as Multi(a, b, c). The combined error supports [errors.Is] and [errors.As]
// through its Unwrap method.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if multi, ok := err.(multiError); ok {
			nonNil = append(nonNil, multi...)
		} else {
			nonNil = append(nonNil, err)
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors:")
	for _, e := range me {
		sb.WriteString("\n  ")
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (me multiError) Unwrap() []error { return me }
