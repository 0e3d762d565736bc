/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrOutOfRangeError = errors.New("out of range")

func ErrOutOfRange(msg string, args ...any) error {
	return EnrichError(ErrOutOfRangeError, msg, args...)
}

var ErrMalformedURIError = errors.New("malformed URI")

func ErrMalformedURI(msg string, args ...any) error {
	return EnrichError(ErrMalformedURIError, msg, args...)
}

var ErrArithmeticOverflowError = errors.New("arithmetic overflow")

func ErrArithmeticOverflow(msg string, args ...any) error {
	return EnrichError(ErrArithmeticOverflowError, msg, args...)
}

var ErrDivisionByZeroError = errors.New("division by zero")

func ErrDivisionByZero(msg string, args ...any) error {
	return EnrichError(ErrDivisionByZeroError, msg, args...)
}

// ErrIncomparableError signals a capability violation: a comparison whose
// total-order laws cannot be evaluated. Conforming implementations never
// produce it outside of the IEEE NaN tie-break, which is reported through
// Ordering_Incomparable, not through an error.
var ErrIncomparableError = errors.New("incomparable values")

func ErrIncomparable(msg string, args ...any) error {
	return EnrichError(ErrIncomparableError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

var ErrConvertError = errors.New("convert error")

func ErrConvert(msg string, args ...any) error {
	return EnrichError(ErrConvertError, msg, args...)
}
