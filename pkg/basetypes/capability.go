/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

// Ordered is the total-ordering capability. All four relations must agree on
// one total order; for NaN-like values all four return false.
type Ordered[T any] interface {
	LessThan(other T) bool
	LessOrEqual(other T) bool
	GreaterThan(other T) bool
	GreaterOrEqual(other T) bool
}

// Numeric is the arithmetic capability. Every operation returns a new value
// of the same kind; fixed-width integer kinds fail with
// ErrArithmeticOverflowError or ErrDivisionByZeroError instead of wrapping.
type Numeric[T any] interface {
	Add(other T) (T, error)
	Subtract(other T) (T, error)
	Multiply(other T) (T, error)
	Divide(other T) (T, error)
	Power(other T) (T, error)
	Negate() (T, error)
}

// OrderedNumeric is satisfied by independently satisfying both capabilities.
type OrderedNumeric[T any] interface {
	Ordered[T]
	Numeric[T]
}

// Compare reduces the four Ordered relations to a single Ordering.
func Compare[T Ordered[T]](a, b T) Ordering {
	switch {
	case a.LessThan(b):
		return Ordering_Less
	case a.GreaterThan(b):
		return Ordering_Greater
	case a.LessOrEqual(b):
		return Ordering_Equal
	}
	return Ordering_Incomparable
}
