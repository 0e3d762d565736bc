/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

// Ordering is the result of comparing two values of an Ordered type.
type Ordering int8

const (
	Ordering_Less    Ordering = -1
	Ordering_Equal   Ordering = 0
	Ordering_Greater Ordering = 1

	// Ordering_Incomparable is returned when either operand is a NaN-like
	// value: such a value is not less-than, not greater-than and not equal
	// to anything, including itself.
	Ordering_Incomparable Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Ordering_Less:
		return "Less"
	case Ordering_Equal:
		return "Equal"
	case Ordering_Greater:
		return "Greater"
	case Ordering_Incomparable:
		return "Incomparable"
	}
	return "Ordering(?)"
}
