/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

// Interval is a range over any Ordered type, with upper and lower limits
// that may be open or closed, included or not included. A nil bound means
// the interval is unbounded on that side.
type Interval[T Ordered[T]] struct {
	lower, upper                 *T
	lowerIncluded, upperIncluded bool
}

// Creates a new interval. An unbounded side cannot be included, and a lower
// bound greater than the upper bound fails with ErrInvalidError.
func NewInterval[T Ordered[T]](lower, upper *T, lowerIncluded, upperIncluded bool) (Interval[T], error) {
	if lower == nil && lowerIncluded {
		return Interval[T]{}, ErrInvalid("unbounded lower limit cannot be included")
	}
	if upper == nil && upperIncluded {
		return Interval[T]{}, ErrInvalid("unbounded upper limit cannot be included")
	}
	if lower != nil && upper != nil && (*lower).GreaterThan(*upper) {
		return Interval[T]{}, ErrInvalid("lower limit is greater than upper limit")
	}
	return Interval[T]{lower: lower, upper: upper, lowerIncluded: lowerIncluded, upperIncluded: upperIncluded}, nil
}

// ClosedInterval is the [lower, upper] convenience constructor.
//
// # Panics:
//   - if lower is greater than upper
func ClosedInterval[T Ordered[T]](lower, upper T) Interval[T] {
	i, err := NewInterval(&lower, &upper, true, true)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval[T]) Lower() (v T, ok bool) {
	if i.lower != nil {
		return *i.lower, true
	}
	return v, false
}

func (i Interval[T]) Upper() (v T, ok bool) {
	if i.upper != nil {
		return *i.upper, true
	}
	return v, false
}

func (i Interval[T]) LowerUnbounded() bool { return i.lower == nil }
func (i Interval[T]) UpperUnbounded() bool { return i.upper == nil }
func (i Interval[T]) LowerIncluded() bool  { return i.lowerIncluded }
func (i Interval[T]) UpperIncluded() bool  { return i.upperIncluded }

// Has returns true if the value is properly contained in this interval.
// A NaN-like value is contained in no interval.
func (i Interval[T]) Has(v T) bool {
	aboveLower := i.lower == nil ||
		v.GreaterThan(*i.lower) ||
		(i.lowerIncluded && v.GreaterOrEqual(*i.lower))
	belowUpper := i.upper == nil ||
		v.LessThan(*i.upper) ||
		(i.upperIncluded && v.LessOrEqual(*i.upper))
	if i.lower == nil && i.upper == nil {
		// fully unbounded interval still rejects unorderable values
		return v.LessOrEqual(v)
	}
	return aboveLower && belowUpper
}

// Intersects returns true if the two intervals share at least one point:
// each interval's lower limit lies at or below the other's upper limit, with
// an equal pair of limits counting only when both sides include it.
func (i Interval[T]) Intersects(other Interval[T]) bool {
	return fitsBetween(i.lower, i.lowerIncluded, other.upper, other.upperIncluded) &&
		fitsBetween(other.lower, other.lowerIncluded, i.upper, i.upperIncluded)
}

// Contains returns true if all points of the other interval lie inside this
// one. An unbounded side of other is only covered by an unbounded side here;
// an open limit here does not cover the same limit closed there.
func (i Interval[T]) Contains(other Interval[T]) bool {
	if i.lower != nil {
		if other.lower == nil {
			return false
		}
		switch Compare(*i.lower, *other.lower) {
		case Ordering_Less:
		case Ordering_Equal:
			if other.lowerIncluded && !i.lowerIncluded {
				return false
			}
		default:
			return false
		}
	}
	if i.upper != nil {
		if other.upper == nil {
			return false
		}
		switch Compare(*i.upper, *other.upper) {
		case Ordering_Greater:
		case Ordering_Equal:
			if other.upperIncluded && !i.upperIncluded {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Equal returns true if both intervals are semantically the same: identical
// boundedness, inclusion flags and bound values.
func (i Interval[T]) Equal(other Interval[T]) bool {
	if i.lowerIncluded != other.lowerIncluded || i.upperIncluded != other.upperIncluded {
		return false
	}
	if (i.lower == nil) != (other.lower == nil) || (i.upper == nil) != (other.upper == nil) {
		return false
	}
	if i.lower != nil && Compare(*i.lower, *other.lower) != Ordering_Equal {
		return false
	}
	if i.upper != nil && Compare(*i.upper, *other.upper) != Ordering_Equal {
		return false
	}
	return true
}

// fitsBetween reports whether some point lies at or above the lower limit and
// at or below the upper limit. A nil limit is unbounded and never blocks.
func fitsBetween[T Ordered[T]](lower *T, lowerIncluded bool, upper *T, upperIncluded bool) bool {
	if lower == nil || upper == nil {
		return true
	}
	switch Compare(*lower, *upper) {
	case Ordering_Less:
		return true
	case Ordering_Equal:
		return lowerIncluded && upperIncluded
	}
	return false
}
