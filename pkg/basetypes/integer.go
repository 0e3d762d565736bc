/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import "math"

// Integer32 is the 32-bit signed integer primitive binding. Ordered and
// numeric; all arithmetic is overflow-checked.
type Integer32 struct {
	value int32
}

// Creates a new 32-bit integer value. Raw input outside the int32 range
// fails with ErrOutOfRangeError.
func NewInteger32(v int64) (Integer32, error) {
	if !within(v, math.MinInt32, math.MaxInt32) {
		return Integer32{}, ErrOutOfRange("value %d does not fit %d-bit %s", v, PrimitiveKind_int32.Width(), PrimitiveKind_int32.TrimString())
	}
	return Integer32{value: int32(v)}, nil
}

func (a Integer32) Kind() PrimitiveKind { return PrimitiveKind_int32 }

func (a Integer32) Int32() int32 { return a.value }

func (a Integer32) Native() any { return a.value }

func (a Integer32) Equal(other Primitive) bool {
	o, ok := other.(Integer32)
	return ok && a.value == o.value
}

func (a Integer32) LessThan(other Integer32) bool       { return a.value < other.value }
func (a Integer32) LessOrEqual(other Integer32) bool    { return a.value <= other.value }
func (a Integer32) GreaterThan(other Integer32) bool    { return a.value > other.value }
func (a Integer32) GreaterOrEqual(other Integer32) bool { return a.value >= other.value }

// narrow32 converts an exact int64 result back to the 32-bit kind, reporting
// overflow of the declared width.
func narrow32(v int64, op string) (Integer32, error) {
	if !within(v, math.MinInt32, math.MaxInt32) {
		return Integer32{}, ErrArithmeticOverflow("%s result %d does not fit %d-bit %s", op, v, PrimitiveKind_int32.Width(), PrimitiveKind_int32.TrimString())
	}
	return Integer32{value: int32(v)}, nil
}

// 32-bit operands never overflow the 64-bit intermediate, so add, subtract
// and multiply compute exactly in int64 and narrow afterwards.

func (a Integer32) Add(other Integer32) (Integer32, error) {
	return narrow32(int64(a.value)+int64(other.value), "add")
}

func (a Integer32) Subtract(other Integer32) (Integer32, error) {
	return narrow32(int64(a.value)-int64(other.value), "subtract")
}

func (a Integer32) Multiply(other Integer32) (Integer32, error) {
	return narrow32(int64(a.value)*int64(other.value), "multiply")
}

func (a Integer32) Divide(other Integer32) (Integer32, error) {
	if other.value == 0 {
		return Integer32{}, ErrDivisionByZero("%d / 0", a.value)
	}
	return narrow32(int64(a.value)/int64(other.value), "divide")
}

func (a Integer32) Power(other Integer32) (Integer32, error) {
	r, err := powInt64(int64(a.value), int64(other.value))
	if err != nil {
		return Integer32{}, err
	}
	return narrow32(r, "power")
}

func (a Integer32) Negate() (Integer32, error) {
	return narrow32(-int64(a.value), "negate")
}

// Integer64 is the 64-bit signed integer primitive binding. Ordered and
// numeric; all arithmetic is overflow-checked.
type Integer64 struct {
	value int64
}

func NewInteger64(v int64) Integer64 {
	return Integer64{value: v}
}

func (a Integer64) Kind() PrimitiveKind { return PrimitiveKind_int64 }

func (a Integer64) Int64() int64 { return a.value }

func (a Integer64) Native() any { return a.value }

func (a Integer64) Equal(other Primitive) bool {
	o, ok := other.(Integer64)
	return ok && a.value == o.value
}

func (a Integer64) LessThan(other Integer64) bool       { return a.value < other.value }
func (a Integer64) LessOrEqual(other Integer64) bool    { return a.value <= other.value }
func (a Integer64) GreaterThan(other Integer64) bool    { return a.value > other.value }
func (a Integer64) GreaterOrEqual(other Integer64) bool { return a.value >= other.value }

func (a Integer64) Add(other Integer64) (Integer64, error) {
	r, err := addInt64(a.value, other.value)
	return Integer64{value: r}, err
}

func (a Integer64) Subtract(other Integer64) (Integer64, error) {
	r, err := subInt64(a.value, other.value)
	return Integer64{value: r}, err
}

func (a Integer64) Multiply(other Integer64) (Integer64, error) {
	r, err := mulInt64(a.value, other.value)
	return Integer64{value: r}, err
}

func (a Integer64) Divide(other Integer64) (Integer64, error) {
	r, err := divInt64(a.value, other.value)
	return Integer64{value: r}, err
}

func (a Integer64) Power(other Integer64) (Integer64, error) {
	r, err := powInt64(a.value, other.value)
	return Integer64{value: r}, err
}

func (a Integer64) Negate() (Integer64, error) {
	if a.value == math.MinInt64 {
		return Integer64{}, ErrArithmeticOverflow("negate result of %d does not fit %d-bit %s", a.value, PrimitiveKind_int64.Width(), PrimitiveKind_int64.TrimString())
	}
	return Integer64{value: -a.value}, nil
}

func addInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, ErrArithmeticOverflow("%d + %d", a, b)
	}
	return a + b, nil
}

func subInt64(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, ErrArithmeticOverflow("%d - %d", a, b)
	}
	return a - b, nil
}

func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, nil
		}
		if b == 1 {
			return a, nil
		}
		return 0, ErrArithmeticOverflow("%d * %d", a, b)
	}
	r := a * b
	if r/b != a {
		return 0, ErrArithmeticOverflow("%d * %d", a, b)
	}
	return r, nil
}

func divInt64(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero("%d / 0", a)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrArithmeticOverflow("%d / %d", a, b)
	}
	return a / b, nil
}

// powInt64 is checked integer exponentiation by squaring. Negative exponents
// have no representable integer result and fail with ErrOutOfRangeError.
func powInt64(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, ErrOutOfRange("negative exponent %d for integer power", exp)
	}
	result := int64(1)
	for exp > 0 {
		var err error
		if exp&1 == 1 {
			if result, err = mulInt64(result, base); err != nil {
				return 0, err
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, err = mulInt64(base, base); err != nil {
				return 0, err
			}
		}
	}
	return result, nil
}
