/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import "math"

// Real32 is the 32-bit IEEE 754 primitive binding. Ordered and numeric with
// standard float semantics: division by zero yields a signed infinity or NaN,
// never an error, and NaN compares false under all four Ordered relations.
type Real32 struct {
	value float32
}

// Creates a new 32-bit real value. A finite raw value whose magnitude
// overflows the float32 range fails with ErrOutOfRangeError; NaN and
// infinities pass through, they are representable states of the kind.
func NewReal32(v float64) (Real32, error) {
	if !math.IsInf(v, 0) && math.IsInf(float64(float32(v)), 0) {
		return Real32{}, ErrOutOfRange("value %g does not fit %d-bit %s", v, PrimitiveKind_float32.Width(), PrimitiveKind_float32.TrimString())
	}
	return Real32{value: float32(v)}, nil
}

func (a Real32) Kind() PrimitiveKind { return PrimitiveKind_float32 }

func (a Real32) Float32() float32 { return a.value }

func (a Real32) Native() any { return a.value }

func (a Real32) IsNaN() bool { return a.value != a.value }

func (a Real32) Equal(other Primitive) bool {
	o, ok := other.(Real32)
	return ok && a.value == o.value
}

func (a Real32) LessThan(other Real32) bool       { return a.value < other.value }
func (a Real32) LessOrEqual(other Real32) bool    { return a.value <= other.value }
func (a Real32) GreaterThan(other Real32) bool    { return a.value > other.value }
func (a Real32) GreaterOrEqual(other Real32) bool { return a.value >= other.value }

func (a Real32) Add(other Real32) (Real32, error) {
	return Real32{value: a.value + other.value}, nil
}

func (a Real32) Subtract(other Real32) (Real32, error) {
	return Real32{value: a.value - other.value}, nil
}

func (a Real32) Multiply(other Real32) (Real32, error) {
	return Real32{value: a.value * other.value}, nil
}

func (a Real32) Divide(other Real32) (Real32, error) {
	return Real32{value: a.value / other.value}, nil
}

func (a Real32) Power(other Real32) (Real32, error) {
	return Real32{value: float32(math.Pow(float64(a.value), float64(other.value)))}, nil
}

func (a Real32) Negate() (Real32, error) {
	return Real32{value: -a.value}, nil
}

// Real64 is the 64-bit IEEE 754 primitive binding.
type Real64 struct {
	value float64
}

func NewReal64(v float64) Real64 {
	return Real64{value: v}
}

func (a Real64) Kind() PrimitiveKind { return PrimitiveKind_float64 }

func (a Real64) Float64() float64 { return a.value }

func (a Real64) Native() any { return a.value }

func (a Real64) IsNaN() bool { return math.IsNaN(a.value) }

func (a Real64) Equal(other Primitive) bool {
	o, ok := other.(Real64)
	return ok && a.value == o.value
}

func (a Real64) LessThan(other Real64) bool       { return a.value < other.value }
func (a Real64) LessOrEqual(other Real64) bool    { return a.value <= other.value }
func (a Real64) GreaterThan(other Real64) bool    { return a.value > other.value }
func (a Real64) GreaterOrEqual(other Real64) bool { return a.value >= other.value }

func (a Real64) Add(other Real64) (Real64, error) {
	return Real64{value: a.value + other.value}, nil
}

func (a Real64) Subtract(other Real64) (Real64, error) {
	return Real64{value: a.value - other.value}, nil
}

func (a Real64) Multiply(other Real64) (Real64, error) {
	return Real64{value: a.value * other.value}, nil
}

func (a Real64) Divide(other Real64) (Real64, error) {
	return Real64{value: a.value / other.value}, nil
}

func (a Real64) Power(other Real64) (Real64, error) {
	return Real64{value: math.Pow(a.value, other.value)}, nil
}

func (a Real64) Negate() (Real64, error) {
	return Real64{value: -a.value}, nil
}
