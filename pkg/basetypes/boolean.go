/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import (
	"math"
	"unicode/utf8"
)

// Boolean is the boolean primitive binding. It satisfies neither the Ordered
// nor the Numeric capability.
type Boolean struct {
	value bool
}

func NewBoolean(v bool) Boolean {
	return Boolean{value: v}
}

func (b Boolean) Kind() PrimitiveKind { return PrimitiveKind_bool }

func (b Boolean) Bool() bool { return b.value }

func (b Boolean) Native() any { return b.value }

func (b Boolean) Equal(other Primitive) bool {
	o, ok := other.(Boolean)
	return ok && b.value == o.value
}

// Octet is the 8-bit unsigned primitive binding. Ordered, not numeric.
type Octet struct {
	value uint8
}

// Creates a new octet value. Raw input outside [0, 255] fails with
// ErrOutOfRangeError.
func NewOctet(v int64) (Octet, error) {
	if !within(v, 0, math.MaxUint8) {
		return Octet{}, ErrOutOfRange("value %d does not fit %d-bit %s", v, PrimitiveKind_octet.Width(), PrimitiveKind_octet.TrimString())
	}
	return Octet{value: uint8(v)}, nil
}

func (o Octet) Kind() PrimitiveKind { return PrimitiveKind_octet }

func (o Octet) Uint8() uint8 { return o.value }

func (o Octet) Native() any { return o.value }

func (o Octet) Equal(other Primitive) bool {
	v, ok := other.(Octet)
	return ok && o.value == v.value
}

func (o Octet) LessThan(other Octet) bool       { return o.value < other.value }
func (o Octet) LessOrEqual(other Octet) bool    { return o.value <= other.value }
func (o Octet) GreaterThan(other Octet) bool    { return o.value > other.value }
func (o Octet) GreaterOrEqual(other Octet) bool { return o.value >= other.value }

// Character is the single Unicode code point primitive binding. Ordered by
// code point value.
type Character struct {
	value rune
}

// Creates a new character value. Surrogate halves and values beyond the
// Unicode range fail with ErrOutOfRangeError.
func NewCharacter(r rune) (Character, error) {
	if !utf8.ValidRune(r) {
		return Character{}, ErrOutOfRange("rune %#U is not a valid Unicode code point", r)
	}
	return Character{value: r}, nil
}

func (c Character) Kind() PrimitiveKind { return PrimitiveKind_char }

func (c Character) Rune() rune { return c.value }

func (c Character) Native() any { return c.value }

func (c Character) Equal(other Primitive) bool {
	o, ok := other.(Character)
	return ok && c.value == o.value
}

func (c Character) LessThan(other Character) bool       { return c.value < other.value }
func (c Character) LessOrEqual(other Character) bool    { return c.value <= other.value }
func (c Character) GreaterThan(other Character) bool    { return c.value > other.value }
func (c Character) GreaterOrEqual(other Character) bool { return c.value >= other.value }
