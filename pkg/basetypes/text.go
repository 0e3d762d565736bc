/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import "unicode/utf8"

// String is the text primitive binding. Ordered by byte-wise lexicographic
// comparison of the UTF-8 form.
type String struct {
	value string
}

// Creates a new string value. Input that is not well-formed UTF-8 fails with
// ErrInvalidError.
func NewString(v string) (String, error) {
	if !utf8.ValidString(v) {
		return String{}, ErrInvalid("string is not well-formed UTF-8")
	}
	return String{value: v}, nil
}

// Creates a new string value.
//
// # Panics:
//   - if input is not well-formed UTF-8
func MustString(v string) String {
	s, err := NewString(v)
	if err != nil {
		panic(err)
	}
	return s
}

func (s String) Kind() PrimitiveKind { return PrimitiveKind_string }

func (s String) String() string { return s.value }

func (s String) Native() any { return s.value }

func (s String) Equal(other Primitive) bool {
	o, ok := other.(String)
	return ok && s.value == o.value
}

func (s String) LessThan(other String) bool       { return s.value < other.value }
func (s String) LessOrEqual(other String) bool    { return s.value <= other.value }
func (s String) GreaterThan(other String) bool    { return s.value > other.value }
func (s String) GreaterOrEqual(other String) bool { return s.value >= other.value }
