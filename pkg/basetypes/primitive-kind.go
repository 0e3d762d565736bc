/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import (
	"strconv"
	"strings"
)

// PrimitiveKind is the semantic kind of a primitive binding.
type PrimitiveKind uint8

//go:generate stringer -type=PrimitiveKind -output=primitive-kind_string.go

const (
	// null - no-value kind. Returned when the requested kind does not exist
	PrimitiveKind_null PrimitiveKind = iota

	PrimitiveKind_bool
	PrimitiveKind_octet
	PrimitiveKind_char
	PrimitiveKind_int32
	PrimitiveKind_int64
	PrimitiveKind_float32
	PrimitiveKind_float64
	PrimitiveKind_string
	PrimitiveKind_uri

	PrimitiveKind_Count
)

// Returns the declared bit width of the kind's representation, zero for
// variable-length kinds (string, uri).
func (k PrimitiveKind) Width() int {
	switch k {
	case PrimitiveKind_bool, PrimitiveKind_octet:
		return 8
	case PrimitiveKind_char, PrimitiveKind_int32, PrimitiveKind_float32:
		return 32
	case PrimitiveKind_int64, PrimitiveKind_float64:
		return 64
	}
	return 0
}

// Returns is the kind bound to a fixed-width representation
func (k PrimitiveKind) IsFixed() bool {
	return k.Width() > 0
}

// Returns does the kind satisfy the Ordered capability
func (k PrimitiveKind) IsOrdered() bool {
	switch k {
	case PrimitiveKind_octet, PrimitiveKind_char,
		PrimitiveKind_int32, PrimitiveKind_int64,
		PrimitiveKind_float32, PrimitiveKind_float64,
		PrimitiveKind_string:
		return true
	}
	return false
}

// Returns does the kind satisfy the Numeric capability
func (k PrimitiveKind) IsNumeric() bool {
	switch k {
	case PrimitiveKind_int32, PrimitiveKind_int64,
		PrimitiveKind_float32, PrimitiveKind_float64:
		return true
	}
	return false
}

func (k PrimitiveKind) MarshalText() ([]byte, error) {
	var s string
	if k < PrimitiveKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a PrimitiveKind in human-readable form, without the
// "PrimitiveKind_" prefix, suitable for debugging or error messages
func (k PrimitiveKind) TrimString() string {
	const pref = "PrimitiveKind_"
	return strings.TrimPrefix(k.String(), pref)
}
