/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

// Package basetypes implements the foundation layer of the health-record
// information model: the primitive bindings with their fixed-width
// representations, the Ordered and Numeric capability contracts, and the
// Any root interface every model class implements.
//
// Primitives are immutable value types. A constructor never returns a
// partially built value: out-of-range raw input fails with ErrOutOfRangeError,
// a malformed URI fails with ErrMalformedURIError. Arithmetic on fixed-width
// integer kinds is checked and fails with ErrArithmeticOverflowError instead
// of wrapping, because the declared widths are semantic, not storage hints.
package basetypes
