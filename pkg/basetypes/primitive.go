/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import "golang.org/x/exp/constraints"

// Primitive is the common face of all primitive bindings: an immutable scalar
// with a fixed semantic kind.
type Primitive interface {
	// Kind returns the semantic kind of the binding
	Kind() PrimitiveKind

	// Native returns the value in its native Go representation
	Native() any

	// Equal returns value equality on the fixed representation. Kinds never
	// mix: an Integer32 is not equal to an Integer64 holding the same number.
	// Floating-point kinds use IEEE equality, so NaN is not equal to itself.
	Equal(other Primitive) bool
}

// within reports whether v lies in the closed interval [lo, hi].
func within[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
