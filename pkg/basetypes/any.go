/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import "reflect"

// Any is the root capability of the model class hierarchy. Every non-primitive
// model class implements it structurally; the anchored contracts (structural
// equality, JSON serialization) are implemented once over this interface, no
// concrete class re-implements them.
//
// Model classes are implemented on pointer receivers by convention, so that
// Any values stay comparable and owned children keep a stable identity during
// a serialization traversal.
type Any interface {
	// QName returns the stable concrete-type identity of the instance
	QName() QName

	// Attributes returns the declared attributes in declaration order.
	// The returned slice is a fresh copy on every call.
	Attributes() []Attribute
}

// Attribute is one declared attribute of a model class.
//
// Value is nil for an absent optional attribute, or one of: Primitive, UID,
// Any, []Any. A BackRef attribute points at an instance owned elsewhere in
// the tree; it serializes and compares as a light identifier, never as the
// full nested structure, which keeps ownership graphs acyclic.
type Attribute struct {
	Name    string
	Value   any
	BackRef bool
}

// Identified is implemented by model classes that carry a durable unique
// identifier. Back-references to such instances use the identifier as their
// light form; for everything else the type identity is used.
type Identified interface {
	Identity() UID
}

// Equal returns structural equality of two model class instances: identical
// concrete-type identity and recursively equal attributes in declaration
// order. Two distinct instances with equal attribute values are equal.
func Equal(a, b Any) bool {
	if isNilAny(a) || isNilAny(b) {
		return isNilAny(a) && isNilAny(b)
	}
	if a.QName() != b.QName() {
		return false
	}
	aa, bb := a.Attributes(), b.Attributes()
	if len(aa) != len(bb) {
		return false
	}
	for i := range aa {
		if aa[i].Name != bb[i].Name || aa[i].BackRef != bb[i].BackRef {
			return false
		}
		if aa[i].BackRef {
			if refIdent(aa[i].Value) != refIdent(bb[i].Value) {
				return false
			}
			continue
		}
		if !valueEqual(aa[i].Value, bb[i].Value) {
			return false
		}
	}
	return true
}

func valueEqual(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	switch xv := x.(type) {
	case Primitive:
		yv, ok := y.(Primitive)
		return ok && xv.Equal(yv)
	case UID:
		yv, ok := y.(UID)
		return ok && xv == yv
	case Any:
		yv, ok := y.(Any)
		return ok && Equal(xv, yv)
	case []Any:
		yv, ok := y.([]Any)
		if !ok || len(xv) != len(yv) {
			return false
		}
		for i := range xv {
			if !Equal(xv[i], yv[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// RefIdent returns the light identifier form of a back-referenced instance:
// its UID value when it is Identified, its qualified type name otherwise.
func RefIdent(a Any) string {
	if isNilAny(a) {
		return NullName
	}
	if id, ok := a.(Identified); ok {
		return id.Identity().Value()
	}
	return a.QName().String()
}

func refIdent(v any) string {
	if a, ok := v.(Any); ok {
		return RefIdent(a)
	}
	return NullName
}

// isNilAny catches the interface-holding-a-nil-pointer case: model classes
// use pointer receivers, so an absent optional child often arrives as a
// typed nil rather than a nil interface
func isNilAny(a Any) bool {
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
