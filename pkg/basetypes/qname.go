/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

const (
	// Empty name
	NullName = ""

	// Package name of the model classes shipped with this module
	FoundationPackage = "foundation"

	// Used as delimiter in qualified names
	QNameQualifierChar = "."

	// Maximum identifier length
	MaxIdentLen = 255
)

// QName is the qualified name of a model class: a package name and an entity
// name joined by a dot. It is the concrete-type identity the serialization
// capability resolves schema bindings by.
type QName struct {
	pkg    string
	entity string
}

// Null (empty) QName
var NullQName = QName{}

// Builds a qualified name from a package name and an entity name
func NewQName(pkgName, entityName string) QName {
	return QName{pkg: pkgName, entity: entityName}
}

// Parse a qualified name from string
func ParseQName(val string) (res QName, err error) {
	s := strings.Split(val, QNameQualifierChar)
	if len(s) != 2 {
		return NullQName, ErrConvert("string «%s» to qualified name", val)
	}
	return NewQName(s[0], s[1]), nil
}

// Parse a qualified name from string.
//
// # Panics:
//   - if string is not a valid qualified name
func MustParseQName(val string) QName {
	q, err := ParseQName(val)
	if err != nil {
		panic(err)
	}
	return q
}

// Compare two qualified names
func CompareQName(a, b QName) int {
	if a.pkg != b.pkg {
		return strings.Compare(a.pkg, b.pkg)
	}
	return strings.Compare(a.entity, b.entity)
}

// Returns has qName valid package and entity identifiers and error if not
func ValidQName(qName QName) (bool, error) {
	if qName == NullQName {
		return true, nil
	}
	if ok, err := ValidIdent(qName.Pkg()); !ok {
		return false, err
	}
	if ok, err := ValidIdent(qName.Entity()); !ok {
		return false, err
	}
	return true, nil
}

// Returns is ident valid identifier and error if not
func ValidIdent(ident string) (bool, error) {
	if len(ident) == 0 {
		return false, ErrInvalid("empty identifier")
	}
	if rr := []rune(ident); len(rr) > MaxIdentLen {
		return false, ErrOutOfRange("identifier «%s…» too long (%d runes, %d is maximum)", string(rr[:16]), len(rr), MaxIdentLen)
	}
	for p, c := range ident {
		if !unicode.IsLetter(c) && (c != '_') {
			if (p == 0) || !unicode.IsDigit(c) {
				return false, ErrInvalid("identifier «%s» contains invalid char «%c» at position %d", ident, c, p)
			}
		}
	}
	return true, nil
}

// Returns package name
func (qn QName) Pkg() string { return qn.pkg }

// Returns entity name
func (qn QName) Entity() string { return qn.entity }

// Returns QName as string
func (qn QName) String() string { return qn.pkg + QNameQualifierChar + qn.entity }

// JSON marshaling support
func (qn QName) MarshalJSON() ([]byte, error) {
	return json.Marshal(qn.String())
}

// need to marshal map[QName]any
func (qn QName) MarshalText() (text []byte, err error) {
	var js []byte
	if js, err = json.Marshal(qn.String()); err == nil {
		var res string
		if res, err = strconv.Unquote(string(js)); err == nil {
			text = []byte(res)
		}
	}
	return text, err
}

// JSON unmarshaling support
func (qn *QName) UnmarshalJSON(text []byte) (err error) {
	*qn = QName{}

	str, err := strconv.Unquote(string(text))
	if err != nil {
		return err
	}
	*qn, err = ParseQName(str)
	return err
}

// need to unmarshal map[QName]any
// see https://github.com/golang/go/issues/29732
func (qn *QName) UnmarshalText(text []byte) (err error) {
	return nil
}
