/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// UIDKind is the concrete form of a unique identifier.
type UIDKind uint8

const (
	UIDKind_null UIDKind = iota

	UIDKind_UUID
	UIDKind_ISOOID
	UIDKind_InternetID

	UIDKind_Count
)

func (k UIDKind) String() string {
	switch k {
	case UIDKind_UUID:
		return "UUID"
	case UIDKind_ISOOID:
		return "ISOOID"
	case UIDKind_InternetID:
		return "InternetID"
	}
	return "UIDKind_null"
}

// UID is a durable unique identifier of an information entity: a UUID, an
// ISO/IEC 8824 object identifier or a reverse internet domain. UIDs identify
// one entity only and are never re-used.
type UID struct {
	kind  UIDKind
	value string
}

var (
	isoOIDRegexp     = regexp.MustCompile(`^([0-2])((\.0)|(\.[1-9][0-9]*))*$`)
	internetIDRegexp = regexp.MustCompile(`^(?:(?:[a-zA-Z](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)\.){1,}(?:[a-zA-Z](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)$`)
)

// NullUID is the empty identifier
var NullUID = UID{}

// NewUUID returns a freshly generated random (version 4) UUID identifier.
func NewUUID() UID {
	return UID{kind: UIDKind_UUID, value: uuid.NewString()}
}

// ParseUID recognizes the identifier form of the input without prior
// knowledge of which one is being passed: UUID first, then ISO OID, then
// reverse internet domain. Input fitting none of them fails with
// ErrInvalidError.
func ParseUID(val string) (UID, error) {
	if u, err := uuid.Parse(val); err == nil && len(val) == 36 {
		return UID{kind: UIDKind_UUID, value: strings.ToLower(u.String())}, nil
	}
	if isoOIDRegexp.MatchString(val) {
		return UID{kind: UIDKind_ISOOID, value: val}, nil
	}
	if internetIDRegexp.MatchString(val) {
		return UID{kind: UIDKind_InternetID, value: val}, nil
	}
	return NullUID, ErrInvalid("«%s» is neither UUID, ISO OID nor internet ID", val)
}

// Parses an identifier.
//
// # Panics:
//   - if input fits no known identifier form
func MustParseUID(val string) UID {
	u, err := ParseUID(val)
	if err != nil {
		panic(err)
	}
	return u
}

func (u UID) Kind() UIDKind { return u.kind }

func (u UID) Value() string { return u.value }

func (u UID) String() string { return u.value }

func (u UID) IsNull() bool { return u == NullUID }
