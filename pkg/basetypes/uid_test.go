/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUID(t *testing.T) {
	tests := []struct {
		name string
		val  string
		kind UIDKind
	}{
		{"UUID", "123e4567-e89b-12d3-a456-426614174000", UIDKind_UUID},
		{"upper case UUID", "123E4567-E89B-12D3-A456-426614174000", UIDKind_UUID},
		{"ISO OID", "1.2.840.113619", UIDKind_ISOOID},
		{"single arc OID", "2", UIDKind_ISOOID},
		{"internet ID", "org.openehr.ehr", UIDKind_InternetID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			u, err := ParseUID(tt.val)
			require.NoError(err)
			require.Equal(tt.kind, u.Kind())
			require.False(u.IsNull())
		})
	}

	t.Run("UUID value is normalized to lower case", func(t *testing.T) {
		require := require.New(t)
		u, err := ParseUID("123E4567-E89B-12D3-A456-426614174000")
		require.NoError(err)
		require.Equal("123e4567-e89b-12d3-a456-426614174000", u.Value())
	})

	t.Run("unrecognized forms must fail", func(t *testing.T) {
		require := require.New(t)
		for _, s := range []string{"", "not an id at all", "3.2.1", "-leading.dash"} {
			_, err := ParseUID(s)
			require.ErrorIs(err, ErrInvalidError, s)
		}
	})

	t.Run("MustParseUID must panic on garbage", func(t *testing.T) {
		require.Panics(t, func() { MustParseUID("###") })
	})
}

func TestNewUUID(t *testing.T) {
	require := require.New(t)

	a := NewUUID()
	b := NewUUID()
	require.Equal(UIDKind_UUID, a.Kind())
	require.NotEqual(a.Value(), b.Value())

	// generated identifiers must survive their own parser
	back, err := ParseUID(a.Value())
	require.NoError(err)
	require.Equal(a, back)
}

func TestUIDKind_String(t *testing.T) {
	require := require.New(t)

	require.Equal("UUID", UIDKind_UUID.String())
	require.Equal("ISOOID", UIDKind_ISOOID.String())
	require.Equal("InternetID", UIDKind_InternetID.String())
	require.Equal("UIDKind_null", UIDKind_null.String())
}
