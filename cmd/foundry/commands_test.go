/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/openehr-go/foundation/pkg/basetypes"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	out := bytes.Buffer{}
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestKindsCmd(t *testing.T) {
	require := require.New(t)

	out := execute(t, newKindsCmd())
	require.Contains(out, "int32")
	require.Contains(out, "32 bit")
	require.Contains(out, "uri")
	require.Contains(out, "var")
}

func TestSchemasCmd(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(
		filepath.Join(dir, "foundation.TerminologyTerm.schema.json"),
		[]byte(`{"type":"object"}`), 0o600))

	out := execute(t, newSchemasCmd(), dir)
	require.Contains(out, "foundation.TerminologyTerm")
}

func TestCheckCmd(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(
		filepath.Join(dir, "foundation.TerminologyTerm.schema.json"),
		[]byte(`{"type":"object"}`), 0o600))

	doc := filepath.Join(dir, "doc.json")
	require.NoError(os.WriteFile(doc,
		[]byte(`{"_type":"foundation.TerminologyTerm","text":"Asthma"}`), 0o600))

	out := execute(t, newCheckCmd(), dir, doc)
	require.Contains(out, "schema-backed")

	t.Run("unbound document type is reported, not failed", func(t *testing.T) {
		other := filepath.Join(dir, "other.json")
		require.NoError(os.WriteFile(other,
			[]byte(`{"_type":"foundation.TerminologyCode","code_string":"x"}`), 0o600))
		out := execute(t, newCheckCmd(), dir, other)
		require.Contains(out, "no schema binding")
	})
}

func TestDocumentType(t *testing.T) {
	require := require.New(t)

	qn, err := documentType([]byte(`{"_type":"pkg.Entity"}`))
	require.NoError(err)
	require.Equal(basetypes.NewQName("pkg", "Entity"), qn)

	_, err = documentType([]byte(`{"no_type":true}`))
	require.ErrorIs(err, basetypes.ErrNotFoundError)

	_, err = documentType([]byte(`not json`))
	require.Error(err)
}
