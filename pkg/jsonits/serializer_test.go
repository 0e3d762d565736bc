/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package jsonits

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openehr-go/foundation/pkg/basetypes"
	"github.com/openehr-go/foundation/pkg/goutils/logger"
	"github.com/openehr-go/foundation/pkg/schemas"
)

var (
	qnProblemList  = basetypes.NewQName("test", "ProblemList")
	qnProblemEntry = basetypes.NewQName("test", "ProblemEntry")
)

// problemList is a minimal container model class for serializer tests. It is
// Identified, so back-references to it serialize as its UID.
type problemList struct {
	id      basetypes.UID
	entries []basetypes.Any
}

func (l *problemList) QName() basetypes.QName  { return qnProblemList }
func (l *problemList) Identity() basetypes.UID { return l.id }
func (l *problemList) Attributes() []basetypes.Attribute {
	return []basetypes.Attribute{
		{Name: "uid", Value: l.id},
		{Name: "entries", Value: l.entries},
	}
}

// problemEntry owns a terminology term and refers back to its parent list.
type problemEntry struct {
	parent *problemList
	term   *basetypes.TerminologyTerm
	count  basetypes.Integer64
	score  basetypes.Real64
}

func (e *problemEntry) QName() basetypes.QName { return qnProblemEntry }
func (e *problemEntry) Attributes() []basetypes.Attribute {
	return []basetypes.Attribute{
		{Name: "term", Value: e.term},
		{Name: "count", Value: e.count},
		{Name: "score", Value: e.score},
		{Name: "parent", Value: e.parent, BackRef: true},
	}
}

func asthmaTerm() *basetypes.TerminologyTerm {
	return basetypes.NewTerminologyTerm(
		basetypes.MustString("Asthma"),
		basetypes.NewTerminologyCode(
			basetypes.MustString("snomed_ct"), basetypes.MustString("195967001"), nil, nil),
	)
}

func collectWarnings(ww *[]SchemaWarning) Option {
	return WithAdvisory(func(w SchemaWarning) { *ww = append(*ww, w) })
}

func TestSerialize_Shape(t *testing.T) {
	require := require.New(t)

	s := New(nil, WithAdvisory(func(SchemaWarning) {}))
	got := s.Serialize(asthmaTerm())

	want := `{"_type":"foundation.TerminologyTerm",` +
		`"text":"Asthma",` +
		`"concept":{"_type":"foundation.TerminologyCode",` +
		`"terminology_id":"snomed_ct",` +
		`"terminology_version":null,` +
		`"code_string":"195967001",` +
		`"uri":null}}`
	require.Equal(want, string(got))

	t.Run("output is valid JSON", func(t *testing.T) {
		require.True(json.Valid(got))
	})

	t.Run("idempotence: repeated calls are byte-identical", func(t *testing.T) {
		require.Equal(string(got), string(s.Serialize(asthmaTerm())))
	})

	t.Run("nil instance serializes as null", func(t *testing.T) {
		require.Equal("null", string(s.Serialize(nil)))
	})
}

func TestSerialize_SchemaAdvisory(t *testing.T) {
	require := require.New(t)

	reg := schemas.NewRegistry()
	reg.MustRegister(schemas.Binding{
		Type:   basetypes.QNameTerminologyCode,
		Schema: json.RawMessage(`{"type":"object"}`),
	})

	t.Run("unbound concrete type signals exactly once per call", func(t *testing.T) {
		ww := []SchemaWarning{}
		s := New(reg, collectWarnings(&ww))

		out := s.Serialize(asthmaTerm())
		require.True(json.Valid(out), "advisory must not break serialization")
		require.Len(ww, 1)
		require.Equal(basetypes.QNameTerminologyTerm, ww[0].Type)
		require.Equal(ReasonNoSchemaBinding, ww[0].Reason)

		t.Run("emit-every-time across calls", func(t *testing.T) {
			_ = s.Serialize(asthmaTerm())
			require.Len(ww, 2)
		})
	})

	t.Run("bound type does not signal", func(t *testing.T) {
		reg := schemas.NewRegistry()
		reg.MustRegister(schemas.Binding{
			Type:   basetypes.QNameTerminologyCode,
			Schema: json.RawMessage(`{"type":"object"}`),
		})
		reg.MustRegister(schemas.Binding{
			Type:   basetypes.QNameTerminologyTerm,
			Schema: json.RawMessage(`{"type":"object"}`),
		})

		ww := []SchemaWarning{}
		s := New(reg, collectWarnings(&ww))
		_ = s.Serialize(asthmaTerm())
		require.Empty(ww)
	})

	t.Run("default advisory channel is a logger warning line", func(t *testing.T) {
		lines := []string{}
		prev := logger.PrintLine
		logger.PrintLine = func(level logger.TLogLevel, line string) {
			if level == logger.LogLevelWarning {
				lines = append(lines, line)
			}
		}
		defer func() { logger.PrintLine = prev }()

		s := New(reg)
		_ = s.Serialize(asthmaTerm())
		require.Len(lines, 1)
		require.Contains(lines[0], "foundation.TerminologyTerm")
		require.Contains(lines[0], ReasonNoSchemaBinding)
	})
}

func TestSerialize_Int64Policy(t *testing.T) {
	require := require.New(t)

	s := New(nil, WithAdvisory(func(SchemaWarning) {}))

	entry := &problemEntry{
		term:  asthmaTerm(),
		count: basetypes.NewInteger64(math.MaxInt64),
		score: basetypes.NewReal64(0.5),
	}
	out := string(s.Serialize(entry))
	require.Contains(out, `"count":"9223372036854775807"`)

	entry.count = basetypes.NewInteger64(42)
	out = string(s.Serialize(entry))
	require.Contains(out, `"count":42`)

	t.Run("boundary values stay numeric", func(t *testing.T) {
		entry.count = basetypes.NewInteger64(MaxSafeInteger)
		require.Contains(string(s.Serialize(entry)), `"count":9007199254740991`)

		entry.count = basetypes.NewInteger64(-MaxSafeInteger - 1)
		require.Contains(string(s.Serialize(entry)), `"count":"-9007199254740992"`)
	})
}

func TestSerialize_NonFiniteFloats(t *testing.T) {
	require := require.New(t)

	s := New(nil, WithAdvisory(func(SchemaWarning) {}))
	entry := &problemEntry{term: asthmaTerm(), count: basetypes.NewInteger64(1)}

	entry.score = basetypes.NewReal64(math.NaN())
	require.Contains(string(s.Serialize(entry)), `"score":"NaN"`)

	entry.score = basetypes.NewReal64(math.Inf(1))
	require.Contains(string(s.Serialize(entry)), `"score":"Infinity"`)

	entry.score = basetypes.NewReal64(math.Inf(-1))
	require.Contains(string(s.Serialize(entry)), `"score":"-Infinity"`)
}

func TestSerialize_BackRefs(t *testing.T) {
	require := require.New(t)

	s := New(nil, WithAdvisory(func(SchemaWarning) {}))

	list := &problemList{id: basetypes.MustParseUID("123e4567-e89b-12d3-a456-426614174000")}
	entry := &problemEntry{
		parent: list,
		term:   asthmaTerm(),
		count:  basetypes.NewInteger64(1),
		score:  basetypes.NewReal64(1),
	}
	list.entries = []basetypes.Any{entry}

	out := string(s.Serialize(list))
	require.True(json.Valid([]byte(out)))

	t.Run("back-reference is a light identifier, not a nested object", func(t *testing.T) {
		require.Contains(out, `"parent":"123e4567-e89b-12d3-a456-426614174000"`)
		require.Equal(1, strings.Count(out, `"entries"`), "cycle must not recurse")
	})

	t.Run("absent back-reference serializes as null", func(t *testing.T) {
		lone := &problemEntry{term: asthmaTerm(), count: basetypes.NewInteger64(1), score: basetypes.NewReal64(1)}
		require.Contains(string(s.Serialize(lone)), `"parent":null`)
	})
}

func TestSerialize_RoundTrip(t *testing.T) {
	require := require.New(t)

	s := New(nil, WithAdvisory(func(SchemaWarning) {}))

	ver := basetypes.MustString("2024-01")
	uri := basetypes.MustURI("https://snomed.info/id/195967001")
	original := basetypes.NewTerminologyTerm(
		basetypes.MustString("Asthma"),
		basetypes.NewTerminologyCode(
			basetypes.MustString("snomed_ct"), basetypes.MustString("195967001"), &ver, &uri),
	)

	doc := map[string]any{}
	require.NoError(JSONUnmarshal(s.Serialize(original), &doc))
	require.Equal("foundation.TerminologyTerm", doc[TypeAttr])

	rebuilt := termFromDoc(t, doc)
	require.True(basetypes.Equal(original, rebuilt))

	t.Run("URI survives the round trip verbatim", func(t *testing.T) {
		concept := doc["concept"].(map[string]any)
		require.Equal("https://snomed.info/id/195967001", concept["uri"])
	})
}

// termFromDoc reconstructs a TerminologyTerm from its serialized form through
// the public constructors, the way an information-model consumer would.
func termFromDoc(t *testing.T, doc map[string]any) *basetypes.TerminologyTerm {
	t.Helper()
	require := require.New(t)

	concept := doc["concept"].(map[string]any)

	id, err := basetypes.NewString(concept["terminology_id"].(string))
	require.NoError(err)
	code, err := basetypes.NewString(concept["code_string"].(string))
	require.NoError(err)

	var verPtr *basetypes.String
	if v, ok := concept["terminology_version"].(string); ok {
		ver, err := basetypes.NewString(v)
		require.NoError(err)
		verPtr = &ver
	}
	var uriPtr *basetypes.URI
	if v, ok := concept["uri"].(string); ok {
		u, err := basetypes.NewURI(v)
		require.NoError(err)
		uriPtr = &u
	}

	text, err := basetypes.NewString(doc["text"].(string))
	require.NoError(err)
	return basetypes.NewTerminologyTerm(text, basetypes.NewTerminologyCode(id, code, verPtr, uriPtr))
}
