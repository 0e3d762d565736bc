/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package jsonits

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/openehr-go/foundation/pkg/basetypes"
	"github.com/openehr-go/foundation/pkg/goutils/logger"
	"github.com/openehr-go/foundation/pkg/schemas"
)

// TypeAttr is the discriminator key, always the first key of every object
const TypeAttr = "_type"

// ReasonNoSchemaBinding is the reason carried by advisory signals for
// concrete types serialized without a validated schema
const ReasonNoSchemaBinding = "no schema binding"

// SchemaWarning is the advisory signal: informational only, never a failure.
type SchemaWarning struct {
	Type   basetypes.QName
	Reason string
}

// AdviseFunc receives advisory signals. Implementations must not block:
// serialization calls it synchronously.
type AdviseFunc func(w SchemaWarning)

// Serializer is the serialization capability anchored at the Any root.
// The zero-configuration New(nil) serializer treats every type as unbound
// and logs each advisory signal.
type Serializer struct {
	schemas *schemas.Registry
	advise  AdviseFunc
}

type Option func(s *Serializer)

// WithAdvisory replaces the default advisory channel (a logger warning line).
func WithAdvisory(f AdviseFunc) Option {
	return func(s *Serializer) { s.advise = f }
}

func New(reg *schemas.Registry, opts ...Option) *Serializer {
	s := &Serializer{
		schemas: reg,
		advise:  logAdvisory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize produces the JSON form of a model class instance. It is total:
// every instance serializes, schema-backed or not. Attributes are written in
// declaration order; owned children recurse, back-references and instances
// revisited within this traversal are written as light identifiers.
//
// The advisory policy is emit-every-time: each Serialize call signals every
// object it writes whose concrete type has no schema binding, once per
// object. Signals are not deduplicated across calls.
func (s *Serializer) Serialize(a basetypes.Any) json.RawMessage {
	buf := bytes.Buffer{}
	s.writeAny(&buf, a, map[basetypes.Any]struct{}{})
	return buf.Bytes()
}

func (s *Serializer) writeAny(buf *bytes.Buffer, a basetypes.Any, visited map[basetypes.Any]struct{}) {
	if isNil(a) {
		buf.WriteString("null")
		return
	}
	if _, seen := visited[a]; seen {
		// ownership cycle; degrade to a light identifier to terminate
		writeJSONString(buf, basetypes.RefIdent(a))
		return
	}
	visited[a] = struct{}{}
	defer delete(visited, a)

	qn := a.QName()
	if _, bound := s.lookup(qn); !bound {
		s.advise(SchemaWarning{Type: qn, Reason: ReasonNoSchemaBinding})
	}

	buf.WriteByte('{')
	writeJSONString(buf, TypeAttr)
	buf.WriteByte(':')
	writeJSONString(buf, qn.String())
	for _, attr := range a.Attributes() {
		buf.WriteByte(',')
		writeJSONString(buf, attr.Name)
		buf.WriteByte(':')
		if attr.BackRef {
			s.writeBackRef(buf, attr.Value)
			continue
		}
		s.writeValue(buf, attr.Value, visited)
	}
	buf.WriteByte('}')
}

func (s *Serializer) writeValue(buf *bytes.Buffer, v any, visited map[basetypes.Any]struct{}) {
	switch vv := v.(type) {
	case nil:
		buf.WriteString("null")
	case basetypes.Primitive:
		writePrimitive(buf, vv)
	case basetypes.UID:
		writeJSONString(buf, vv.Value())
	case basetypes.Any:
		s.writeAny(buf, vv, visited)
	case []basetypes.Any:
		buf.WriteByte('[')
		for i, e := range vv {
			if i > 0 {
				buf.WriteByte(',')
			}
			s.writeAny(buf, e, visited)
		}
		buf.WriteByte(']')
	default:
		// unknown attribute value kinds degrade to their string form to keep
		// serialization total
		writeJSONString(buf, toString(vv))
	}
}

func (s *Serializer) writeBackRef(buf *bytes.Buffer, v any) {
	a, ok := v.(basetypes.Any)
	if !ok || isNil(a) {
		buf.WriteString("null")
		return
	}
	writeJSONString(buf, basetypes.RefIdent(a))
}

// isNil treats an interface holding a nil pointer as absent. Model classes
// use pointer receivers, so absent optional children commonly arrive this way.
func isNil(a basetypes.Any) bool {
	if a == nil {
		return true
	}
	rv := reflect.ValueOf(a)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (s *Serializer) lookup(t basetypes.QName) (schemas.Binding, bool) {
	if s.schemas == nil {
		return schemas.Binding{}, false
	}
	return s.schemas.Lookup(t)
}

func logAdvisory(w SchemaWarning) {
	logger.Warning("serialized without a validated schema:", w.Type.String(), "("+w.Reason+")")
}
