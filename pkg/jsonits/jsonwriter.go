/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package jsonits

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/openehr-go/foundation/pkg/basetypes"
)

// MaxSafeInteger is the largest 64-bit integer magnitude that typical JSON
// consumers can read as a number without losing precision (2^53-1). Beyond
// it Integer64 values encode as JSON strings.
const MaxSafeInteger = int64(1)<<53 - 1

func writePrimitive(buf *bytes.Buffer, p basetypes.Primitive) {
	switch v := p.(type) {
	case basetypes.Boolean:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case basetypes.Octet:
		buf.WriteString(strconv.FormatUint(uint64(v.Uint8()), 10))
	case basetypes.Character:
		writeJSONString(buf, string(v.Rune()))
	case basetypes.Integer32:
		buf.WriteString(strconv.FormatInt(int64(v.Int32()), 10))
	case basetypes.Integer64:
		writeInt64(buf, v.Int64())
	case basetypes.Real32:
		writeFloat(buf, float64(v.Float32()), 32)
	case basetypes.Real64:
		writeFloat(buf, v.Float64(), 64)
	case basetypes.String:
		writeJSONString(buf, v.String())
	case basetypes.URI:
		writeJSONString(buf, v.String())
	default:
		writeJSONString(buf, toString(v.Native()))
	}
}

func writeInt64(buf *bytes.Buffer, v int64) {
	s := strconv.FormatInt(v, 10)
	if v > MaxSafeInteger || v < -MaxSafeInteger {
		writeJSONString(buf, s)
		return
	}
	buf.WriteString(s)
}

func writeFloat(buf *bytes.Buffer, v float64, bits int) {
	switch {
	case math.IsNaN(v):
		writeJSONString(buf, "NaN")
	case math.IsInf(v, 1):
		writeJSONString(buf, "Infinity")
	case math.IsInf(v, -1):
		writeJSONString(buf, "-Infinity")
	default:
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, bits))
	}
}

const hexDigits = "0123456789abcdef"

// writeJSONString writes s as a JSON string literal: shorthand escapes for
// the common control characters, \u00xx for the rest, everything else
// verbatim UTF-8.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[byte(r)>>4])
				buf.WriteByte(hexDigits[byte(r)&0xF])
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}

func toString(v any) string {
	return fmt.Sprint(v)
}
