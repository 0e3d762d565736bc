/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package jsonits

import (
	"bytes"
	"encoding/json"
)

// JSONUnmarshal decodes serialized forms with json.Number instead of float64,
// so large 64-bit integers survive a round trip through the constructors.
func JSONUnmarshal(b []byte, ptrToPayload interface{}) error {
	reader := bytes.NewReader(b)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	return decoder.Decode(ptrToPayload)
}
