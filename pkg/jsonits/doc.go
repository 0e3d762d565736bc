/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

// Package jsonits is the JSON implementation technology specification for the
// foundation model: it turns any model class instance into a JSON value.
//
// Serialization is total. It never reports "no serialization exists"; an
// instance of a concrete type with no registered schema binding still
// serializes, and a non-fatal SchemaWarning is emitted on the advisory
// channel instead. The warning is a side channel only, it never alters the
// returned JSON. Abstract types are Go interfaces here and are never
// instantiated, so they never trigger the signal.
//
// Output is deterministic: object keys follow attribute declaration order,
// with the "_type" discriminator first, and serializing the same unmutated
// instance twice yields byte-identical JSON.
//
// Documented encoding policies:
//   - 64-bit integers with magnitude beyond ±(2^53-1) encode as JSON strings,
//     keeping them exact for consumers that read JSON numbers as doubles;
//   - non-finite floats encode as the strings "NaN", "Infinity", "-Infinity";
//   - back-references encode as a light identifier string, never as the full
//     nested object, which bounds recursion on cyclic relationships.
package jsonits
