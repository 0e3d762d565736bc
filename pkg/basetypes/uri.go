/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

import "net/url"

// URI is the primitive binding for a string constrained to the RFC 3986
// syntax. Only absolute URIs are accepted: the wire form must split into
// scheme, authority and path components.
type URI struct {
	value     string
	scheme    string
	authority string
	path      string
}

// Creates a new URI value. Input that cannot be parsed as an absolute URI
// fails with ErrMalformedURIError.
func NewURI(v string) (URI, error) {
	u, err := url.Parse(v)
	if err != nil {
		return URI{}, ErrMalformedURI("«%s»: %s", v, err.Error())
	}
	if !u.IsAbs() {
		return URI{}, ErrMalformedURI("«%s» has no scheme", v)
	}
	return URI{
		value:     u.String(),
		scheme:    u.Scheme,
		authority: u.Host,
		path:      u.Path,
	}, nil
}

// Creates a new URI value.
//
// # Panics:
//   - if input is not an absolute RFC 3986 URI
func MustURI(v string) URI {
	u, err := NewURI(v)
	if err != nil {
		panic(err)
	}
	return u
}

func (u URI) Kind() PrimitiveKind { return PrimitiveKind_uri }

// Returns the canonical string form of the URI
func (u URI) String() string { return u.value }

func (u URI) Scheme() string { return u.scheme }

func (u URI) Authority() string { return u.authority }

func (u URI) Path() string { return u.path }

func (u URI) Native() any { return u.value }

func (u URI) Equal(other Primitive) bool {
	o, ok := other.(URI)
	return ok && u.value == o.value
}
