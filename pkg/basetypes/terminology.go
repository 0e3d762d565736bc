/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

package basetypes

// Qualified names of the model classes shipped with this package
var (
	QNameTerminologyCode = NewQName(FoundationPackage, "TerminologyCode")
	QNameTerminologyTerm = NewQName(FoundationPackage, "TerminologyTerm")
)

// TerminologyCode is a standalone reference to a terminology concept: a
// terminology namespace identifier, an optional version, and a code string.
type TerminologyCode struct {
	terminologyID      String
	terminologyVersion *String
	codeString         String
	uri                *URI
}

// Creates a new terminology code. Version and uri are optional and may be nil.
func NewTerminologyCode(terminologyID, codeString String, terminologyVersion *String, uri *URI) *TerminologyCode {
	return &TerminologyCode{
		terminologyID:      terminologyID,
		terminologyVersion: terminologyVersion,
		codeString:         codeString,
		uri:                uri,
	}
}

func (c *TerminologyCode) QName() QName { return QNameTerminologyCode }

func (c *TerminologyCode) TerminologyID() String { return c.terminologyID }

func (c *TerminologyCode) TerminologyVersion() (String, bool) {
	if c.terminologyVersion != nil {
		return *c.terminologyVersion, true
	}
	return String{}, false
}

func (c *TerminologyCode) CodeString() String { return c.codeString }

func (c *TerminologyCode) URI() (URI, bool) {
	if c.uri != nil {
		return *c.uri, true
	}
	return URI{}, false
}

func (c *TerminologyCode) Attributes() []Attribute {
	return []Attribute{
		{Name: "terminology_id", Value: c.terminologyID},
		{Name: "terminology_version", Value: optional(c.terminologyVersion)},
		{Name: "code_string", Value: c.codeString},
		{Name: "uri", Value: optional(c.uri)},
	}
}

// TerminologyTerm is a standalone term from a terminology: the term text plus
// the concept reference it formally represents. The concept is owned.
type TerminologyTerm struct {
	text    String
	concept *TerminologyCode
}

func NewTerminologyTerm(text String, concept *TerminologyCode) *TerminologyTerm {
	return &TerminologyTerm{text: text, concept: concept}
}

func (t *TerminologyTerm) QName() QName { return QNameTerminologyTerm }

func (t *TerminologyTerm) Text() String { return t.text }

func (t *TerminologyTerm) Concept() *TerminologyCode { return t.concept }

func (t *TerminologyTerm) Attributes() []Attribute {
	return []Attribute{
		{Name: "text", Value: t.text},
		{Name: "concept", Value: anyOrNil(t.concept)},
	}
}

// optional lifts a possibly-nil primitive pointer into an attribute value
// without producing a typed nil inside the any.
func optional[T Primitive](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func anyOrNil[T any, PT interface {
	*T
	Any
}](p PT) any {
	if p == nil {
		return nil
	}
	return p
}
