package openapi

import "errors"

// Source identifies where an OpenAPI payload originated. It is used for error
// messages only; callers are responsible for reading the bytes.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates origin kinds.
type SourceKind string

const (
	SourceKindFile   SourceKind = "file"
	SourceKindMemory SourceKind = "memory"
)

// Document wraps a raw OpenAPI payload and its origin, keeping kin-openapi
// types out of the public API.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("openapi: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("openapi: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
