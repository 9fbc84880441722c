package model

// BodyType discriminates the body variants of a request.
type BodyType string

// The supported body variants.
const (
	BodyNone     BodyType = "none"
	BodyJSON     BodyType = "json"
	BodyForm     BodyType = "form"
	BodyFormData BodyType = "formdata"
	BodyRaw      BodyType = "raw"
	BodyBinary   BodyType = "binary"
	BodyGraphQL  BodyType = "graphql"
	BodyNDJSON   BodyType = "ndjson"
	BodyXML      BodyType = "xml"
)

// Body is the request body.
//
// Type gates which field is authoritative: Content for the textual kinds,
// FormData for the form kinds, BinaryPath for binary. The zero value means
// no body.
type Body struct {
	Type BodyType `json:"type,omitempty" toml:"type,omitempty" yaml:"type,omitempty"`

	// Content holds the body text for all textual kinds (json, raw,
	// graphql, ndjson, xml) and the unsplit raw content for form kinds
	// when discrete fields could not be recovered.
	Content string `json:"content,omitempty" toml:"content,omitempty" yaml:"content,omitempty"`

	// FormData holds the discrete fields for the form and formdata kinds.
	FormData []KeyValue `json:"formData,omitempty" toml:"formData,omitempty" yaml:"formData,omitempty"`

	// BinaryPath is a file reference for the binary kind, relative to the
	// .http file.
	BinaryPath string `json:"binaryPath,omitempty" toml:"binaryPath,omitempty" yaml:"binaryPath,omitempty"`
}
