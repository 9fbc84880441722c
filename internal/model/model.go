// Package model provides the structured request and collection types, the
// canonical in-memory representation of an HTTP request as held by a visual
// request builder.
//
// Unlike the textual .http representation, the types here are fully
// structured: auth and body are explicit variants selected by a
// discriminator, and query parameters, headers and meta directives are
// ordered key/value lists that remember entries the user has disabled.
package model

import "net/http"

// Method is an HTTP request method.
type Method string

// The supported HTTP methods.
const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodPatch   Method = http.MethodPatch
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
	MethodConnect Method = http.MethodConnect
	MethodTrace   Method = http.MethodTrace
)

// Methods returns all supported HTTP methods.
func Methods() []Method {
	return []Method{
		MethodGet,
		MethodPost,
		MethodPut,
		MethodDelete,
		MethodPatch,
		MethodHead,
		MethodOptions,
		MethodConnect,
		MethodTrace,
	}
}

// IsValid reports whether m is one of the supported HTTP methods.
func (m Method) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch,
		MethodHead, MethodOptions, MethodConnect, MethodTrace:
		return true
	default:
		return false
	}
}

// KeyValue is a single ordered entry in a params, headers or meta list.
//
// Disabled entries are retained in the model so the user can toggle them
// back on, but are omitted whenever the request is rendered to text.
type KeyValue struct {
	// Key is the entry name. Enabled entries must have a non-empty key.
	Key string `json:"key" toml:"key" yaml:"key"`

	// Value is the entry value, may be empty.
	Value string `json:"value" toml:"value" yaml:"value"`

	// Enabled reports whether the entry takes part in serialisation.
	Enabled bool `json:"enabled" toml:"enabled" yaml:"enabled"`
}
