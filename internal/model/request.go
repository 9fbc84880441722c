package model

import "github.com/google/uuid"

// Request is a single HTTP request as held by the request builder.
type Request struct {
	// ID is an opaque identifier generated when the request is created.
	// It is never persisted to text.
	ID string `json:"-" toml:"-" yaml:"-"`

	// Name is the display label, mirrored to and from the @name/@title
	// meta directives.
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// Method is the HTTP method.
	Method Method `json:"method,omitempty" toml:"method,omitempty" yaml:"method,omitempty"`

	// URL may contain unresolved {{variable}} placeholders. Query
	// parameters may live embedded in the URL or in Params, the two are
	// merged at serialisation time.
	URL string `json:"url,omitempty" toml:"url,omitempty" yaml:"url,omitempty"`

	// Params are query parameters kept separately from the URL.
	Params []KeyValue `json:"params,omitempty" toml:"params,omitempty" yaml:"params,omitempty"`

	// Headers are the request headers.
	Headers []KeyValue `json:"headers,omitempty" toml:"headers,omitempty" yaml:"headers,omitempty"`

	// Meta are the request's meta directives, serialised as '# @key value'
	// comment lines.
	Meta []KeyValue `json:"meta,omitempty" toml:"meta,omitempty" yaml:"meta,omitempty"`

	// Auth is the authentication configuration.
	Auth Auth `json:"auth,omitzero" toml:"auth,omitempty" yaml:"auth,omitempty"`

	// Body is the request body.
	Body Body `json:"body,omitzero" toml:"body,omitempty" yaml:"body,omitempty"`

	// PreRequestScript is script source run before the request,
	// positioned above the request line when serialised. Empty means no
	// script.
	PreRequestScript string `json:"preRequestScript,omitempty" toml:"preRequestScript,omitempty" yaml:"preRequestScript,omitempty"`

	// TestScript is script source run against the response, positioned
	// below the body when serialised. Empty means no script.
	TestScript string `json:"testScript,omitempty" toml:"testScript,omitempty" yaml:"testScript,omitempty"`

	// Source records the file region this request was loaded from,
	// nil for requests created fresh in the builder.
	Source *Source `json:"source,omitempty" toml:"source,omitempty" yaml:"source,omitempty"`
}

// Source records where a request was loaded from and what the originating
// region looked like at load time, enabling drift detection before a save
// overwrites the region.
type Source struct {
	// FilePath is the path to the .http file.
	FilePath string `json:"filePath,omitempty" toml:"filePath,omitempty" yaml:"filePath,omitempty"`

	// Symbol is the name of the region within the file.
	Symbol string `json:"symbol,omitempty" toml:"symbol,omitempty" yaml:"symbol,omitempty"`

	// StartLine and EndLine delimit the region in the file, 1 indexed.
	StartLine int `json:"startLine,omitempty" toml:"startLine,omitempty" yaml:"startLine,omitempty"`
	EndLine   int `json:"endLine,omitempty" toml:"endLine,omitempty" yaml:"endLine,omitempty"`

	// Hash is the source hash of the region at load time. It covers only
	// the wire visible shape of the request (method, URL, headers, body),
	// never the name, meta directives or scripts.
	Hash string `json:"hash,omitempty" toml:"hash,omitempty" yaml:"hash,omitempty"`
}

// New returns a fresh [Request] with a generated ID and empty defaults.
func New(name string) Request {
	return Request{
		ID:     uuid.NewString(),
		Name:   name,
		Method: MethodGet,
		Auth:   Auth{Type: AuthNone},
		Body:   Body{Type: BodyNone},
	}
}

// Collection is a named group of requests, typically all the requests
// loaded from a single .http file.
type Collection struct {
	// Name of the collection.
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// The requests in the collection.
	Requests []Request `json:"requests,omitempty" toml:"requests,omitempty" yaml:"requests,omitempty"`
}

// ContainsRequest reports whether a request with the given name is present
// in the collection.
func (c Collection) ContainsRequest(name string) bool {
	for _, request := range c.Requests {
		if request.Name == name {
			return true
		}
	}

	return false
}
