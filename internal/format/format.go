// Package format provides mechanisms for format conversions into and from
// request collections.
//
// The [Exporter] and [Importer] interfaces do this in a format-agnostic
// way, with built in JSON, YAML, TOML and curl implementations.
package format

import (
	"io"

	"github.com/restforge/restforge/internal/model"
)

// Exporter is the interface defining a mechanism for exporting a request
// collection into an external format.
type Exporter interface {
	// Export exports the [model.Collection] into an external format,
	// written to w.
	Export(w io.Writer, collection model.Collection) error
}

// Importer is the interface defining a mechanism for importing external
// formats into request collections.
type Importer interface {
	// Import imports the data from the external format into a
	// [model.Collection].
	Import(r io.Reader) (model.Collection, error)
}
