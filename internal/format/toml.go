package format

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/restforge/restforge/internal/model"
)

// TOMLExporter is an [Exporter] that transforms request collections into
// TOML documents.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter] and exports the given
// collection as a complete TOML document.
func (t TOMLExporter) Export(w io.Writer, collection model.Collection) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	return encoder.Encode(collection)
}
