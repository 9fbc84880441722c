package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/restforge/restforge/internal/model"
)

// JSONExporter is an [Exporter] that transforms request collections into
// JSON documents.
type JSONExporter struct{}

// Export implements [Exporter] for [JSONExporter] and exports the given
// collection as a complete JSON document.
func (j JSONExporter) Export(w io.Writer, collection model.Collection) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(collection)
}

// JSONImporter is an [Importer] that transforms JSON representations of
// request collections into the equivalent [model.Collection].
type JSONImporter struct{}

// Import implements [Importer] for [JSONImporter] and imports the given
// JSON document into a [model.Collection].
func (j JSONImporter) Import(r io.Reader) (model.Collection, error) {
	var collection model.Collection

	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&collection); err != nil {
		return model.Collection{}, fmt.Errorf("could not decode JSON: %w", err)
	}

	return collection, nil
}
