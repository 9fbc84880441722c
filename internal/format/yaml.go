package format

import (
	"io"

	"github.com/restforge/restforge/internal/model"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that transforms request collections into
// YAML documents.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter] and exports the given
// collection as a complete YAML document.
func (y YAMLExporter) Export(w io.Writer, collection model.Collection) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	return encoder.Encode(collection)
}
