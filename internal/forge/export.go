package forge

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/restforge/restforge/internal/convert"
	"github.com/restforge/restforge/internal/format"
	"github.com/restforge/restforge/internal/model"
)

// ExportOptions are the options passed to the export subcommand.
type ExportOptions struct {
	// Collection is the path to a saved JSON collection, as produced by
	// the convert subcommand.
	Collection string

	// Format is the format of the export, one of http, curl, json, yaml
	// or toml.
	Format string

	// Requests is the list of request names to export, empty or nil
	// means export all requests from the collection.
	Requests []string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the ExportOptions is valid, returning a
// non-nil error if it's not.
func (e ExportOptions) Validate() error {
	switch format := e.Format; format {
	case "http", "curl", "json", "yaml", "toml":
		return nil
	default:
		return fmt.Errorf(
			"invalid option for --format %q, allowed values are 'http', 'curl', 'json', 'yaml', 'toml'",
			format,
		)
	}
}

// Export implements the export subcommand, rendering a saved collection
// back out as .http text or curl snippets.
func (f Forge) Export(ctx context.Context, options ExportOptions) error {
	logger := f.logger.WithPrefix("export").With("collection", options.Collection)

	if err := options.Validate(); err != nil {
		return err
	}

	file, err := os.Open(options.Collection)
	if err != nil {
		return fmt.Errorf("could not open collection: %w", err)
	}
	defer file.Close()

	collection, err := format.JSONImporter{}.Import(file)
	if err != nil {
		return err
	}

	var toExport []model.Request

	if len(options.Requests) == 0 {
		// No filter, so export all the requests
		toExport = collection.Requests
	} else {
		for _, name := range options.Requests {
			if !collection.ContainsRequest(name) {
				logger.Warn("Collection does not contain request", "name", name)
			}
		}

		// Only export the ones asked for (if they exist)
		for _, request := range collection.Requests {
			if slices.Contains(options.Requests, request.Name) {
				toExport = append(toExport, request)
			}
		}
	}

	if len(toExport) == 0 {
		return fmt.Errorf(
			"no matching requests for names %v in %s",
			options.Requests,
			options.Collection,
		)
	}

	logger.Debug("Exporting requests", "count", len(toExport), "format", options.Format)

	filtered := model.Collection{Name: collection.Name, Requests: toExport}

	var exporter format.Exporter

	switch options.Format {
	case "curl":
		exporter = format.CurlExporter{}
	case "json":
		exporter = format.JSONExporter{}
	case "yaml":
		exporter = format.YAMLExporter{}
	case "toml":
		exporter = format.TOMLExporter{}
	default:
		for _, request := range toExport {
			fmt.Fprintln(f.stdout, "###")
			fmt.Fprint(f.stdout, convert.Serialize(withNameDirective(request)))
			fmt.Fprintln(f.stdout)
		}

		return nil
	}

	return exporter.Export(f.stdout, filtered)
}

// withNameDirective makes sure a named request keeps its name through the
// text round trip by injecting an @name meta directive when neither
// @name nor @title is already present.
func withNameDirective(request model.Request) model.Request {
	if request.Name == "" {
		return request
	}

	for _, entry := range request.Meta {
		key := strings.TrimLeft(entry.Key, "@")
		if entry.Enabled && (strings.EqualFold(key, "name") || strings.EqualFold(key, "title")) {
			return request
		}
	}

	meta := make([]model.KeyValue, 0, len(request.Meta)+1)
	meta = append(meta, model.KeyValue{Key: "@name", Value: request.Name, Enabled: true})
	meta = append(meta, request.Meta...)

	request.Meta = meta

	return request
}
