package forge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/restforge/restforge/internal/convert"
	"github.com/restforge/restforge/internal/format"
	"github.com/restforge/restforge/internal/httpfile"
	"github.com/restforge/restforge/internal/model"
)

// ConvertOptions are the options passed to the convert subcommand.
type ConvertOptions struct {
	// File is the .http file to convert.
	File string

	// Format is the output format, e.g. json.
	Format string

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the ConvertOptions is valid, returning a
// non-nil error if it's not.
func (c ConvertOptions) Validate() error {
	switch format := c.Format; format {
	case "json", "yaml", "toml":
		return nil
	default:
		return fmt.Errorf(
			"invalid option for --format %q, allowed values are 'json', 'yaml', 'toml'",
			format,
		)
	}
}

// Convert implements the convert subcommand: the authoritative path from
// .http text to the structured collection, stamping every request with
// its provenance and source hash so later saves can detect drift.
func (f Forge) Convert(ctx context.Context, options ConvertOptions) error {
	logger := f.logger.WithPrefix("convert").With("file", options.File)

	if err := options.Validate(); err != nil {
		return err
	}

	start := time.Now()

	contents, err := os.ReadFile(options.File)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	regions := httpfile.Parse(options.File, string(contents))

	logger.Debug("Parsed file into regions", "count", len(regions), "took", time.Since(start))

	collection := model.Collection{
		Name: strings.TrimSuffix(filepath.Base(options.File), filepath.Ext(options.File)),
	}

	for _, region := range regions {
		request := convert.ExtractRequest(&region)
		if request == nil {
			// A comment-only region, nothing to convert
			continue
		}

		request.Source.FilePath = options.File

		collection.Requests = append(collection.Requests, *request)
	}

	logger.Debug("Extracted requests", "count", len(collection.Requests))

	var exporter format.Exporter

	switch options.Format {
	case "yaml":
		exporter = format.YAMLExporter{}
	case "toml":
		exporter = format.TOMLExporter{}
	default:
		exporter = format.JSONExporter{}
	}

	return exporter.Export(f.stdout, collection)
}
