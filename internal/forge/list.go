package forge

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/restforge/restforge/internal/convert"
	"github.com/restforge/restforge/internal/model"
	"go.followtheprocess.codes/hue"
	"golang.org/x/sync/errgroup"
)

// Styles.
const (
	// fileStyle is the style used for printing file names in the tree.
	fileStyle = hue.Bold

	// methodStyle is the style used for printing HTTP methods.
	methodStyle = hue.Cyan

	// dimmed is the style used for informational content like request
	// names.
	dimmed = hue.BrightBlack | hue.Italic
)

// ListOptions are the options passed to the list subcommand.
type ListOptions struct {
	// Path is the path (file or directory) to list.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// List implements the list subcommand, showing a best-effort tree of the
// requests in each .http file under the path.
//
// Listing uses the simplified bulk splitter, not the authoritative region
// parse, so sections it cannot make sense of are simply not shown.
func (f Forge) List(ctx context.Context, options ListOptions) error {
	logger := f.logger.WithPrefix("list").With("path", options.Path)
	logger.Debug("Listing requests")

	paths, err := collectHTTPFiles(options.Path)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		return fmt.Errorf("no .http files found in %s", options.Path)
	}

	logger.Debug("Found http files", "count", len(paths))

	collections := make([]model.Collection, len(paths))

	group := errgroup.Group{}

	for i, path := range paths {
		group.Go(func() error {
			contents, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("could not read %s: %w", path, err)
			}

			collections[i] = model.Collection{
				Name:     path,
				Requests: convert.ParseFile(string(contents)),
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, collection := range collections {
		fmt.Fprintln(f.stdout, fileStyle.Text(collection.Name))

		if len(collection.Requests) == 0 {
			fmt.Fprintf(f.stdout, "  %s\n", dimmed.Text("no requests"))
			continue
		}

		for _, request := range collection.Requests {
			fmt.Fprintf(
				f.stdout,
				"  %s %s %s\n",
				methodStyle.Text(string(request.Method)),
				request.URL,
				dimmed.Text(request.Name),
			)
		}
	}

	return nil
}

// collectHTTPFiles returns path itself if it is a file, otherwise all
// files with the .http extension under it, recursively.
func collectHTTPFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string

	err = filepath.WalkDir(path, func(entry string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if filepath.Ext(entry) == ".http" {
			paths = append(paths, entry)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", path, err)
	}

	return paths, nil
}
