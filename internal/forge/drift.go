package forge

import (
	"context"
	"fmt"
	"os"

	"github.com/restforge/restforge/internal/convert"
	"github.com/restforge/restforge/internal/format"
	"github.com/restforge/restforge/internal/httpfile"
	"go.followtheprocess.codes/msg"
)

// DriftOptions are the options passed to the drift subcommand.
type DriftOptions struct {
	// Collection is the path to a saved JSON collection, as produced by
	// the convert subcommand.
	Collection string

	// File is the live .http file to compare the collection against.
	File string

	// Debug enables debug logging.
	Debug bool
}

// Drift implements the drift subcommand, comparing the source hashes
// recorded in a saved collection against the current contents of the
// .http file they were extracted from.
func (f Forge) Drift(ctx context.Context, options DriftOptions) error {
	logger := f.logger.WithPrefix("drift").With("collection", options.Collection, "file", options.File)

	file, err := os.Open(options.Collection)
	if err != nil {
		return fmt.Errorf("could not open collection: %w", err)
	}
	defer file.Close()

	collection, err := format.JSONImporter{}.Import(file)
	if err != nil {
		return err
	}

	contents, err := os.ReadFile(options.File)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	regions := httpfile.Parse(options.File, string(contents))

	logger.Debug("Parsed live file", "regions", len(regions))

	// Only request-bearing regions take part in matching, collection
	// requests were extracted from these in order.
	var live []*httpfile.Region

	for i := range regions {
		if regions[i].Request != nil {
			live = append(live, &regions[i])
		}
	}

	// Symbol names are only usable as keys when they are unique. Bare
	// '###' separators leave every region unnamed, and nothing stops a
	// file carrying the same title twice.
	names := make(map[string]int)

	for _, region := range live {
		if region.Symbol.Name != "" {
			names[region.Symbol.Name]++
		}
	}

	byName := make(map[string]*httpfile.Region, len(names))

	for _, region := range live {
		if name := region.Symbol.Name; name != "" && names[name] == 1 {
			byName[name] = region
		}
	}

	drifted := 0
	position := 0

	for _, request := range collection.Requests {
		if request.Source == nil {
			logger.Debug("Request has no source info, skipping", "request", request.Name)
			continue
		}

		// Prefer a unique symbol name, fall back to position so
		// anonymous and duplicate-named regions still pair up with the
		// request extracted from them.
		region, ok := byName[request.Source.Symbol]
		if !ok && position < len(live) {
			region, ok = live[position], true
		}

		position++

		if !ok {
			drifted++
			msg.Ferror(
				f.stdout,
				"%s has drifted: region %q is gone from %s",
				request.Name,
				request.Source.Symbol,
				options.File,
			)

			continue
		}

		hash := convert.RegionSourceHash(region)
		if hash == request.Source.Hash {
			msg.Fsuccess(f.stdout, "%s is unchanged", request.Name)
			continue
		}

		drifted++
		msg.Ferror(f.stdout, "%s has drifted: source has changed since it was saved", request.Name)
	}

	if drifted > 0 {
		return fmt.Errorf("%d request(s) have drifted in %s", drifted, options.File)
	}

	return nil
}
