package cmd

import (
	"context"

	"github.com/restforge/restforge/internal/forge"
	"go.followtheprocess.codes/cli"
)

const driftLong = `
Drift compares the source hashes recorded in a saved collection against
the current contents of the .http file the collection was converted
from.

A request has drifted when the region it came from has been edited or
removed since the collection was saved.
`

// drift returns the drift subcommand.
func drift(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options forge.DriftOptions

		return cli.New(
			"drift",
			cli.Short("Detect edits to a collection's source .http file"),
			cli.Long(driftLong),
			cli.RequiredArg("collection", "Path to the saved JSON collection"),
			cli.RequiredArg("file", "Path to the live .http file"),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				options.Collection = cmd.Arg("collection")
				options.File = cmd.Arg("file")
				app := forge.New(options.Debug, version, cmd.Stdout(), cmd.Stderr())

				return app.Drift(ctx, options)
			}),
		)
	}
}
