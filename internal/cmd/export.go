package cmd

import (
	"context"

	"github.com/restforge/restforge/internal/forge"
	"go.followtheprocess.codes/cli"
)

// export returns the export subcommand.
func export(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options forge.ExportOptions

		return cli.New(
			"export",
			cli.Short("Render a saved collection as .http text or curl snippets"),
			cli.RequiredArg("collection", "Path to the saved JSON collection"),
			cli.Flag(
				&options.Format,
				"format",
				'f',
				"http",
				"Export format, one of (http|curl|json|yaml|toml)",
			),
			cli.Flag(
				&options.Requests,
				"request",
				'r',
				nil,
				"Name of a request to export, may be repeated (default all)",
			),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				options.Collection = cmd.Arg("collection")
				app := forge.New(options.Debug, version, cmd.Stdout(), cmd.Stderr())

				return app.Export(ctx, options)
			}),
		)
	}
}
