package cmd

import (
	"context"

	"github.com/restforge/restforge/internal/forge"
	"go.followtheprocess.codes/cli"
)

const listLong = `
The path argument may be a directory or a file.

If it is the name of a .http file, the requests in this file alone are
listed.

If it is a directory, this directory is scanned recursively for all
files with the '.http' extension and the requests in each matching file
are listed.

Listing is best effort, sections that cannot be understood are skipped.
`

// list returns the list subcommand.
func list(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options forge.ListOptions

		return cli.New(
			"list",
			cli.Short("List the requests in .http files"),
			cli.Long(listLong),
			cli.OptionalArg("path", "Path to list, may be directory or file", "."),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				options.Path = cmd.Arg("path")
				app := forge.New(options.Debug, version, cmd.Stdout(), cmd.Stderr())

				return app.List(ctx, options)
			}),
		)
	}
}
