package cmd

import (
	"context"

	"github.com/restforge/restforge/internal/forge"
	"go.followtheprocess.codes/cli"
)

// convert returns the convert subcommand.
func convert(ctx context.Context) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options forge.ConvertOptions

		return cli.New(
			"convert",
			cli.Short("Convert a .http file to a structured collection"),
			cli.RequiredArg("file", "Path to the .http file"),
			cli.Flag(
				&options.Format,
				"format",
				'f',
				"json",
				"Output format, one of (json|yaml|toml)",
			),
			cli.Flag(&options.Debug, "debug", 'd', false, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				options.File = cmd.Arg("file")
				app := forge.New(options.Debug, version, cmd.Stdout(), cmd.Stderr())

				return app.Convert(ctx, options)
			}),
		)
	}
}
