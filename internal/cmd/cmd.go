// Package cmd implements restforge's CLI.
package cmd

import (
	"context"
	"fmt"

	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the restforge CLI.
func Build(ctx context.Context) (*cli.Command, error) {
	return cli.New(
		"restforge",
		cli.Short("A command line .http file converter"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("List the requests in a file or directory", "restforge list ./examples"),
		cli.Example("Convert a .http file to a structured collection", "restforge convert ./demo.http > demo.json"),
		cli.Example("Render a saved collection back out as .http text", "restforge export demo.json"),
		cli.Example(
			"Render specific requests as curl snippets",
			"restforge export demo.json --format curl --request GetUser --request DeleteUser",
		),
		cli.Example("Check a saved collection against its source file", "restforge drift demo.json ./demo.http"),
		cli.Allow(cli.NoArgs()),
		cli.SubCommands(list(ctx), convert(ctx), export(ctx), drift(ctx)),
		cli.Run(func(cmd *cli.Command, args []string) error {
			fmt.Fprintln(cmd.Stdout(), "restforge: see 'restforge --help' for usage")
			return nil
		}),
	)
}
