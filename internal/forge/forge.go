// Package forge implements the functionality of the program, the CLI in
// package cmd is simply the entrypoint to exported methods in this
// package.
package forge

import (
	"io"
	"time"

	"charm.land/log/v2"
)

// Forge represents the restforge program.
type Forge struct {
	stdout  io.Writer   // Normal program output is written here
	stderr  io.Writer   // Logs and errors are written here
	logger  *log.Logger // The logger for the application
	version string      // Version of the program
}

// New returns a new [Forge].
func New(debug bool, version string, stdout, stderr io.Writer) Forge {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Prefix:          "restforge",
		ReportTimestamp: true,
	})

	logger.SetStyles(logStyles())

	return Forge{
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		version: version,
	}
}
