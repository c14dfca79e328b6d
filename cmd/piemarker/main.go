// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

// Command piemarker serves and renders pie chart map markers.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"piemarker/internal/logger"
)

const usage = `usage: piemarker <command> [flags]

commands:
  serve    run the HTTP API
  render   render an icon definition to SVG
  legend   print the markdown legend of an icon definition
  bundle   generate a Go package with pre-rendered icons
  openapi  print the API document
`

var errUsage = errors.New("invalid usage")

func main() {

	slog.SetDefault(logger.New(os.Stderr).With(slog.String("app", "piemarker")))

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			slog.Error("piemarker failed", slog.Any("error", err))
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {

	if len(args) == 0 {
		_, _ = fmt.Fprint(stderr, usage)
		return errUsage
	}

	commands := map[string]func([]string, io.Writer, io.Writer) error{
		"serve":   serveCommand,
		"render":  renderCommand,
		"legend":  legendCommand,
		"bundle":  bundleCommand,
		"openapi": openapiCommand,
	}
	command, found := commands[args[0]]
	if !found {
		_, _ = fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return errUsage
	}
	return command(args[1:], stdout, stderr)
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}
