package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Version string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Build   BuildCmd   `cmd:"" help:"Generate the HTML portal and Markdown reference"`
	Check   CheckCmd   `cmd:"" help:"Check links in generated documentation"`
	Version VersionCmd `cmd:"" help:"Print the unitdoc version"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Input    string `arg:"" help:"Directory containing unit XML files"`
	Output   string `arg:"" help:"Output directory for the HTML portal"`
	Config   string `short:"c" env:"UNITDOC_CONFIG" default:"unitdoc.yaml" help:"Configuration file"`
	Title    string `help:"Override the configured site title"`
	Markdown bool   `help:"Also export each unit page as Markdown"`
	Progress bool   `help:"Show a progress bar while parsing"`
	Check    bool   `help:"Check links after building"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Output string `arg:"" help:"Output directory of a previous build"`
	Config string `short:"c" env:"UNITDOC_CONFIG" default:"unitdoc.yaml" help:"Configuration file"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}
