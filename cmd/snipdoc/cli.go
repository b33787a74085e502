package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/fwojciec/snipdoc"
	"github.com/fwojciec/snipdoc/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *Config

	Versions snipdoc.VersionMap
	Snippets snipdoc.SnippetFinder
	Stripper snipdoc.MarkupStripper
	Anchors  snipdoc.AnchorChecker

	// NewStore returns the store expanded pages are written to.
	NewStore func(outDir string) snipdoc.PageStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root         string `short:"r" env:"SNIPDOC_ROOT" help:"Documentation project root (default: config file or .)"`
	VersionsFile string `name:"versions-file" env:"SNIPDOC_VERSIONS" help:"Version table, relative to root (default: lib/versions.json)"`
	Config       string `short:"c" help:"Project config file (default: <root>/snipdoc.yaml if present)"`
	Verbose      bool   `short:"v" help:"Log lookups to stderr"`

	Render   RenderCmd   `cmd:"" help:"Render a snippet as a code block"`
	Versions VersionsCmd `cmd:"" help:"Print the version table or a single version"`
	Strip    StripCmd    `cmd:"" help:"Strip markup from an HTML fragment"`
	Expand   ExpandCmd   `cmd:"" help:"Expand documentation page templates"`
	Anchors  AnchorsCmd  `cmd:"" help:"Check rendered pages for duplicate anchor ids"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Name     string   `arg:"" help:"Snippet name"`
	Files    []string `arg:"" name:"file" help:"Snippet files in priority order, relative to root"`
	Indent   int      `short:"i" default:"0" help:"Spaces added to every line after the first"`
	Markdown bool     `short:"m" help:"Render a fenced markdown block with markup stripped"`
}

// VersionsCmd is the "versions" subcommand.
type VersionsCmd struct {
	Key string `arg:"" optional:"" help:"Component name"`
}

// StripCmd is the "strip" subcommand.
type StripCmd struct {
	File string `arg:"" optional:"" help:"HTML file (default: stdin)"`
}

// ExpandCmd is the "expand" subcommand.
type ExpandCmd struct {
	Templates   []string `arg:"" name:"template" help:"Page templates, relative to root"`
	Out         string   `short:"o" help:"Output directory (default: config file or ./site)"`
	Concurrency int      `help:"Pages expanded at once (default: config file or 4)"`
}

// AnchorsCmd is the "anchors" subcommand.
type AnchorsCmd struct {
	Files []string `arg:"" name:"file" help:"Rendered HTML or expanded markdown files"`
}

// newFileStore returns a file store that replaces outDir atomically.
func newFileStore(outDir string) snipdoc.PageStore {
	outDir = filepath.Clean(outDir)
	return fs.NewFileStore(filepath.Dir(outDir), filepath.Base(outDir))
}
