package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/snipdoc"
	"github.com/fwojciec/snipdoc/fs"
	"github.com/fwojciec/snipdoc/goquery"
	"github.com/fwojciec/snipdoc/nethtml"
	snipslog "github.com/fwojciec/snipdoc/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for commands that read stdin. Set before calling Run().
	Stdin io.Reader

	// Resolved project settings, available after Run() parses flags.
	Config *Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("snipdoc"),
		kong.Description("Render code snippets and versions into documentation pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'snipdoc --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Resolve settings: flags over config file over defaults
	cfg, err := findConfig(cli.Config, cli.Root)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", snipdoc.ErrorMessage(err))
		return err
	}
	if cli.Root != "" {
		cfg.Root = cli.Root
	}
	if cli.VersionsFile != "" {
		cfg.Versions = cli.VersionsFile
	}
	m.Config = cfg

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	logger.Info("config", "settings", cfg.String())

	// Wire core services into dependencies
	deps.Config = cfg
	deps.Logger = logger
	deps.Snippets = snipslog.NewLoggingSnippetFinder(fs.NewSnippetStore(cfg.Root), logger)
	deps.Stripper = nethtml.NewStripper()
	deps.Anchors = goquery.NewAnchorChecker()
	deps.NewStore = newFileStore

	// Only some commands need the version table; a missing table must not
	// break the others.
	switch commandName(kongCtx) {
	case "expand", "versions":
		loader := snipslog.NewLoggingVersionLoader(fs.NewVersionLoader(), logger)
		versions, err := loader.LoadVersions(cfg.VersionsPath())
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", snipdoc.ErrorMessage(err))
			return err
		}
		deps.Versions = versions
	}

	return kongCtx.Run(deps)
}

// commandName returns the selected top-level command, e.g. "render".
func commandName(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
