// Command chalk is the CLI for the chalk syntax toolchain. It checks
// individual source files, dumps parse trees as JSON, and loads whole
// libraries.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"github.com/FocuswithJustin/chalk/core/ast"
	"github.com/FocuswithJustin/chalk/core/library"
	"github.com/FocuswithJustin/chalk/core/parser"
	"github.com/FocuswithJustin/chalk/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for chalk.
var CLI struct {
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"info" help:"Log level"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log output format"`

	Check   CheckGroup `cmd:"" help:"Check a source file for syntax errors"`
	Dump    DumpCmd    `cmd:"" help:"Parse a source file and print the tree as JSON"`
	Build   BuildCmd   `cmd:"" help:"Load a whole library from its manifest"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// CheckGroup contains one check command per source dialect.
type CheckGroup struct {
	Document CheckDocumentCmd `cmd:"" help:"Check a document page"`
	Manifest CheckManifestCmd `cmd:"" help:"Check a library manifest"`
	Bib      CheckBibCmd      `cmd:"" help:"Check a bibliography file"`
}

// readSource loads a source file, decompressing the .xz form.
func readSource(path string) (string, error) {
	data, err := library.ReadSource(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// report prints a check result and converts a syntax error into a
// command failure.
func report(path string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Printf("%s: ok\n", path)
	return nil
}

// CheckDocumentCmd checks a document page.
type CheckDocumentCmd struct {
	Path string `arg:"" help:"Page source file" type:"existingfile"`
}

func (c *CheckDocumentCmd) Run() error {
	src, err := readSource(c.Path)
	if err != nil {
		return err
	}
	_, err = parser.ParseDocument(src)
	return report(c.Path, err)
}

// CheckManifestCmd checks a library manifest.
type CheckManifestCmd struct {
	Path string `arg:"" help:"Manifest source file" type:"existingfile"`
}

func (c *CheckManifestCmd) Run() error {
	src, err := readSource(c.Path)
	if err != nil {
		return err
	}
	_, err = parser.ParseManifest(src)
	return report(c.Path, err)
}

// CheckBibCmd checks a bibliography file.
type CheckBibCmd struct {
	Path string `arg:"" help:"Bibliography source file" type:"existingfile"`
}

func (c *CheckBibCmd) Run() error {
	src, err := readSource(c.Path)
	if err != nil {
		return err
	}
	_, err = parser.ParseBibliography(src)
	return report(c.Path, err)
}

// DumpCmd parses a source file and prints the tree as JSON.
type DumpCmd struct {
	Path string `arg:"" help:"Source file" type:"existingfile"`
	Kind string `enum:"document,manifest,bib" default:"document" help:"Source dialect"`
}

func (c *DumpCmd) Run() error {
	src, err := readSource(c.Path)
	if err != nil {
		return err
	}

	var tree any
	switch c.Kind {
	case "manifest":
		tree, err = parser.ParseManifest(src)
	case "bib":
		var entries []*ast.BibEntry
		entries, err = parser.ParseBibliography(src)
		if err == nil {
			tree = &ast.Bibliography{Entries: entries}
		}
	default:
		tree, err = parser.ParseDocument(src)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", c.Path, err)
	}

	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// BuildCmd loads a whole library from its manifest.
type BuildCmd struct {
	Root    string `arg:"" help:"Library root directory" type:"existingdir"`
	Workers int    `help:"Parse worker count (default: number of CPUs)"`
}

func (c *BuildCmd) Run() error {
	runID := uuid.New().String()
	ctx := logging.WithRunID(context.Background(), runID)
	logging.InfoContext(ctx, "build_started", "root", c.Root)

	loader := library.NewLoader(library.Options{Workers: c.Workers})
	lib, err := loader.Load(ctx, c.Root)
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	failed := lib.Failed()
	for _, page := range failed {
		fmt.Fprintf(os.Stderr, "%s: %v\n", page.ID, page.Err)
	}
	fmt.Printf("%d pages loaded, %d failed\n", len(lib.Pages)-len(failed), len(failed))

	if len(failed) > 0 {
		return fmt.Errorf("%d pages failed to parse", len(failed))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("chalk %s\n", version)
	return nil
}

func parseLevel(s string) logging.Level {
	switch s {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseFormat(s string) logging.Format {
	if s == "json" {
		return logging.FormatJSON
	}
	return logging.FormatText
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("chalk"),
		kong.Description("chalk - formal mathematics syntax toolchain"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	logging.InitLogger(parseLevel(CLI.LogLevel), parseFormat(CLI.LogFormat))
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
