// Package main is the batch front-end for the tidymark formatter.
//
// It stands in for an editor host: each input file becomes a document
// view, is formatted through the external engine, and is written back in
// place or to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tidymark/tidymark/internal/config"
	"github.com/tidymark/tidymark/internal/editor"
	"github.com/tidymark/tidymark/internal/engine"
	"github.com/tidymark/tidymark/internal/format"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	engineCmd  string
	write      bool
	tabWidth   int
	useTabs    bool
}

func run() int {
	opts, files := parseFlags()

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input files")
		flag.Usage()
		return 2
	}

	store := config.NewStore(opts.configPath)
	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading settings: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel pending engine calls on interrupt.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	client, err := engine.NewClient(ctx, opts.engineCmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: starting engine %q: %v\n", opts.engineCmd, err)
		return 1
	}
	defer client.Close()

	formatter := format.New(client, store)
	indent := editor.IndentState{TabWidth: opts.tabWidth, UseTabs: opts.useTabs}

	failed := 0
	for _, path := range files {
		if err := formatFile(ctx, formatter, path, indent, opts.write); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			failed++
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// formatFile formats one file through a document view.
func formatFile(ctx context.Context, f *format.Formatter, path string, indent editor.IndentState, write bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	view := editor.NewTextView(string(data), editor.WithIndent(indent))
	if err := f.FormatDocument(ctx, view); err != nil {
		return err
	}

	if !write {
		_, err := fmt.Print(view.Text())
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(view.Text()), info.Mode().Perm())
}

func parseFlags() (options, []string) {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to settings file")
	flag.StringVar(&opts.engineCmd, "engine", "tidymark-engine", "Formatting engine command")
	flag.BoolVar(&opts.write, "write", false, "Write results back to the input files")
	flag.BoolVar(&opts.write, "w", false, "Write results back to the input files (shorthand)")
	flag.IntVar(&opts.tabWidth, "tab-width", 4, "Columns per indentation level")
	flag.BoolVar(&opts.useTabs, "use-tabs", false, "Indent with tabs instead of spaces")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] file...\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("tidymark %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts, flag.Args()
}

// defaultConfigPath returns the user settings location.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tidymark", "settings.toml")
}
