// Package main provides the entry point for the guikit demonstration.
// Without flags it runs the same client code against the Windows and the
// MacOS widget families.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/opd-ai/guikit/pkg/guikit"
)

// Version is the current version of guikit-demo.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("guikit-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	version := fs.Bool("v", false, "Print version and exit")
	toolkits := fs.String("toolkit", "", "Comma-separated toolkits to demonstrate (default: all)")
	scriptPath := fs.String("script", "", "Run a Lua client script instead of the built-in client")
	watch := fs.Bool("watch", false, "Re-run the -script file whenever it changes")
	debug := fs.Bool("debug", false, "Enable debug logging to stderr")
	logFormat := fs.String("log-format", "text", "Log format on stderr: text or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "guikit-demo version %s\n", Version)
		return 0
	}

	format, err := guikit.ParseLogFormat(*logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger, err := guikit.NewLogger(stderr, format, level)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	opts := guikit.DefaultOptions()
	opts.Stdout = stdout
	opts.Logger = logger
	r := guikit.New(opts)

	if *watch && *scriptPath == "" {
		fmt.Fprintln(stderr, "-watch requires -script")
		return 1
	}

	if *scriptPath != "" {
		return runScript(r, *scriptPath, *watch, stderr)
	}

	if err := r.Run(splitList(*toolkits)...); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runScript runs a Lua client once, or until SIGINT/SIGTERM in watch mode.
func runScript(r *guikit.Runner, path string, watch bool, stderr io.Writer) int {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Script not found: %s\n", path)
		} else {
			fmt.Fprintf(stderr, "Error accessing script %s: %v\n", path, err)
		}
		return 1
	}

	if !watch {
		if err := r.RunScript(path); err != nil {
			fmt.Fprintf(stderr, "Script error: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := r.Watch(ctx, path); err != nil {
		fmt.Fprintf(stderr, "Watch failed: %v\n", err)
		return 1
	}
	return 0
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
