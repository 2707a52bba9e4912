package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/bookmarks/internal/cli"
	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

type commandEntry struct {
	summary string
	build   func(cfg *config.Config) command
}

var commands = map[string]commandEntry{
	"migrate": {
		summary: "Apply, revert or list schema migrations (up|down|status)",
		build:   func(cfg *config.Config) command { return cli.NewMigrateCommand(cfg.Database) },
	},
	"bindings": {
		summary: "Generate TypeScript types for the procedures",
		build:   func(cfg *config.Config) command { return cli.NewBindingsCommand(cfg.Bindings) },
	},
}

// commandOrder keeps the usage text stable.
var commandOrder = []string{"migrate", "bindings"}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		entrypoint.Run(config.NewConfig(), Version)
		return
	}

	name := os.Args[1]
	switch name {
	case "version":
		fmt.Printf("bookmarks %s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	}

	entry, ok := commands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	cmd := entry.build(config.NewConfig())
	if err := cmd.ParseFlags(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  %-10s Start the HTTP server (default if no command given)\n", "serve")
	for _, name := range commandOrder {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", name, commands[name].summary)
	}
	fmt.Fprintf(os.Stderr, "  %-10s Print the build version\n", "version")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
