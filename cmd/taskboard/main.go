// Package main provides the entry point for taskboard.
//
// taskboard is a terminal client for a task API: a kanban board, a list and
// a dashboard over the same tasks, plus scriptable subcommands. Built on
// Bubbletea using The Elm Architecture (TEA).
//
// Usage:
//
//	taskboard [command] [flags]
package main

import (
	"os"

	"github.com/riordanpawley/taskboard/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
