// Package main provides the entry point for the toastdemo TUI.
//
// toastdemo is a playground for toast notifications: a form spawns toasts
// into five screen positions, each a FIFO stack, and auto-dismiss toasts
// expire after their configured duration.
//
// Usage:
//
//	toastdemo [--config path] [--verbose]
//	toastdemo spawn --position top-left --severity warn --auto-dismiss
//	toastdemo config init
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/toastdemo/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
