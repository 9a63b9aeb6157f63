package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/awesome-copilot/internal/cli"
	"github.com/arthur-debert/awesome-copilot/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.NewTerminalRenderer(false).RenderError(err))
		os.Exit(1)
	}
}
