package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/five82/herald/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flagSet, opts, help, err := parse(os.Args, terminalInfo{
		stdoutIsTerminal: isatty.IsTerminal(os.Stdout.Fd()),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "herald: %v\n", err)
		flagSet.PrintUsage(os.Stderr)
		return 2
	}
	if help {
		flagSet.PrintUsage(os.Stdout)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "herald: %v\n", err)
		return 1
	}
	return 0
}
