package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/happy-shine/rogger/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default ~/.rogger/config.toml)")
	debug := flag.Bool("debug", false, "write debug output to rogger.log")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Debug: *debug}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "rogger: %v\n", err)
		return 1
	}
	return 0
}
