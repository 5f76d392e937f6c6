package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

// Version is set at build time with -ldflags.
var Version = "v0.1.0"

func main() {
	cmd := &cli.Command{
		Name:     "corrections",
		Usage:    "submit reviewer corrections, falling back to a local JSON file",
		Version:  Version,
		Commands: []*cli.Command{submitCommand()},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("corrections: %v", err)
	}
}
