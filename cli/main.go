package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trebuchet-org/treb-toolchain/internal/cli"
	"github.com/trebuchet-org/treb-toolchain/internal/config"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	if _, err := cli.Execute(context.Background(), cli.NewRootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
