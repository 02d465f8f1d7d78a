package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/secmon-lab/orgchart/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Default().Error("orgchart failed", "error", err)
		os.Exit(1)
	}
}
