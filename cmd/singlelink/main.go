// Command singlelink clusters the 2D points of an input file by single
// linkage and prints the resulting clusters.
//
//	singlelink FILE [N]
//
// N is the number of clusters to stop at and defaults to 1. Set
// SINGLELINK_LOG_LEVEL=debug to trace every merge on stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/TrevorS/singlelink"
	"github.com/TrevorS/singlelink/internal/cli"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	opts, err := cli.Parse(args, getenv)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n%s\n", err, cli.Usage)
		return 1
	}

	logger, err := cli.NewLogger(opts.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	col, err := singlelink.LoadFile(opts.InputPath)
	if err != nil {
		logger.Debug("load failed", zap.String("path", opts.InputPath), zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer col.Clear()
	logger.Info("loaded clusters", zap.String("path", opts.InputPath), zap.Int("count", col.Len()))

	cfg := singlelink.DefaultConfig()
	cfg.TargetClusters = opts.TargetClusters
	cfg.Logger = logger

	result, err := singlelink.Reduce(col, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := singlelink.Write(stdout, result.Clusters); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
