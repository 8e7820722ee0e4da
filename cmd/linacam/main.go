// SPDX-License-Identifier: MIT

// Command linacam loads a YAML camera rig and prints its basis vectors and
// view, projection and model matrices.
//
// Usage:
//
//	linacam -config rig.yaml
//	linacam -config rig.yaml -log-level debug   # also log the rig build
//
// Matrices are printed in the rig's layout (row or column), one bracketed
// row per line. Errors are logged as JSON on stderr and exit with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lina/camera"
	"github.com/katalvlaran/lina/diag"
	"go.uber.org/zap"
)

var errNoConfig = errors.New("linacam: -config flag is required")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linacam", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML camera rig file (required)")
	logLevel := fs.String("log-level", diag.LevelInfo, "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := diag.NewWriter(*logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()
	diag.SetLogger(logger)
	defer diag.SetLogger(nil)

	if *configPath == "" {
		logger.Error("invalid arguments", zap.Error(errNoConfig))
		fs.Usage()
		return 1
	}

	cfg, err := camera.LoadConfigFile(*configPath)
	if err != nil {
		logger.Error("load config", zap.String("path", *configPath), zap.Error(err))
		return 1
	}
	rig, err := cfg.Build()
	if err != nil {
		logger.Error("build rig", zap.String("path", *configPath), zap.Error(err))
		return 1
	}

	printRig(stdout, rig)
	logger.Info("rig printed", zap.String("path", *configPath), zap.Stringer("layout", rig.Layout))

	return 0
}

// printRig writes a human-readable dump of rig.
func printRig(w io.Writer, rig *camera.Rig) {
	fmt.Fprintf(w, "layout:   %s\n", rig.Layout)
	fmt.Fprintf(w, "position: %v\n", rig.Position)
	fmt.Fprintf(w, "forward:  %v\n", rig.Basis.Forward)
	fmt.Fprintf(w, "right:    %v\n", rig.Basis.Right)
	fmt.Fprintf(w, "up:       %v\n", rig.Basis.Up)
	fmt.Fprintf(w, "\nview:\n%s", rig.View)
	fmt.Fprintf(w, "\nprojection:\n%s", rig.Projection)
	fmt.Fprintf(w, "\nmodel:\n%s", rig.Model)
}
