// Command imgnorm renames AI-generated images under a parent/model directory
// tree to "{Parent}-{Model}-{N}.{ext}". It is a dry run unless --apply is
// given.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/backmassage/imgnorm/internal/config"
	"github.com/backmassage/imgnorm/internal/display"
	"github.com/backmassage/imgnorm/internal/logging"
	"github.com/backmassage/imgnorm/internal/naming"
	"github.com/backmassage/imgnorm/internal/pipeline"
	"github.com/backmassage/imgnorm/internal/rename"
	"github.com/backmassage/imgnorm/internal/term"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// modelList joins the model whitelist for the help text.
func modelList() string {
	models := naming.Models()
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// run executes the command with args and returns the process exit code.
func run(args []string) int {
	cfg := config.DefaultConfig()
	code := 0

	cmd := &cobra.Command{
		Use:   "imgnorm",
		Short: "Normalize image file names to {Parent}-{Model}-{N}.{ext}",
		Long: `Scan a directory tree laid out as <parent>/<model>/ and rename every
image to {Parent}-{Model}-{N}.{ext}. Without --apply nothing is changed;
the planned renames are only printed.

Recognized models: ` + modelList() + ".",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code = execute(&cfg)
			return nil
		},
	}
	config.BindFlags(cmd.Flags(), &cfg)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "imgnorm: %v\n", err)
		return 2
	}
	return code
}

func execute(cfg *config.Config) int {
	// 1. Validate and resolve; errors here happen before any logger exists.
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "imgnorm: %v\n", err)
		return 2
	}
	if err := cfg.ResolveRoot(); err != nil {
		fmt.Fprintf(os.Stderr, "imgnorm: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "imgnorm: %v\n", err)
		return 1
	}

	if term.IsTerminal(os.Stdout) {
		display.PrintBanner(os.Stdout)
	}

	// 2. Scan, plan and (with --apply) rename. Paths are absolute, so the
	// filesystem is rooted at "/".
	if _, err := pipeline.Run(cfg, log, osfs.New("/")); err != nil {
		reportFatal(log, err)
		return 1
	}
	return 0
}

// reportFatal logs err and states whether the filesystem was touched.
func reportFatal(log *logging.Logger, err error) {
	log.Error("%v", err)

	var ae *rename.ApplyError
	if errors.As(err, &ae) && ae.Partial() {
		log.Error("Changes were partially applied; check for __tmp_renaming_ files before re-running.")
		return
	}
	log.Error("No files were renamed.")
}
