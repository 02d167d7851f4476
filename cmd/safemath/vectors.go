package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"novamath/core/vectors"
)

func newVectorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vectors [file]",
		Short: "Run conformance vectors",
		Long: `Run a YAML file of conformance vectors, or the built-in set when no
file is given. Exits with status 1 if any case fails.

File format:
  cases:
    - name: u32 add overflow
      type: u32
      op: add
      a: "4000000000"
      b: "1000000000"
      want: error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectors(cmd, args)
		},
	}
}

func runVectors(cmd *cobra.Command, args []string) error {
	var (
		f   *vectors.File
		err error
	)
	if len(args) == 1 {
		f, err = vectors.LoadFile(args[0])
	} else {
		f, err = vectors.Default()
	}
	if err != nil {
		return wrapExitError(exitCommandError, "failed to load vectors", err)
	}

	rep := vectors.Run(f)
	if err := rep.Write(cmd.OutOrStdout()); err != nil {
		return err
	}
	if failed := rep.Failed(); failed > 0 {
		return wrapExitError(exitFailure, fmt.Sprintf("%d vector(s) failed", failed), nil)
	}
	return nil
}
