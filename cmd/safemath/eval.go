package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"novamath/core/vectors"
)

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <type> <a> [<op> <b>]...",
		Short: "Evaluate a chain of checked operations",
		Long: `Evaluate a left-to-right chain of checked operations on one integer type.

Types: ` + strings.Join(vectors.Types, ", ") + `
Ops:   add, sub, mul, div, rem, shl, shr (shift amounts are u32)

The chain stops at the first failure and exits with status 1. Put "--"
before the arguments when any operand is negative.

Example:
  safemath eval u32 6 mul 7
  safemath eval u64 1000 mul 3 add 7 shr 1
  safemath eval -- i128 -170141183460469231731687303715884105728 div -1`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args)%2 != 0 {
				return wrapExitError(exitCommandError, "usage: eval <type> <a> [<op> <b>]...", nil)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args)
		},
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	typ, first := args[0], args[1]

	steps := make([]vectors.Step, 0, (len(args)-2)/2)
	for i := 2; i < len(args); i += 2 {
		op, err := vectors.ParseOp(args[i])
		if err != nil {
			return wrapExitError(exitCommandError, "invalid expression", err)
		}
		steps = append(steps, vectors.Step{Op: op, Operand: args[i+1]})
	}

	result, err := vectors.EvalChain(typ, first, steps)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}
