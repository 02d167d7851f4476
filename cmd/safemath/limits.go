package main

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"novamath/core/vectors"
)

func newLimitsCommand() *cobra.Command {
	var human bool

	cmd := &cobra.Command{
		Use:   "limits <type>",
		Short: "Print the bit width and range of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lim, err := vectors.LimitsOf(args[0])
			if err != nil {
				return wrapExitError(exitCommandError, "invalid type", err)
			}
			format := (*big.Int).String
			if human {
				format = humanize.BigComma
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "bits: %d\nmin:  %s\nmax:  %s\n",
				lim.Bits, format(lim.Min), format(lim.Max))
			return err
		},
	}

	cmd.Flags().BoolVar(&human, "human", false, "group digits with commas")
	return cmd
}
