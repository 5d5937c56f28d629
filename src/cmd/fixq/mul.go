package main

import (
	"github.com/spf13/cobra"

	"github.com/Lnnnnnnn/ResearchTool/src/internal/fixedpoint"
)

func newMulCmd() *cobra.Command {
	var ff formatFlags
	cmd := &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Quantize two reals and multiply the stored values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, o, r, err := ff.resolve()
			if err != nil {
				return err
			}
			a, err := parseReal(args[0])
			if err != nil {
				return err
			}
			b, err := parseReal(args[1])
			if err != nil {
				return err
			}
			res, err := fixedpoint.Mul(a, b, f, o, r)
			if err != nil {
				return err
			}
			printResult(cmd, f, res)
			return nil
		},
	}
	ff.register(cmd)
	return cmd
}
