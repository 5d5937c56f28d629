package main

import (
	"github.com/spf13/cobra"

	"github.com/Lnnnnnnn/ResearchTool/src/internal/fixedpoint"
)

func newQuantizeCmd() *cobra.Command {
	var ff formatFlags
	cmd := &cobra.Command{
		Use:   "quantize <x>",
		Short: "Quantize a real number into the format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, o, r, err := ff.resolve()
			if err != nil {
				return err
			}
			x, err := parseReal(args[0])
			if err != nil {
				return err
			}
			res, err := fixedpoint.Quantize(x, f, o, r)
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
