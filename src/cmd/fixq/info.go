package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/Lnnnnnnn/ResearchTool/src/internal/fixedpoint"
)

func newInfoCmd() *cobra.Command {
	var ff formatFlags
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the format's scale, resolution and ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := fixedpoint.Format{Width: ff.width, Frac: ff.frac, Signed: !ff.unsigned}
			if err := f.Validate(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			minInt, maxInt := f.MinInt(), f.MaxInt()
			_, _ = fmt.Fprintf(out, "format:     %s\n", f)
			_, _ = fmt.Fprintf(out, "scale:      %s\n", f.Scale())
			_, _ = fmt.Fprintf(out, "resolution: %s\n", fixedpoint.RealDecimal(big.NewInt(1), f))
			_, _ = fmt.Fprintf(out, "int range:  [%s, %s]\n", minInt, maxInt)
			_, _ = fmt.Fprintf(out, "real range: [%s, %s]\n",
				fixedpoint.RealDecimal(minInt, f), fixedpoint.RealDecimal(maxInt, f))
			return nil
		},
	}
	ff.register(cmd)
	return cmd
}
