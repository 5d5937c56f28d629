package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Lnnnnnnn/ResearchTool/src/internal/fixedpoint"
)

var rootCmd = &cobra.Command{
	Use:   "fixq",
	Short: "Fixed-point quantization and register-style arithmetic",
	Long: "fixq maps real numbers into a binary fixed-point format (width, fraction\n" +
		"bits, signedness) and reports the stored integer, the value it actually\n" +
		"represents, and the hex register view, the way a hardware datapath would\n" +
		"hold it.",
}

func execute() error {
	rootCmd.AddCommand(newQuantizeCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newMulCmd())
	rootCmd.AddCommand(newInfoCmd())
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// formatFlags is the flag set every subcommand shares: the format itself
// plus the overflow and rounding policy tokens, validated at the textual
// boundary.
type formatFlags struct {
	width    int
	frac     int
	unsigned bool
	overflow string
	rounding string
}

func (ff *formatFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVarP(&ff.width, "width", "w", 16, "total bit width")
	fl.IntVarP(&ff.frac, "frac", "f", 11, "fractional bit width")
	fl.BoolVarP(&ff.unsigned, "unsigned", "u", false, "unsigned format (default two's complement)")
	fl.StringVar(&ff.overflow, "overflow", "wrap", "overflow policy: wrap or saturate")
	fl.StringVar(&ff.rounding, "rounding", "nearest", "rounding policy: nearest, floor or ceil")
}

func (ff *formatFlags) resolve() (fixedpoint.Format, fixedpoint.Overflow, fixedpoint.Rounding, error) {
	f := fixedpoint.Format{Width: ff.width, Frac: ff.frac, Signed: !ff.unsigned}
	if err := f.Validate(); err != nil {
		return f, 0, 0, err
	}
	o, err := fixedpoint.ParseOverflow(ff.overflow)
	if err != nil {
		return f, 0, 0, err
	}
	r, err := fixedpoint.ParseRounding(ff.rounding)
	if err != nil {
		return f, 0, 0, err
	}
	return f, o, r, nil
}

func parseReal(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad real number %q", s)
	}
	return x, nil
}

// printResult writes the canonical triple. The real value is printed from
// the exact decimal decode, so what is shown is the represented value with
// no float formatting artifacts.
func printResult(cmd *cobra.Command, f fixedpoint.Format, res fixedpoint.Result) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "format: %s\n", f)
	_, _ = fmt.Fprintf(out, "qi:     %s\n", res.Int)
	_, _ = fmt.Fprintf(out, "real:   %s\n", fixedpoint.RealDecimal(res.Int, f))
	_, _ = fmt.Fprintf(out, "hex:    %s\n", res.Hex)
}
