package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "citex",
		Short: "Extract LaTeX cite keys and collect matching .bib entries",
		Long: "citex scans .tex sources for \\cite-family commands, collects the cited\n" +
			"keys, and assembles the matching entries from one or more .bib files\n" +
			"into a consolidated bibliography plus a coverage report.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	fl := cmd.Flags()
	fl.StringSliceVar(&opts.Tex, "tex", nil, ".tex files, directories, or glob patterns")
	fl.StringVar(&opts.TexDir, "tex-dir", "", "directory containing .tex (searched recursively)")
	fl.StringSliceVar(&opts.Bib, "bib", nil, ".bib files, directories, or glob patterns")
	fl.StringVar(&opts.BibDir, "bib-dir", "", "directory containing .bib (searched recursively)")
	fl.StringVarP(&opts.Out, "out", "o", "extracted.bib", "output .bib file")
	fl.BoolVar(&opts.PrintKeys, "print-keys", false, "print unique keys found in .tex and exit")
	fl.StringVar(&opts.configPath, "config", "", "YAML config file supplying defaults for the flags above")
	return cmd
}
