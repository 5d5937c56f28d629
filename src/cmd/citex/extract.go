package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lnnnnnnn/ResearchTool/src/internal/bibtex"
	"github.com/Lnnnnnnn/ResearchTool/src/internal/discover"
	"github.com/Lnnnnnnn/ResearchTool/src/internal/texscan"
)

// options carries the effective inputs after merging flags with an optional
// config file (explicit flags win).
type options struct {
	Tex       []string
	TexDir    string
	Bib       []string
	BibDir    string
	Out       string
	PrintKeys bool

	CiteCommands []string

	configPath string
}

func run(cmd *cobra.Command, opts options) error {
	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		opts = cfg.merge(opts, cmd.Flags())
	}
	stdout := cmd.OutOrStdout()
	infof := func(format string, a ...any) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
	}

	texFiles := discover.Files(opts.Tex, opts.TexDir, ".tex")
	if len(texFiles) == 0 {
		return fmt.Errorf("no .tex files found, use --tex or --tex-dir")
	}

	scanner, err := texscan.New(opts.CiteCommands...)
	if err != nil {
		return err
	}
	keys := scanner.KeysFromFiles(texFiles, infof)
	infof("[INFO] total unique citation keys: %d", len(keys))

	if opts.PrintKeys {
		for _, k := range keys {
			_, _ = fmt.Fprintln(stdout, k)
		}
		return nil
	}

	bibFiles := discover.Files(opts.Bib, opts.BibDir, ".bib")
	if len(bibFiles) == 0 {
		return fmt.Errorf("no .bib files found, use --bib or --bib-dir")
	}
	entries := bibtex.Load(bibFiles, infof)
	infof("[INFO] total unique .bib entries available: %d", len(entries))

	out, found, missing := bibtex.Subset(keys, entries)
	if err := os.WriteFile(opts.Out, out, 0o644); err != nil {
		return err
	}
	infof("[INFO] wrote %d entries to %s", len(found), opts.Out)
	if len(missing) > 0 {
		infof("[WARN] %d keys missing (not found in provided .bib files)", len(missing))
	}

	reportPath := reportPathFor(opts.Out)
	if err := os.WriteFile(reportPath, renderReport(len(keys), missing), 0o644); err != nil {
		return err
	}
	infof("[INFO] report saved to %s", reportPath)
	return nil
}

// reportPathFor swaps the output extension for .report.txt, so
// extracted.bib gets extracted.report.txt alongside it.
func reportPathFor(out string) string {
	return strings.TrimSuffix(out, filepath.Ext(out)) + ".report.txt"
}

func renderReport(total int, missing []string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Total keys in .tex: %d\n", total)
	fmt.Fprintf(&b, "Found in .bib: %d\n", total-len(missing))
	fmt.Fprintf(&b, "Missing: %d\n\n", len(missing))
	if len(missing) > 0 {
		b.WriteString("Missing keys:\n")
		for _, k := range missing {
			fmt.Fprintf(&b, "  - %s\n", k)
		}
	}
	return []byte(b.String())
}
