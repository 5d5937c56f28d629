package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// config mirrors the command-line flags so recurring invocations can live
// in a small YAML file. cite_commands extends the built-in cite family.
type config struct {
	Tex          []string `yaml:"tex"`
	TexDir       string   `yaml:"tex_dir"`
	Bib          []string `yaml:"bib"`
	BibDir       string   `yaml:"bib_dir"`
	Out          string   `yaml:"out"`
	CiteCommands []string `yaml:"cite_commands"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// merge fills opts fields the user did not set explicitly. Flags that were
// passed on the command line always win over config values.
func (c config) merge(opts options, fl *pflag.FlagSet) options {
	if !fl.Changed("tex") && len(c.Tex) > 0 {
		opts.Tex = c.Tex
	}
	if !fl.Changed("tex-dir") && c.TexDir != "" {
		opts.TexDir = c.TexDir
	}
	if !fl.Changed("bib") && len(c.Bib) > 0 {
		opts.Bib = c.Bib
	}
	if !fl.Changed("bib-dir") && c.BibDir != "" {
		opts.BibDir = c.BibDir
	}
	if !fl.Changed("out") && c.Out != "" {
		opts.Out = c.Out
	}
	opts.CiteCommands = append(opts.CiteCommands, c.CiteCommands...)
	return opts
}
