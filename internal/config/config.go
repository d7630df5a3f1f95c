package config

import (
	"flag"
	"fmt"
	"io"
)

type Config struct {
	Input     string
	OutDir    string
	Encoding  string
	Format    string
	Precision int
	Parallel  bool
	// Serve is the HTTP listen address. Empty means a single batch run.
	Serve string
}

func Default() Config {
	return Config{
		Input:     "./graf-monte-kristo.txt",
		OutDir:    ".",
		Encoding:  "utf-8",
		Format:    "xlsx",
		Precision: 5,
	}
}

// Parse reads command-line flags on top of Default. Usage goes to output.
func Parse(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("entropylab", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Input, "input", cfg.Input, "corpus file to analyse")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "directory for cleaned text and tables")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "corpus encoding: utf-8, cp1251 or cp866")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "table format: xlsx or csv")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals in the console report")
	fs.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "run the six estimators concurrently")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "serve the HTTP API on this address instead of a batch run")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision %d out of range 0..17", c.Precision)
	}
	switch c.Format {
	case "xlsx", "csv":
	default:
		return fmt.Errorf("unsupported table format %q", c.Format)
	}
	switch c.Encoding {
	case "utf-8", "utf8", "cp1251", "windows-1251", "cp866", "ibm866":
	default:
		return fmt.Errorf("unsupported encoding %q", c.Encoding)
	}
	return nil
}
