package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"entropylab/internal/config"
	"entropylab/internal/external"
)

// CleanedTextFile is the name of the canonical stream written next to the tables.
const CleanedTextFile = "cleaned_text.txt"

// RunBatch reads the corpus, writes the cleaned text, prints the report to
// out and exports the six tables. Nothing is written if the corpus cannot be read.
func RunBatch(ctx context.Context, cfg config.Config, out io.Writer) error {
	corpus, err := external.ReadCorpus(cfg.Input, cfg.Encoding)
	if err != nil {
		return err
	}
	if corpus.ASCIIOnly {
		log.Printf("warning: %s has no non-ASCII bytes, the Cyrillic alphabet will match nothing", corpus.Path)
	}

	tw, err := external.NewTableWriter(cfg.Format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	svc := NewAnalysisService(cfg.Parallel)
	stream, _ := svc.Normalize(corpus.Text)
	if n := len([]rune(stream)); n < 2 {
		log.Printf("warning: only %d canonical symbols, order-2 estimates are reported as 0", n)
	}

	if err := external.WriteText(filepath.Join(cfg.OutDir, CleanedTextFile), stream); err != nil {
		return err
	}

	analysis, err := svc.AnalyzeStream(ctx, stream)
	if err != nil {
		return err
	}
	PrintReport(out, analysis.Report(false), cfg.Precision)

	for _, sheet := range analysis.Sheets() {
		path, err := external.ExportSheet(cfg.OutDir, tw, sheet)
		if err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}
