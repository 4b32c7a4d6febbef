// Command export loads the glossary and writes it out as a headword table or
// as a segmentation dictionary.
//
// Usage:
//
//	export [-config path] [-format index|dict] [-min-len n] [-output path]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/teatak/glossary/app"
	"github.com/teatak/glossary/config"
	"github.com/teatak/glossary/export"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	format := flag.String("format", "index", "Output format: index (headword<TAB>words) or dict (word freq)")
	minLen := flag.Int("min-len", 2, "dict format: skip words with fewer runes")
	outputPath := flag.String("output", "", "Output file (default stdout)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger, *format, *minLen, *outputPath); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, format string, minLen int, outputPath string) error {
	if format != "index" && format != "dict" {
		return fmt.Errorf("unknown format %q", format)
	}

	ix, err := app.Build(cfg, logger)
	if err != nil {
		return err
	}

	return writeOutput(outputPath, func(w io.Writer) error {
		if format == "dict" {
			counts := export.WordCounts(ix, minLen)
			if err := export.WriteDictionary(w, counts); err != nil {
				return err
			}
			logger.Info("dictionary exported", slog.Int("words", len(counts)), slog.String("output", outputPath))
			return nil
		}
		if err := export.WriteIndex(w, ix); err != nil {
			return err
		}
		logger.Info("index exported", slog.Int("headwords", ix.Len()), slog.String("output", outputPath))
		return nil
	})
}

// writeOutput runs write against path, or stdout when path is empty. The file
// is closed before returning and its close error is reported.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "" {
		w := bufio.NewWriter(os.Stdout)
		if err := write(w); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
