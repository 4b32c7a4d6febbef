// Command seg shows how definition text is segmented and, with -parse, which
// Chinese words and part-of-speech tags the glossary parser extracts.
//
// Usage:
//
//	seg [-config path] [-mode hybrid|dag|crf] [-parse] [text ...]
//
// Without text arguments it reads lines from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teatak/glossary/app"
	"github.com/teatak/glossary/config"
	"github.com/teatak/glossary/glossary"
	"github.com/teatak/glossary/segmenter"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	mode := flag.String("mode", "", "Algorithm mode: hybrid, dag or crf (default segmenter.mode)")
	dictPath := flag.String("dict", "", "Dictionary file, overrides segmenter.dict_path")
	modelPath := flag.String("model", "", "CRF model file, overrides segmenter.model_path")
	parse := flag.Bool("parse", false, "Also print the extracted (word, pos) pairs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Segmenter.Mode = *mode
	}
	if *dictPath != "" {
		cfg.Segmenter.DictPath = *dictPath
	}
	if *modelPath != "" {
		cfg.Segmenter.ModelPath = *modelPath
	}
	logger := app.NewLogger(cfg.Log)

	seg, err := app.NewSegmenter(cfg.Segmenter, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if args := flag.Args(); len(args) > 0 {
		process(os.Stdout, seg, strings.Join(args, " "), *parse)
		return
	}

	fmt.Println("Enter text to segment (Ctrl+D to exit):")
	if err := interactive(os.Stdin, os.Stdout, seg, *parse); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// interactive segments r line by line until end of input. Read errors,
// including over-long lines, are returned.
func interactive(r io.Reader, w io.Writer, seg *segmenter.Segmenter, parse bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		process(w, seg, text, parse)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func process(w io.Writer, seg *segmenter.Segmenter, text string, parse bool) {
	tokens := seg.Segment(text)
	fmt.Fprintln(w, strings.Join(tokens, " / "))
	if !parse {
		return
	}
	for _, p := range glossary.ExtractChineseWords(tokens) {
		pos := p.POS
		if pos == "" {
			pos = "-"
		}
		fmt.Fprintf(w, "  %s\t%s\n", p.Word, pos)
	}
}
