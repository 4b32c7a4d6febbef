// Command glossary is the interactive English/Chinese glossary browser.
//
// Usage:
//
//	glossary [-config path] [-words path]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/teatak/glossary/app"
	"github.com/teatak/glossary/config"
	"github.com/teatak/glossary/console"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	wordsPath := flag.String("words", "", "Word list to load, overrides glossary.path")
	chartWidth := flag.Int("width", console.DefaultChartWidth, "Longest bar of the letter chart")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *wordsPath != "" {
		cfg.Glossary.Path = *wordsPath
	}
	logger := app.NewLogger(cfg.Log)

	ix, err := app.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	menu := console.NewMenu(ix, os.Stdin, os.Stdout)
	menu.ChartWidth = *chartWidth
	if err := menu.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
