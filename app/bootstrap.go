// Package app wires configuration, logging, segmentation and the glossary
// index together for the binaries under cmd/.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/teatak/glossary/config"
	"github.com/teatak/glossary/crf"
	"github.com/teatak/glossary/dictionary"
	"github.com/teatak/glossary/glossary"
	"github.com/teatak/glossary/segmenter"
)

// NewSegmenter loads the dictionary and CRF model named by cfg.
//
// The dictionary is required for dag and hybrid; the model is required for crf.
// Hybrid without a model runs as dag.
func NewSegmenter(cfg config.SegmenterConfig, log *slog.Logger) (*segmenter.Segmenter, error) {
	mode, err := segmenter.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	// 1. Dictionary
	dict := dictionary.NewDictionary()
	switch {
	case fileExists(cfg.DictPath):
		if err := dict.Load(cfg.DictPath); err != nil {
			return nil, err
		}
		log.Info("segmentation dictionary loaded",
			slog.String("path", cfg.DictPath),
			slog.Int("words", dict.Len()),
		)
	case mode == segmenter.ModeCRF:
		log.Warn("segmentation dictionary not found", slog.String("path", cfg.DictPath))
	default:
		return nil, fmt.Errorf("segmentation dictionary %s required for mode %s: %w", cfg.DictPath, mode, fs.ErrNotExist)
	}

	seg := segmenter.NewSegmenter(dict)
	seg.Mode = mode

	// 2. CRF model
	if mode == segmenter.ModeDAG {
		return seg, nil
	}
	if !fileExists(cfg.ModelPath) {
		if mode == segmenter.ModeCRF {
			return nil, fmt.Errorf("crf model %s required for mode crf: %w", cfg.ModelPath, fs.ErrNotExist)
		}
		log.Warn("crf model not found, downgrading hybrid to dag", slog.String("path", cfg.ModelPath))
		seg.Mode = segmenter.ModeDAG
		return seg, nil
	}

	model := crf.NewModel()
	if err := model.Load(cfg.ModelPath); err != nil {
		return nil, err
	}
	seg.CRFModel = model
	log.Info("crf model loaded", slog.String("path", cfg.ModelPath), slog.Int("features", len(model.Feats)))
	return seg, nil
}

// LoadIndex reads the word list named by cfg with seg.
func LoadIndex(cfg config.GlossaryConfig, seg glossary.Segmenter, log *slog.Logger) (*glossary.Index, error) {
	loader, err := glossary.NewLoader(seg,
		glossary.WithEncoding(cfg.Encoding),
		glossary.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ix, err := loader.LoadFile(cfg.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("glossary load finished", slog.Duration("duration", time.Since(start)))
	return ix, nil
}

// Build constructs the segmenter and the index from a full configuration.
func Build(cfg *config.Config, log *slog.Logger) (*glossary.Index, error) {
	if cfg == nil {
		return nil, errors.New("app: nil config")
	}
	seg, err := NewSegmenter(cfg.Segmenter, log)
	if err != nil {
		return nil, fmt.Errorf("app: segmenter: %w", err)
	}
	ix, err := LoadIndex(cfg.Glossary, seg, log)
	if err != nil {
		return nil, fmt.Errorf("app: glossary: %w", err)
	}
	return ix, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
