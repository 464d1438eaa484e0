// Package runner drives one batch: scan, extract, decode, classify, write.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"dxtract/internal/archive"
	"dxtract/internal/classify"
	"dxtract/internal/config"
	"dxtract/internal/decode"
	"dxtract/internal/document"
	"dxtract/internal/export"
)

// Summary counts the outcome of one batch run.
type Summary struct {
	Processed int // Files with an output written
	Skipped   int // Files skipped after a per-file failure
}

// Runner executes one batch over the configured directories.
type Runner struct {
	cfg   *config.Config
	rules *classify.Rules
	log   *zap.Logger
	out   io.Writer // console status target
	debug bool      // dump built models to stderr
}

// New creates a Runner. Console status lines go to out.
func New(cfg *config.Config, log *zap.Logger, out io.Writer, debug bool) *Runner {
	return &Runner{
		cfg:   cfg,
		rules: classify.NewRules(cfg.Classifier),
		log:   log,
		out:   out,
		debug: debug,
	}
}

// Run processes every dxp file in the input directory, continuing past
// per-file failures. Only environment problems fail the batch itself.
func (r *Runner) Run() (Summary, error) {
	var sum Summary

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return sum, fmt.Errorf("creating output dir: %w", err)
	}

	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return sum, fmt.Errorf("reading input dir: %w", err)
	}

	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".dxp") {
			continue
		}

		path := filepath.Join(r.cfg.InputDir, entry.Name())
		outPath, err := r.processFile(path)
		if err != nil {
			sum.Skipped++
			r.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			warn.Fprintf(r.out, "skipping %s: %v\n", path, err)
			continue
		}
		sum.Processed++
		ok.Fprintf(r.out, "parsed %s -> %s\n", path, outPath)
	}

	return sum, nil
}

// processFile turns one container into one written model file. The
// extraction directory lives exactly as long as this call.
func (r *Runner) processFile(path string) (string, error) {
	c, err := archive.Extract(path, r.log)
	if err != nil {
		return "", err
	}
	defer c.Close()

	doc, err := document.Load(c.DocumentPath)
	if err != nil {
		return "", err
	}
	doc.CheckNamespace(r.cfg.Document.Namespace, r.log)

	im := classify.Build(doc, decode.Resolve(doc), r.rules, r.log)

	if r.debug {
		spew.Fdump(os.Stderr, im)
	}

	return export.Write(im, path, r.cfg.OutputDir)
}
